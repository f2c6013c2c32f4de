package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bouncybet/internal/progress"
)

// maxHistoryRounds bounds how many rounds the history panel loads.
const maxHistoryRounds = 100

// HistorySource provides a player's settled rounds.
type HistorySource interface {
	RecentRounds(ctx context.Context, playerID string, limit int) ([]progress.RoundRecord, error)
}

// historyPanel shows recent rounds in a table.
type historyPanel struct {
	source HistorySource
	rounds []progress.RoundRecord
	table  table.Model
	err    error
}

func newHistoryPanel(source HistorySource, width, height int) historyPanel {
	h := historyPanel{source: source}
	h.table = createHistoryTable(width, height)
	return h
}

// createHistoryTable creates a new table with appropriate columns.
func createHistoryTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Payout", Width: 7},
		{Title: "Coins", Width: 7},
		{Title: "Date", Width: 14},
	}

	// Give spare width to the date column
	if extra := width - 4 - 50; extra > 0 {
		columns[4].Width += min(extra, 6)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)), // Leave room for title, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes the rounds for playerID.
func (h *historyPanel) load(ctx context.Context, playerID string) {
	if h.source == nil {
		h.rounds = nil
		h.updateRows()
		return
	}

	rounds, err := h.source.RecentRounds(ctx, playerID, maxHistoryRounds)
	h.rounds, h.err = rounds, err
	h.updateRows()
}

func (h *historyPanel) updateRows() {
	rows := make([]table.Row, len(h.rounds))
	for i, r := range h.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%+d", r.Payout),
			fmt.Sprintf("%d", r.CoinsAfter),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

func (h *historyPanel) resize(width, height int) {
	h.table = createHistoryTable(width, height)
	h.updateRows()
}

func (h historyPanel) view(width int, helpLine string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECENT ROUNDS", width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case h.err != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Could not load history: " + h.err.Error())
	case len(h.rounds) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No rounds recorded yet.\nPlace a bet to play one!")
	default:
		content = h.table.View()
	}
	b.WriteString(centerText(tableStyle.Render(content), width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(helpLine))
	return b.String()
}

// centerText pads every line of s so it is centered in width columns.
func centerText(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
