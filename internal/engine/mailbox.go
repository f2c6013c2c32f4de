package engine

import "sync"

// MessageKind identifies a notification posted by the simulation.
type MessageKind int

const (
	MessageScoreChanged MessageKind = iota
	MessageRoundEnded
)

// Message is a notification from the simulation goroutine.
type Message struct {
	Kind  MessageKind
	Score int
}

// Deliver replays the message on o.
func (m Message) Deliver(o Observer) {
	switch m.Kind {
	case MessageScoreChanged:
		o.ScoreDidChange(m.Score)
	case MessageRoundEnded:
		o.RoundDidEnd(m.Score)
	}
}

// Mailbox is an unbounded single-consumer queue. Post never blocks, so the
// simulation can run ahead of a slow consumer without losing a round result.
type Mailbox struct {
	mu      sync.Mutex
	pending []Message
	ready   chan struct{}
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{ready: make(chan struct{}, 1)}
}

// Post appends a message and signals the consumer.
func (m *Mailbox) Post(msg Message) {
	m.mu.Lock()
	m.pending = append(m.pending, msg)
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Ready is signalled after a Post. One signal may cover several messages.
func (m *Mailbox) Ready() <-chan struct{} {
	return m.ready
}

// Drain returns every pending message in posting order and empties the box.
func (m *Mailbox) Drain() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.pending
	m.pending = nil
	return out
}

// DeliverAll drains the mailbox into o and returns how many messages it applied.
func (m *Mailbox) DeliverAll(o Observer) int {
	msgs := m.Drain()
	for _, msg := range msgs {
		msg.Deliver(o)
	}
	return len(msgs)
}

// mailboxObserver posts engine notifications into a mailbox.
type mailboxObserver struct {
	box *Mailbox
}

func (o mailboxObserver) ScoreDidChange(score int) {
	o.box.Post(Message{Kind: MessageScoreChanged, Score: score})
}

func (o mailboxObserver) RoundDidEnd(finalScore int) {
	o.box.Post(Message{Kind: MessageRoundEnded, Score: finalScore})
}
