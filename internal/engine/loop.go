package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
)

// commandBufferSize bounds queued commands. Pointer moves are the only
// frequent command and dropping one is harmless.
const commandBufferSize = 256

type commandKind int

const (
	cmdPrepareRound commandKind = iota
	cmdPointer
	cmdCancelAim
)

type command struct {
	kind    commandKind
	pointer core.PointerEvent
}

// Loop owns an Engine on a single goroutine. Other goroutines talk to it
// through commands, read the latest Snapshot, and receive notifications
// through the Mailbox.
type Loop struct {
	engine   *Engine
	tickRate int
	dt       float64 // Simulated seconds per tick
	commands chan command
	mailbox  *Mailbox
	latest   atomic.Pointer[Snapshot]
	stopped  chan struct{}
}

// NewLoop wraps e. The engine's observer is replaced by the loop's mailbox.
func NewLoop(e *Engine, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = config.DefaultTickRate
	}
	l := &Loop{
		engine:   e,
		tickRate: tickRate,
		dt:       1.0 / float64(tickRate),
		commands: make(chan command, commandBufferSize),
		mailbox:  NewMailbox(),
		stopped:  make(chan struct{}),
	}
	e.SetObserver(mailboxObserver{box: l.mailbox})
	l.publish()
	return l
}

// SetTimeScale makes each tick advance the simulation by scale/tickRate
// seconds. It must be called before Run. Non-positive values mean 1.
func (l *Loop) SetTimeScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	l.dt = scale / float64(l.tickRate)
}

// Mailbox returns the notification queue.
func (l *Loop) Mailbox() *Mailbox {
	return l.mailbox
}

// Snapshot returns the most recently published frame.
func (l *Loop) Snapshot() Snapshot {
	return *l.latest.Load()
}

// PrepareNewRound asks the loop to start a fresh round.
// It is never dropped while the loop runs.
func (l *Loop) PrepareNewRound() {
	l.send(command{kind: cmdPrepareRound})
}

// Pointer forwards a drag gesture sample. Moves are dropped when the queue is
// full; presses and releases wait for room so a gesture always ends.
func (l *Loop) Pointer(ev core.PointerEvent) {
	c := command{kind: cmdPointer, pointer: ev}
	if ev.Phase == core.PointerMove {
		l.trySend(c)
		return
	}
	l.send(c)
}

// CancelAim abandons an in-progress gesture.
func (l *Loop) CancelAim() {
	l.trySend(command{kind: cmdCancelAim})
}

// send queues c, giving up only once the loop has stopped.
func (l *Loop) send(c command) {
	select {
	case l.commands <- c:
	case <-l.stopped:
	}
}

func (l *Loop) trySend(c command) {
	select {
	case l.commands <- c:
	default:
	}
}

// Run drives the engine at the configured tick rate until ctx is cancelled.
// A Loop runs at most once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.stopped)

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.engine.Step(l.dt)
			l.publish()

		case c := <-l.commands:
			l.apply(c)
			l.publish()

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Loop) apply(c command) {
	switch c.kind {
	case cmdPrepareRound:
		l.engine.PrepareNewRound()
	case cmdCancelAim:
		l.engine.CancelAim()
	case cmdPointer:
		switch c.pointer.Phase {
		case core.PointerDown:
			l.engine.BeginAim(c.pointer.Pos)
		case core.PointerMove:
			l.engine.MoveAim(c.pointer.Pos)
		case core.PointerUp:
			l.engine.EndAim(c.pointer.Pos)
		}
	}
}

func (l *Loop) publish() {
	s := l.engine.Snapshot()
	l.latest.Store(&s)
}
