package engine

import (
	"context"
	"log/slog"
	"time"

	"digitex_go/internal/infra"
	"digitex_go/internal/message"
)

// Journal persists a diagnostic record of each inbound envelope. The
// projection itself is never persisted; it is rebuilt from the venue's
// authoritative stream on every start.
type Journal interface {
	Append(msg *message.Inbound) error
}

// Loop is the single-threaded processing loop. Messages are consumed from the
// inbox and applied strictly one at a time, each to completion of its
// notification flush, before the next one begins. That serialization is the
// sole source of state consistency; no locks guard the entities.
type Loop struct {
	inbox   chan *message.Inbound
	rec     *Reconciler
	journal Journal
}

// NewLoop creates a processing loop over an existing inbox channel, so the
// transport can be wired to the same channel before the loop starts. journal
// may be nil to disable the diagnostic journal.
func NewLoop(inbox chan *message.Inbound, rec *Reconciler, journal Journal) *Loop {
	return &Loop{
		inbox:   inbox,
		rec:     rec,
		journal: journal,
	}
}

// Inbox returns the message channel. The session sends decoded envelopes here.
func (l *Loop) Inbox() chan<- *message.Inbound {
	return l.inbox
}

// Run consumes the inbox until ctx is canceled. This MUST run in a single
// goroutine.
func (l *Loop) Run(ctx context.Context) {
	slog.Info("processing loop started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("processing loop stopping")
			return
		case msg := <-l.inbox:
			l.process(msg)
		}
	}
}

func (l *Loop) process(msg *message.Inbound) {
	start := time.Now()

	// A panic while applying a message must not take down the single
	// processing goroutine; the message is dropped like any other bad one.
	defer func() {
		if r := recover(); r != nil {
			infra.GlobalMetrics.RecordError()
			slog.Error("panic while processing message",
				slog.String("kind", msg.Kind.String()),
				slog.Int("market_id", int(msg.MarketID)),
				slog.Any("panic", r))
		}
		message.Release(msg)
	}()

	if l.journal != nil {
		if err := l.journal.Append(msg); err != nil {
			// The journal is diagnostic; losing a record never blocks
			// reconciliation.
			slog.Warn("journal append failed", slog.Any("error", err))
		}
	}

	if err := l.rec.Process(msg); err != nil {
		// A malformed message aborts only itself; the stream goes on.
		infra.GlobalMetrics.RecordError()
		slog.Error("message dropped",
			slog.String("kind", msg.Kind.String()),
			slog.Int("market_id", int(msg.MarketID)),
			slog.Any("error", err))
	}

	infra.GlobalMetrics.RecordMessage(time.Since(start).Nanoseconds())
}
