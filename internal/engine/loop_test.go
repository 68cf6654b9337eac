package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"digitex_go/internal/domain"
	"digitex_go/internal/message"
)

// awaitTrader blocks until the market's trader hook fires, which happens on
// the loop goroutine after all mutations for a message. Receiving from the
// channel orders the test's reads after those mutations.
func awaitTrader(t *testing.T, m *domain.Market) <-chan struct{} {
	t.Helper()
	done := make(chan struct{}, 1)
	m.Trader.OnUpdate = func() any {
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}
	return done
}

func TestLoop_ProcessesInboxMessages(t *testing.T) {
	reg := testRegistry(t)
	rec := NewReconciler(reg, &snapshotRecorder{}, nil)

	inbox := make(chan *message.Inbound, 10)
	loop := NewLoop(inbox, rec, nil)

	m, _ := reg.MarketByID(1)
	done := awaitTrader(t, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	id := uuid.New()
	loop.Inbox() <- orderStatusMsg(id, domain.OrderStatusAccepted)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not processed in time")
	}
	if m.Trader.Orders.Lookup(id) == nil {
		t.Fatal("order was not reconciled")
	}
}

func TestLoop_PanicIsConfinedToItsMessage(t *testing.T) {
	reg := testRegistry(t)
	rec := NewReconciler(reg, &snapshotRecorder{}, nil)

	inbox := make(chan *message.Inbound, 10)
	loop := NewLoop(inbox, rec, nil)

	m, _ := reg.MarketByID(1)
	done := make(chan struct{}, 1)
	calls := 0
	// Fired on the loop goroutine only, so the counter needs no lock.
	m.Trader.OnUpdate = func() any {
		calls++
		if calls == 1 {
			panic("observer blew up")
		}
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	loop.Inbox() <- &message.Inbound{Kind: message.KindTraderBalance, MarketID: 1}
	loop.Inbox() <- &message.Inbound{Kind: message.KindTraderBalance, MarketID: 1}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("a panicking observer must not kill the processing goroutine")
	}
}

func TestLoop_BadMessageDoesNotStallTheStream(t *testing.T) {
	reg := testRegistry(t)
	rec := NewReconciler(reg, &snapshotRecorder{}, nil)

	inbox := make(chan *message.Inbound, 10)
	loop := NewLoop(inbox, rec, nil)

	m, _ := reg.MarketByID(1)
	done := awaitTrader(t, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	// Unknown market: dropped with an error, stream continues.
	loop.Inbox() <- &message.Inbound{Kind: message.KindTraderBalance, MarketID: 404}

	id := uuid.New()
	loop.Inbox() <- orderStatusMsg(id, domain.OrderStatusAccepted)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("the message after a bad one was not processed")
	}
	if m.Trader.Orders.Lookup(id) == nil {
		t.Fatal("order was not reconciled")
	}
}
