package session

import (
	"testing"

	"github.com/google/uuid"

	"digitex_go/internal/domain"
	"digitex_go/internal/message"
	"digitex_go/internal/refdata"
)

func testSession(t *testing.T, inbox chan *message.Inbound) *Session {
	t.Helper()
	reg, err := refdata.Default()
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	return New("wss://example.test/ws", "", []string{"BTCUSD"}, reg, inbox)
}

func TestSession_SubscribeErrorClassification(t *testing.T) {
	inbox := make(chan *message.Inbound, 1)
	reg, err := refdata.Default()
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}

	t.Run("unknown codes are a config error", func(t *testing.T) {
		// Misconfiguration will not heal by reconnecting.
		s := New("wss://example.test/ws", "", []string{"NOPE"}, reg, inbox)
		err := s.subscribe()
		if err == nil || domain.IsRetriable(err) {
			t.Fatalf("expected a non-retriable config error, got %v", err)
		}
	})

	t.Run("write without a connection is retriable", func(t *testing.T) {
		s := New("wss://example.test/ws", "", []string{"BTCUSD"}, reg, inbox)
		err := s.subscribe()
		if err == nil || !domain.IsRetriable(err) {
			t.Fatalf("expected a retriable network error, got %v", err)
		}
	})
}

func TestSession_HandleFrame(t *testing.T) {
	inbox := make(chan *message.Inbound, 1)
	s := testSession(t, inbox)

	id := uuid.New()
	frame := []byte(`{
		"kind": "order_status",
		"market_id": 1,
		"client_id": "` + id.String() + `",
		"error_code": 0,
		"trader_balance": "5000.5",
		"order": {
			"price": "100",
			"quantity": "10",
			"orig_quantity": "10",
			"side": "BUY",
			"order_type": "LIMIT",
			"duration": "GTC",
			"status": "ACCEPTED",
			"has_status": true
		}
	}`)
	s.handleFrame(frame)

	select {
	case msg := <-inbox:
		defer message.Release(msg)
		if msg.Kind != message.KindOrderStatus {
			t.Errorf("expected order_status, got %s", msg.Kind)
		}
		if msg.ClientID != id {
			t.Errorf("client id mangled: %s", msg.ClientID)
		}
		if msg.Order == nil || !msg.Order.HasStatus {
			t.Fatalf("order report not decoded: %+v", msg.Order)
		}
		if msg.Order.Price.String() != "100" {
			t.Errorf("unexpected price: %s", msg.Order.Price)
		}
	default:
		t.Fatal("frame did not reach the inbox")
	}
}

func TestSession_HandleFrame_UnknownKind(t *testing.T) {
	inbox := make(chan *message.Inbound, 1)
	s := testSession(t, inbox)

	s.handleFrame([]byte(`{"kind": "brand_new_thing", "market_id": 1}`))

	select {
	case msg := <-inbox:
		// Unknown kinds still flow through; the reconciler ignores them.
		defer message.Release(msg)
		if msg.Kind != message.KindUnknown {
			t.Errorf("expected KindUnknown, got %v", msg.Kind)
		}
	default:
		t.Fatal("unknown-kind frame should still reach the inbox")
	}
}

func TestSession_HandleFrame_Undecodable(t *testing.T) {
	inbox := make(chan *message.Inbound, 1)
	s := testSession(t, inbox)

	s.handleFrame([]byte(`not json`))

	select {
	case <-inbox:
		t.Fatal("undecodable frames must be dropped")
	default:
	}
}

func TestSession_HandleFrame_ShedsWhenInboxFull(t *testing.T) {
	inbox := make(chan *message.Inbound, 1)
	s := testSession(t, inbox)

	s.handleFrame([]byte(`{"kind": "trader_balance", "market_id": 1}`))
	// Inbox now full; the next frame is shed, not blocked on.
	s.handleFrame([]byte(`{"kind": "trader_balance", "market_id": 1}`))

	if got := len(inbox); got != 1 {
		t.Errorf("expected 1 queued message, got %d", got)
	}
}
