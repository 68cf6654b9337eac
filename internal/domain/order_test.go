package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestOrderStatus_IsLive(t *testing.T) {
	live := []OrderStatus{OrderStatusAccepted, OrderStatusPartial}
	terminal := []OrderStatus{OrderStatusFilled, OrderStatusCanceled, OrderStatusRejected, OrderStatusExpired, OrderStatusUnknown}

	for _, s := range live {
		if !s.IsLive() {
			t.Errorf("%q should be live", s)
		}
	}
	for _, s := range terminal {
		if s.IsLive() {
			t.Errorf("%q should be terminal", s)
		}
	}
}

func TestOrders_Membership(t *testing.T) {
	orders := NewOrders()
	id := uuid.New()
	o := &Order{ID: id, Status: OrderStatusAccepted}

	if orders.Lookup(id) != nil {
		t.Fatal("empty registry should not resolve ids")
	}

	orders.Add(o)
	if orders.Lookup(id) != o {
		t.Fatal("added order should resolve by id")
	}
	if orders.Len() != 1 {
		t.Fatalf("expected 1 live order, got %d", orders.Len())
	}

	orders.Remove(o)
	if orders.Lookup(id) != nil {
		t.Error("removed order should not resolve")
	}

	// The transient reference stays usable after removal.
	if o.ID != id || o.Status != OrderStatusAccepted {
		t.Error("removed order entity should keep its state")
	}
}

func TestOrders_Snapshot(t *testing.T) {
	orders := NewOrders()
	orders.Add(&Order{ID: uuid.New(), Status: OrderStatusAccepted})
	orders.Add(&Order{ID: uuid.New(), Status: OrderStatusPartial})

	snap := orders.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 orders in snapshot, got %d", len(snap))
	}
}
