package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the account's view of one order at the venue. Identity is the
// client-generated correlation id, stable across venue round-trips.
// Quantity is the remaining quantity; it never increases once a fill lands.
type Order struct {
	ID        uuid.UUID
	Price     decimal.Decimal
	Quantity  decimal.Decimal
	Side      OrderSide
	Type      OrderType
	Duration  OrderDuration
	Status    OrderStatus
	ErrorCode int32 // nonzero when the venue rejected or flagged the order

	OnUpdate Hook
}

// IsLive reports whether the order belongs in the live registry.
func (o *Order) IsLive() bool {
	return o.Status.IsLive()
}

// Orders is the registry of live orders for one market, plus the aggregate
// margin figures the venue reports for them. Membership invariant: an order is
// present iff its last-known status is live (ACCEPTED or PARTIAL).
type Orders struct {
	byID map[uuid.UUID]*Order

	// Aggregates supplied directly by the venue, never computed locally.
	Margin     decimal.Decimal
	BuyMargin  decimal.Decimal
	SellMargin decimal.Decimal

	OnMarginsUpdate Hook
}

// NewOrders creates an empty registry.
func NewOrders() *Orders {
	return &Orders{byID: make(map[uuid.UUID]*Order)}
}

// Lookup returns the live order with the given id, or nil.
func (os *Orders) Lookup(id uuid.UUID) *Order {
	return os.byID[id]
}

// Add inserts an order into the registry.
func (os *Orders) Add(o *Order) {
	os.byID[o.ID] = o
}

// Remove drops an order from the registry. The caller may keep using the
// entity transiently, e.g. to notify observers of the terminal transition.
func (os *Orders) Remove(o *Order) {
	delete(os.byID, o.ID)
}

// Len returns the number of live orders.
func (os *Orders) Len() int {
	return len(os.byID)
}

// Snapshot returns a copy of the live-order set for external readers.
func (os *Orders) Snapshot() []*Order {
	out := make([]*Order, 0, len(os.byID))
	for _, o := range os.byID {
		out = append(out, o)
	}
	return out
}
