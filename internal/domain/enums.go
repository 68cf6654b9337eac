package domain

// OrderSide identifies the direction of an order.
type OrderSide string

const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// OrderType identifies how an order executes.
type OrderType string

const (
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeMarket OrderType = "MARKET"
)

// OrderDuration is the time-in-force policy of an order.
type OrderDuration string

const (
	DurationGTC OrderDuration = "GTC" // good till canceled
	DurationIOC OrderDuration = "IOC" // immediate or cancel
	DurationFOK OrderDuration = "FOK" // fill or kill
	DurationGTF OrderDuration = "GTF" // good till funding
)

// OrderStatus is the venue-reported lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusUnknown  OrderStatus = ""
	OrderStatusAccepted OrderStatus = "ACCEPTED"
	OrderStatusPartial  OrderStatus = "PARTIAL"
	OrderStatusFilled   OrderStatus = "FILLED"
	OrderStatusCanceled OrderStatus = "CANCELED"
	OrderStatusRejected OrderStatus = "REJECTED"
	OrderStatusExpired  OrderStatus = "EXPIRED"
)

// IsLive reports whether an order with this status belongs in the live
// registry. Everything outside the live set is terminal.
func (s OrderStatus) IsLive() bool {
	return s == OrderStatusAccepted || s == OrderStatusPartial
}

// PositionType is the direction of the account's open position.
type PositionType string

const (
	PositionFlat  PositionType = "FLAT"
	PositionLong  PositionType = "LONG"
	PositionShort PositionType = "SHORT"
)
