package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trader is the account's aggregate view of one market: balances and P&L plus
// ownership of the position and the live-order registry.
type Trader struct {
	Balance  decimal.Decimal
	UPNL     decimal.Decimal // unrealized P&L
	PNL      decimal.Decimal // realized P&L
	Leverage int32

	Position Position
	Orders   *Orders

	OnUpdate Hook
}

// NewTrader creates a trader with an empty order registry.
func NewTrader() *Trader {
	return &Trader{Orders: NewOrders()}
}

// Trade is the market's last trade, overwritten wholesale whenever a message
// carries last-trade fields.
type Trade struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
	Time     time.Time

	OnUpdate Hook
}
