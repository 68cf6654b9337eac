package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Market is one venue market: immutable identity bound to a currency pair and
// a tick policy, owning the account's trader view, the depth book and the last
// trade. Identity fields are fixed at construction; everything else is mutated
// only by the reconciliation loop.
type Market struct {
	ID   int32
	Name string // e.g. "BTC/USD"
	Code string // e.g. "BTCUSD"

	CurrencyPair *CurrencyPair
	Tick         Tick

	Trader    *Trader
	OrderBook OrderBook
	LastTrade *Trade // nil until the first message carrying last-trade fields
}

// NewMarket wires up a market with a fresh trader and an uninitialized book.
func NewMarket(id int32, name, code string, pair *CurrencyPair, tick Tick) *Market {
	return &Market{
		ID:           id,
		Name:         name,
		Code:         code,
		CurrencyPair: pair,
		Tick:         tick,
		Trader:       NewTrader(),
	}
}

// RoundedSpotPrice returns the pair's mark price snapped onto this market's
// tick grid.
func (m *Market) RoundedSpotPrice(dir RoundDirection) (decimal.Decimal, error) {
	return m.Tick.Round(m.CurrencyPair.MarkPrice, dir)
}

func (m *Market) String() string {
	return fmt.Sprintf("Market(id=%d, code=%s)", m.ID, m.Code)
}
