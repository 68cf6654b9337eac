package domain

import "github.com/shopspring/decimal"

// CurrencyPair is a venue currency pair: immutable identity plus the
// market-observed prices the venue streams for it. Constructed once at startup
// from the reference table; mutated only by the reconciler.
type CurrencyPair struct {
	ID    int32
	Code  string // e.g. "BTC/USD"
	Scale int32  // decimal places of the venue's price feed

	MarkPrice  decimal.Decimal
	SellPrice  decimal.Decimal
	BuyPrice   decimal.Decimal
	Unreliable bool // venue flags the feed as degraded

	OnUpdate Hook
}

func (cp *CurrencyPair) String() string {
	return cp.Code
}
