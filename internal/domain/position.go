package domain

import "github.com/shopspring/decimal"

// Position is the per-market position aggregate. The venue reports it whole;
// every relevant message overwrites all fields, nothing is patched
// incrementally.
type Position struct {
	Contracts         decimal.Decimal
	Volume            decimal.Decimal
	LiquidationVolume decimal.Decimal
	BankruptcyVolume  decimal.Decimal
	Margin            decimal.Decimal
	Type              PositionType

	OnUpdate Hook
}

// IsLong reports whether the position is long.
func (p *Position) IsLong() bool {
	return p.Type == PositionLong
}

// IsShort reports whether the position is short.
func (p *Position) IsShort() bool {
	return p.Type == PositionShort
}
