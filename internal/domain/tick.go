package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundDirection selects which neighbouring tick a price snaps to.
type RoundDirection string

const (
	RoundClosest RoundDirection = "closest"
	RoundUp      RoundDirection = "up"
	RoundDown    RoundDirection = "down"
)

// Tick is a market's immutable rounding policy.
type Tick struct {
	Size      decimal.Decimal // minimal price step orders may quote
	Increment decimal.Decimal // price increment of the venue feed; zero for spot markets
	Scale     int32           // display decimal places
}

// Round snaps price onto the tick grid in the given direction.
func (t Tick) Round(price decimal.Decimal, dir RoundDirection) (decimal.Decimal, error) {
	if t.Size.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("tick size is zero: %w", ErrInvalidTick)
	}
	steps := price.Div(t.Size)
	switch dir {
	case RoundUp:
		steps = steps.Ceil()
	case RoundDown:
		steps = steps.Floor()
	case RoundClosest:
		steps = steps.Round(0)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidRoundDirection, dir)
	}
	return steps.Mul(t.Size), nil
}
