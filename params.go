package cutquote

import (
	"fmt"
	"math"
)

// CostParams controls how a profile is priced.
type CostParams struct {
	// Margin is added once to each dimension of the bounding rectangle
	// before the material is costed.
	Margin float64
	// CostPerArea is the price of one unit of area of sheet material.
	CostPerArea float64
	// BaseSpeed is the cutting speed, in length per unit of time, for
	// straight cuts.
	BaseSpeed float64
	// CostPerTime is the price of one unit of cutting time.
	CostPerTime float64
}

// NewCostParams returns cost parameters in their conventional positional
// order.
func NewCostParams(margin, costPerArea, baseSpeed, costPerTime float64) CostParams {
	return CostParams{
		Margin:      margin,
		CostPerArea: costPerArea,
		BaseSpeed:   baseSpeed,
		CostPerTime: costPerTime,
	}
}

// Validate reports whether p can be used to price a profile. All values must
// be finite, BaseSpeed must be positive and the others non-negative.
func (p CostParams) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"margin", p.Margin},
		{"cost per area", p.CostPerArea},
		{"base speed", p.BaseSpeed},
		{"cost per time", p.CostPerTime},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidParams, f.name, f.v)
		}
	}
	if p.BaseSpeed == 0 {
		return fmt.Errorf("%w: base speed must be positive", ErrInvalidParams)
	}
	return nil
}

// MaterialCost returns the price of the sheet material needed for a part
// whose bounding rectangle is r.
func (p CostParams) MaterialCost(r Rect) float64 {
	return (r.Width() + p.Margin) * (r.Height() + p.Margin) * p.CostPerArea
}
