package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid pricing input")

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// Breakdown is the derived price of a product. Costs are whole currency units,
// BasePrice keeps full precision.
type Breakdown struct {
	BasePrice            decimal.Decimal
	MakingCost           decimal.Decimal
	WastageCost          decimal.Decimal
	TotalPrice           decimal.Decimal
	EffectiveRatePerGram decimal.Decimal
}

// Compute parses the raw inputs and prices them. Any input that is not a finite
// number yields ErrInvalidInput; nothing is defaulted to zero.
func Compute(weight, ratePerGram, makingPercent, wastagePercent string) (Breakdown, error) {
	w, err := ParseDecimal("weight", weight)
	if err != nil {
		return Breakdown{}, err
	}
	r, err := ParseDecimal("rate", ratePerGram)
	if err != nil {
		return Breakdown{}, err
	}
	m, err := ParseDecimal("making cost percent", makingPercent)
	if err != nil {
		return Breakdown{}, err
	}
	ws, err := ParseDecimal("wastage percent", wastagePercent)
	if err != nil {
		return Breakdown{}, err
	}
	return ComputeDecimal(w, r, m, ws), nil
}

// ComputeDecimal prices already-typed inputs. The total is rounded from the
// unrounded sum, so it can differ by one from the sum of the displayed costs.
func ComputeDecimal(weight, ratePerGram, makingPercent, wastagePercent decimal.Decimal) Breakdown {
	base := weight.Mul(ratePerGram)
	making := makingPercent.Div(hundred).Mul(base)
	wastage := wastagePercent.Div(hundred).Mul(base)

	return Breakdown{
		BasePrice:            base,
		MakingCost:           Round(making),
		WastageCost:          Round(wastage),
		TotalPrice:           Round(base.Add(making).Add(wastage)),
		EffectiveRatePerGram: ratePerGram,
	}
}

// Round returns the nearest integer, halves going toward positive infinity.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// ParseDecimal is the strict number parser shared by every price input.
func ParseDecimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, field, raw)
	}
	return d, nil
}
