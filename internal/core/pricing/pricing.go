package pricing

import (
	"github.com/shopspring/decimal"
)

// Formula is the pricing configuration a partner applies on top of a supplier
// base price. A zero-value Formula is valid and leaves the base price unchanged
// (apart from the final rounding to a whole Toman).
type Formula struct {
	// ProfitPercentage is the markup percentage, e.g. 20 for 20%.
	ProfitPercentage decimal.Decimal
	// FixedAmount is a flat amount added after the percentage markup.
	FixedAmount decimal.Decimal
	// EndingDigit makes final prices end on a multiple of this value,
	// e.g. 5000 turns 123000 into 125000. Zero disables the step.
	EndingDigit int64
}

var hundred = decimal.NewFromInt(100)

// FinalPrice computes the selling price for a base price under the given formula:
//
//	profit     = basePrice * ProfitPercentage / 100
//	calculated = basePrice + profit + FixedAmount
//
// then, when EndingDigit > 0, rounds calculated UP to the next multiple of
// EndingDigit (a price already on a multiple is left as is), and finally rounds
// to a whole currency unit using round-half-up (shopspring Round, half away
// from zero; amounts here are non-negative so this is plain half-up).
//
// A base price that is zero, negative, or otherwise not priceable yields zero.
// The function is pure and never fails; callers that cannot resolve a partner
// formula are expected to fall back to the base price themselves.
func FinalPrice(basePrice decimal.Decimal, f Formula) decimal.Decimal {
	if !basePrice.IsPositive() {
		return decimal.Zero
	}

	profit := basePrice.Mul(f.ProfitPercentage).Div(hundred)
	calculated := basePrice.Add(profit).Add(f.FixedAmount)

	return ApplyEnding(calculated, f.EndingDigit)
}

// ApplyEnding rounds price UP to the next multiple of endingDigit (a price
// already on a multiple is left as is) and then to a whole currency unit.
// endingDigit <= 0 only applies the final rounding. Pricing-rule adjustments
// go through this after the rules run so adjusted prices keep the partner's
// ending convention.
func ApplyEnding(price decimal.Decimal, endingDigit int64) decimal.Decimal {
	if endingDigit > 0 {
		ending := decimal.NewFromInt(endingDigit)
		remainder := price.Mod(ending)
		if !remainder.IsZero() {
			price = price.Add(ending.Sub(remainder))
		}
	}
	return price.Round(0)
}
