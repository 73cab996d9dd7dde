package pricing_test

import (
	"testing"

	"github.com/bazaryar/bazaryar_backend/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func formula(profit, fixed float64, ending int64) pricing.Formula {
	return pricing.Formula{
		ProfitPercentage: decimal.NewFromFloat(profit),
		FixedAmount:      decimal.NewFromFloat(fixed),
		EndingDigit:      ending,
	}
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice decimal.Decimal
		formula   pricing.Formula
		want      int64
	}{
		{
			name:      "zero base price is not priceable",
			basePrice: decimal.Zero,
			formula:   formula(10, 500, 1000),
			want:      0,
		},
		{
			name:      "negative base price is not priceable",
			basePrice: decimal.NewFromInt(-5),
			formula:   formula(10, 500, 1000),
			want:      0,
		},
		{
			name:      "percentage markup only",
			basePrice: decimal.NewFromInt(100),
			formula:   formula(10, 0, 0),
			want:      110,
		},
		{
			name:      "percentage markup plus fixed amount",
			basePrice: decimal.NewFromInt(100),
			formula:   formula(10, 5, 0),
			want:      115,
		},
		{
			name:      "ending digit rounds up to next multiple",
			basePrice: decimal.NewFromInt(103),
			formula:   formula(0, 0, 10),
			want:      110,
		},
		{
			name:      "exact multiple of ending digit is unchanged",
			basePrice: decimal.NewFromInt(100),
			formula:   formula(0, 0, 10),
			want:      100,
		},
		{
			name:      "ending digit zero skips the rounding step",
			basePrice: decimal.NewFromInt(103),
			formula:   formula(0, 0, 0),
			want:      103,
		},
		{
			name:      "typical Toman pricing",
			basePrice: decimal.NewFromInt(185000),
			formula:   formula(20, 15000, 5000),
			want:      240000, // 185000 * 1.2 + 15000 = 237000 -> next multiple of 5000
		},
		{
			name:      "fractional markup rounds half-up at the end",
			basePrice: decimal.NewFromInt(101),
			formula:   formula(0.5, 0, 0),
			want:      102, // 101.505 -> 102
		},
		{
			name:      "negative formula fields are applied as-is",
			basePrice: decimal.NewFromInt(100),
			formula:   formula(-10, -5, 0),
			want:      85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.FinalPrice(tt.basePrice, tt.formula)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"FinalPrice(%s) = %s, want %d", tt.basePrice, got, tt.want)
		})
	}
}

// Whatever the inputs, an active ending digit must divide the result exactly.
func TestFinalPrice_EndingDigitInvariant(t *testing.T) {
	endings := []int64{2, 7, 10, 100, 500, 5000}
	bases := []int64{1, 13, 999, 12345, 185000, 999999}

	for _, ending := range endings {
		for _, base := range bases {
			f := formula(17.5, 333, ending)
			got := pricing.FinalPrice(decimal.NewFromInt(base), f)

			remainder := got.Mod(decimal.NewFromInt(ending))
			assert.True(t, remainder.IsZero(),
				"FinalPrice(%d) = %s is not a multiple of %d", base, got, ending)
		}
	}
}

func TestFinalPrice_ResultIsWholeAndNonNegative(t *testing.T) {
	bases := []float64{0.4, 1, 99.99, 1234.56, 1000000}
	for _, base := range bases {
		got := pricing.FinalPrice(decimal.NewFromFloat(base), formula(12.3, 45.6, 0))
		assert.True(t, got.Equal(got.Round(0)), "FinalPrice(%v) = %s is not whole", base, got)
		assert.False(t, got.IsNegative(), "FinalPrice(%v) = %s is negative", base, got)
	}
}

func TestFinalPrice_IsPure(t *testing.T) {
	base := decimal.NewFromInt(185000)
	f := formula(20, 15000, 5000)

	first := pricing.FinalPrice(base, f)
	for i := 0; i < 5; i++ {
		assert.True(t, first.Equal(pricing.FinalPrice(base, f)))
	}
}
