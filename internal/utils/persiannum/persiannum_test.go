package persiannum_test

import (
	"math"
	"strings"
	"testing"

	"github.com/bazaryar/bazaryar_backend/internal/utils/persiannum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero is the bare zero word without currency suffix", 0, "صفر"},
		{"single digit", 5, "پنج تومان"},
		{"teen uses its own word", 19, "نوزده تومان"},
		{"ten itself", 10, "ده تومان"},
		{"tens and ones joined with conjunction", 42, "چهل و دو تومان"},
		{"round tens", 90, "نود تومان"},
		{"hundreds", 300, "سیصد تومان"},
		{"full three digit group", 345, "سیصد و چهل و پنج تومان"},
		{"hundred with teen remainder", 815, "هشتصد و پانزده تومان"},
		{"one thousand keeps its leading one", 1000, "یک هزار تومان"},
		{"thousands with remainder", 2500, "دو هزار و پانصد تومان"},
		{"millions and thousands", 1500000, "یک میلیون و پانصد هزار تومان"},
		{"millions only", 7000000, "هفت میلیون تومان"},
		{"all three groups", 1234567, "یک میلیون و دویست و سی و چهار هزار و پانصد و شصت و هفت تومان"},
		{"largest amount below a billion", 999_999_999, "نهصد و نود و نه میلیون و نهصد و نود و نه هزار و نهصد و نود و نه تومان"},
		{"one billion", 1_000_000_000, "یک میلیارد تومان"},
		{"billions with millions", 2_500_000_000, "دو میلیارد و پانصد میلیون تومان"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, persiannum.ToWords(decimal.NewFromInt(tt.amount)))
		})
	}
}

// Aggregates like a total-debt figure can be arbitrarily large; every
// non-negative int64 must render as a Toman phrase without failing.
func TestToWords_LargeAmounts(t *testing.T) {
	amounts := []int64{
		1_000_000_000,
		987_654_321_098,
		1_000_000_000_000_000_000,
		math.MaxInt64,
	}
	for _, amount := range amounts {
		got := persiannum.ToWords(decimal.NewFromInt(amount))
		assert.NotEmpty(t, got, "ToWords(%d)", amount)
		assert.True(t, strings.HasSuffix(got, persiannum.Toman), "ToWords(%d) = %q", amount, got)
	}
}

func TestToWords_NegativeIsEmpty(t *testing.T) {
	assert.Equal(t, "", persiannum.ToWords(decimal.NewFromInt(-1)))
	assert.Equal(t, "", persiannum.ToWords(decimal.NewFromFloat(-0.5)))
}

func TestToWords_TruncatesFractions(t *testing.T) {
	assert.Equal(t, "نوزده تومان", persiannum.ToWords(decimal.NewFromFloat(19.9)))
}

func TestToDigits(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "۰"},
		{7, "۷"},
		{123, "۱۲۳"},
		{1234, "۱,۲۳۴"},
		{123450, "۱۲۳,۴۵۰"},
		{1234567, "۱,۲۳۴,۵۶۷"},
		{1234.99, "۱,۲۳۴"}, // integer part only
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, persiannum.ToDigits(decimal.NewFromFloat(tt.amount)))
	}
}

func TestFormatToman(t *testing.T) {
	assert.Equal(t, "۱۲۳,۴۵۰ تومان", persiannum.FormatToman(decimal.NewFromInt(123450)))
	assert.Equal(t, "۰ تومان", persiannum.FormatToman(decimal.Zero))
}

// Formatting has no hidden state; repeated calls always agree.
func TestFormattingIsIdempotent(t *testing.T) {
	amount := decimal.NewFromInt(987654)
	words := persiannum.ToWords(amount)
	digits := persiannum.ToDigits(amount)
	for i := 0; i < 5; i++ {
		assert.Equal(t, words, persiannum.ToWords(amount))
		assert.Equal(t, digits, persiannum.ToDigits(amount))
	}
}
