// Package persiannum renders amounts the way the admin panel shows them to
// Persian-speaking users: spoken-word prices ("یک میلیون و پانصد هزار تومان")
// and Persian-digit strings with thousands grouping ("۱۲۳,۴۵۰ تومان").
// All functions are pure and safe for concurrent use.
package persiannum

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Toman is the currency unit word appended to formatted prices.
const Toman = "تومان"

const zeroWord = "صفر"

// conjunction joins number parts, e.g. "بیست و سه".
const conjunction = " و "

var persianDigits = [10]string{"۰", "۱", "۲", "۳", "۴", "۵", "۶", "۷", "۸", "۹"}

var ones = [10]string{"", "یک", "دو", "سه", "چهار", "پنج", "شش", "هفت", "هشت", "نه"}

// teens covers 10..19, which have dedicated words rather than "ده و یک".
var teens = [10]string{"ده", "یازده", "دوازده", "سیزده", "چهارده", "پانزده", "شانزده", "هفده", "هجده", "نوزده"}

var tens = [10]string{"", "", "بیست", "سی", "چهل", "پنجاه", "شصت", "هفتاد", "هشتاد", "نود"}

var hundreds = [10]string{"", "صد", "دویست", "سیصد", "چهارصد", "پانصد", "ششصد", "هفتصد", "هشتصد", "نهصد"}

// scales names each group of three digits, lowest first. Seven entries cover
// every int64 (19 digits).
var scales = [7]string{"", "هزار", "میلیون", "میلیارد", "تریلیون", "کوادریلیون", "کوینتیلیون"}

// threeDigitsToWords renders 1..999. Zero yields "".
func threeDigitsToWords(n int64) string {
	var parts []string

	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}

	remainder := n % 100
	switch {
	case remainder >= 10 && remainder <= 19:
		parts = append(parts, teens[remainder-10])
	case remainder >= 20:
		parts = append(parts, tens[remainder/10])
		if one := remainder % 10; one > 0 {
			parts = append(parts, ones[one])
		}
	case remainder > 0:
		parts = append(parts, ones[remainder])
	}

	return strings.Join(parts, conjunction)
}

// ToWords spells out the integer part of amount in Persian followed by the
// currency unit word, e.g. 1500000 -> "یک میلیون و پانصد هزار تومان".
// Zero is the bare zero word with no currency suffix (matching how the panel
// has always displayed an unpriced row), and negative amounts yield "".
// Every non-negative int64 amount is renderable, up to the quintillions.
func ToWords(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return ""
	}

	n := amount.IntPart()
	if n == 0 {
		return zeroWord
	}

	// Split into groups of three digits, then name each non-zero group with
	// its scale word, highest first.
	var groups []int64
	for n > 0 {
		groups = append(groups, n%1_000)
		n /= 1_000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		words := threeDigitsToWords(groups[i])
		if scales[i] != "" {
			words += " " + scales[i]
		}
		parts = append(parts, words)
	}

	return strings.Join(parts, conjunction) + " " + Toman
}

// ToDigits renders the integer part of amount using Persian digit glyphs with
// thousands grouping, e.g. 1234 -> "۱,۲۳۴".
func ToDigits(amount decimal.Decimal) string {
	latin := amount.IntPart()

	var sign string
	if latin < 0 {
		sign = "-"
		latin = -latin
	}

	digits := decimal.NewFromInt(latin).String()

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteString(persianDigits[r-'0'])
	}
	return b.String()
}

// FormatToman formats amount as grouped Persian digits plus the currency unit
// word, e.g. 123450 -> "۱۲۳,۴۵۰ تومان".
func FormatToman(amount decimal.Decimal) string {
	return ToDigits(amount) + " " + Toman
}
