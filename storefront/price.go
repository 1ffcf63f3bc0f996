package storefront

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceUnit is the divisor between listed prices and the thousands units tracked internally
const PriceUnit = 1000

var pricePrinter = message.NewPrinter(language.Indonesian)

// NormalizePrice parses a raw listed price and converts it to thousands units,
// rounded to the nearest integer. Non-numeric, negative and non-finite input is rejected.
func NormalizePrice(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return math.Round(v / PriceUnit), true
}

// FormatPrice renders a thousands-unit price with Indonesian digit grouping and the unit suffix
func FormatPrice(units float64, suffix string) string {
	return pricePrinter.Sprintf("%d", int64(math.Round(units))) + suffix
}
