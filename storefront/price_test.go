package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"1500000", 1500, true},
		{"75000", 75, true},
		{" 2499 ", 2, true},
		{"2500", 3, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-5000", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizePrice(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1.500J", FormatPrice(1500, "J"))
	assert.Equal(t, "75J", FormatPrice(75, "J"))
	assert.Equal(t, "1.250.000J", FormatPrice(1250000, "J"))
	assert.Equal(t, "0", FormatPrice(0, ""))
}
