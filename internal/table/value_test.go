package table

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		numeric bool
		num     float64
		raw     string
	}{
		{name: "integer", in: "42", numeric: true, num: 42, raw: "42"},
		{name: "negative decimal", in: "-3.5", numeric: true, num: -3.5, raw: "-3.5"},
		{name: "uncertainty suffix", in: "68.03±2.74", numeric: true, num: 68.03, raw: "68.03±2.74"},
		{name: "trailing dot", in: "12.", numeric: true, num: 12, raw: "12."},
		{name: "unit suffix", in: "  250ms ", numeric: true, num: 250, raw: "250ms"},
		{name: "text", in: "apple", raw: "apple"},
		{name: "leading dot is text", in: ".5", raw: ".5"},
		{name: "plus sign is text", in: "+7", raw: "+7"},
		{name: "lone minus", in: "-", raw: "-"},
		{name: "empty", in: "   ", raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseValue(tt.in)
			assert.Equal(t, tt.numeric, v.IsNumeric())
			assert.Equal(t, tt.raw, v.Raw)
			if tt.numeric {
				assert.InDelta(t, tt.num, v.Num, 1e-9)
			}
		})
	}
}

func TestParseValue_OverflowStaysNumeric(t *testing.T) {
	huge := ParseValue(strings.Repeat("9", 401) + " units")
	assert.True(t, huge.IsNumeric())
	assert.True(t, math.IsInf(huge.Num, 1))

	neg := ParseValue("-" + strings.Repeat("9", 401))
	assert.True(t, neg.IsNumeric())
	assert.True(t, math.IsInf(neg.Num, -1))

	order := Order([]Value{huge, ParseValue("5"), neg}, Ascending, DefaultCollator())
	assert.Equal(t, []int{2, 1, 0}, order)
}
