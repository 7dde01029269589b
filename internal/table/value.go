package table

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	Text Kind = iota
	Numeric
)

// leadingNumber matches the numeric prefix of a cell, so "68.03±2.74"
// yields 68.03 and the uncertainty suffix is ignored.
var leadingNumber = regexp.MustCompile(`^-?\d+\.?\d*`)

// Value is a parsed cell: either Numeric or Text. Raw always holds the
// trimmed cell text, which is what Text values are collated on.
type Value struct {
	Kind Kind
	Num  float64
	Raw  string
}

// ParseValue trims s and extracts its leading number when present.
func ParseValue(s string) Value {
	raw := strings.TrimSpace(s)
	m := leadingNumber.FindString(raw)
	if m == "" {
		return Value{Kind: Text, Raw: raw}
	}
	// An overlong digit run parses as ±Inf with ErrRange and stays numeric.
	n, err := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{Kind: Text, Raw: raw}
	}
	return Value{Kind: Numeric, Num: n, Raw: raw}
}

// IsNumeric reports whether v holds a number.
func (v Value) IsNumeric() bool {
	return v.Kind == Numeric
}

func (v Value) String() string {
	return v.Raw
}
