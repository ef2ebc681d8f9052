package models

import (
	"math"
	"strconv"
)

// Number is a metric quantity that remembers whether it is a whole count
// or a fractional value. Whole values serialize as integers, fractional
// values as floats, so 1200 and 4.5 survive a round trip unchanged.
type Number float64

// IsInt reports whether the value is a whole number.
func (n Number) IsInt() bool {
	f := float64(n)
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// Int truncates toward zero. Fractional remainders are discarded, not rounded.
func (n Number) Int() int64 {
	return int64(math.Trunc(float64(n)))
}

func (n Number) String() string {
	if n.IsInt() {
		return strconv.FormatInt(n.Int(), 10)
	}
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n Number) MarshalYAML() (interface{}, error) {
	if n.IsInt() {
		return n.Int(), nil
	}
	return float64(n), nil
}
