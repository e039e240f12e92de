// Package money carries currency amounts as integer minor units.
//
// Amounts are serialised as JSON numbers with two decimals (3500 euros is
// written as 3500.00) so the persisted layout stays readable by the browser UI,
// while every sum inside the service is exact.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a value in cents.
type Amount int64

const DefaultCurrency = "EUR"

// FromFloat converts a major-unit value (e.g. 29.99) rounding half away from zero.
func FromFloat(v float64) Amount {
	return Amount(math.Round(v * 100))
}

// FromMajor converts whole currency units.
func FromMajor(units int64) Amount {
	return Amount(units * 100)
}

func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// Major returns the whole-unit part, truncated toward zero.
func (a Amount) Major() int64 {
	return int64(a) / 100
}

func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Percent returns a × rate / 100 rounded once, half away from zero, to the
// nearest cent. rate may carry up to two decimals (7.5, 12.25).
func (a Amount) Percent(rate float64) Amount {
	basisPoints := int64(math.Round(rate * 100))
	num := int64(a) * basisPoints
	q := num / 10000
	r := num % 10000
	if r < 0 {
		r = -r
	}
	if r*2 >= 10000 {
		if num < 0 {
			q--
		} else {
			q++
		}
	}
	return Amount(q)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Parse reads a decimal string such as "2975", "2975.5" or "-12.05".
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("money: empty amount")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("money: parse %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	return FromFloat(f), nil
}
