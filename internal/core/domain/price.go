package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price is an amount in millionths of a US dollar.
type Price int64

// microsPerDollar is the number of Price units in one dollar.
const microsPerDollar = 1_000_000

// Free is the price of zero-price entrypoints.
const Free Price = 0

// ParsePrice parses a decimal dollar amount such as "0.02" or "$1.5".
func ParsePrice(s string) (Price, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" {
		return 0, fmt.Errorf("%w: empty price", ErrInvalidInput)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > 6 {
		return 0, fmt.Errorf("%w: price %q has more than 6 decimal places", ErrInvalidInput, s)
	}
	if whole == "" {
		whole = "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("%w: invalid price %q", ErrInvalidInput, s)
	}
	if dollars > math.MaxInt64/microsPerDollar {
		return 0, fmt.Errorf("%w: price %q is too large", ErrInvalidInput, s)
	}

	var micros int64
	if frac != "" {
		padded := frac + strings.Repeat("0", 6-len(frac))
		micros, err = strconv.ParseInt(padded, 10, 64)
		if err != nil || micros < 0 {
			return 0, fmt.Errorf("%w: invalid price %q", ErrInvalidInput, s)
		}
	}

	return Price(dollars*microsPerDollar + micros), nil
}

// Dollars returns the price as a decimal string without trailing zeros, e.g. "0.02".
func (p Price) Dollars() string {
	s := fmt.Sprintf("%d.%06d", int64(p)/microsPerDollar, int64(p)%microsPerDollar)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// String returns the price formatted as "$0.02".
func (p Price) String() string {
	return "$" + p.Dollars()
}

// IsFree returns true for zero-price amounts.
func (p Price) IsFree() bool {
	return p == Free
}
