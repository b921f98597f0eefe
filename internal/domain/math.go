package domain

import "github.com/shopspring/decimal"

// SafeParse parses a string into a decimal, returning zero for invalid or empty input.
func SafeParse(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DivCeil divides a by b and rounds the quotient toward positive infinity at
// the given number of fractional digits, so a per-unit price is never
// under-quoted. Returns zero for division by zero.
func DivCeil(a, b decimal.Decimal, places int32) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	q, r := a.QuoRem(b, places)
	if !r.IsZero() && a.Sign()*b.Sign() > 0 {
		q = q.Add(decimal.New(1, -places))
	}
	return q
}
