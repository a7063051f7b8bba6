package handler

import "github.com/shopspring/decimal"

// decimalPtr lifts a bound float64 field into the *decimal.Decimal the
// application DTOs expect.
func decimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}
