package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

// VND is the operating currency. It has no minor unit: the smallest
// representable amount is one dong, so monetary rounding lands on whole
// numbers.
const VND Currency = "VND"

// Exponent returns the number of decimal places of the currency's
// smallest unit.
func (c Currency) Exponent() int32 {
	return 0
}

// IsValid checks whether the currency is supported
func (c Currency) IsValid() bool {
	return c == VND
}

// Money is an immutable monetary value. All operations return new Money
// instances and never mutate the receiver.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a Money value in the given currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, fmt.Errorf("unsupported currency: %s", currency)
	}
	return Money{amount: amount, currency: currency}, nil
}

// NewMoneyVND creates a Money value in the operating currency
func NewMoneyVND(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: VND}
}

// ZeroVND returns a zero amount in the operating currency
func ZeroVND() Money {
	return Money{amount: decimal.Zero, currency: VND}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two amounts of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of two amounts of the same currency
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Multiply scales the amount by a decimal factor
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Percentage returns percent/100 of the amount, unrounded
func (m Money) Percentage(percent decimal.Decimal) Money {
	return Money{
		amount:   m.amount.Mul(percent).Div(decimal.NewFromInt(100)),
		currency: m.currency,
	}
}

// RoundToUnit rounds to the currency's smallest unit with ties going up.
// Billing amounts are never negative, so decimal.Round's half-away-from-zero
// tie handling lands on the same value as half-up.
func (m Money) RoundToUnit() Money {
	return Money{amount: m.amount.Round(m.currency.Exponent()), currency: m.currency}
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is above zero
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Equals compares amount and currency
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// GreaterThan compares two amounts of the same currency
func (m Money) GreaterThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan compares two amounts of the same currency
func (m Money) LessThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return m.amount.LessThan(other.amount), nil
}

// String renders the amount followed by the currency code
func (m Money) String() string {
	return m.amount.String() + " " + string(m.currency)
}

type moneyJSON struct {
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
}

// MarshalJSON serializes the amount as an exact numeric string
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.amount.String(),
		Currency: m.currency,
	})
}

// UnmarshalJSON parses the string-amount representation
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", raw.Amount, err)
	}
	if !raw.Currency.IsValid() {
		return fmt.Errorf("unsupported currency: %s", raw.Currency)
	}
	m.amount = amount
	m.currency = raw.Currency
	return nil
}

// Value implements driver.Valuer, storing the bare decimal amount
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// Scan implements sql.Scanner, reading a bare decimal amount as VND
func (m *Money) Scan(value interface{}) error {
	if value == nil {
		m.amount = decimal.Zero
		m.currency = VND
		return nil
	}

	var amount decimal.Decimal
	var err error
	switch v := value.(type) {
	case string:
		amount, err = decimal.NewFromString(v)
	case []byte:
		amount, err = decimal.NewFromString(string(v))
	case int64:
		amount = decimal.NewFromInt(v)
	case float64:
		amount = decimal.NewFromFloat(v)
	default:
		return errors.New("unsupported source type for money")
	}
	if err != nil {
		return err
	}

	m.amount = amount
	m.currency = VND
	return nil
}
