package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(100000), VND)
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, VND, m.Currency())

	_, err = NewMoney(decimal.NewFromInt(1), Currency("XYZ"))
	assert.Error(t, err)
}

func TestMoneyAddSubtract(t *testing.T) {
	a := NewMoneyVND(decimal.NewFromInt(300000))
	b := NewMoneyVND(decimal.NewFromInt(24000))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(324000)))

	diff, err := sum.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Equals(a))
}

func TestMoneyPercentage(t *testing.T) {
	subtotal := NewMoneyVND(decimal.NewFromInt(300000))
	vat := subtotal.Percentage(decimal.NewFromInt(8)).RoundToUnit()
	assert.True(t, vat.Amount().Equal(decimal.NewFromInt(24000)))
}

func TestMoneyRoundToUnit(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"already whole", "150000", "150000"},
		{"fraction below half", "1234.4", "1234"},
		{"fraction at half rounds up", "1234.5", "1235"},
		{"fraction above half", "1234.6", "1235"},
		{"repeated rounding is stable", "24000", "24000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			got := NewMoneyVND(amount).RoundToUnit()
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Amount().Equal(want), "got %s", got.Amount())
		})
	}
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	a := NewMoneyVND(decimal.NewFromInt(10))
	b := Money{amount: decimal.NewFromInt(5), currency: Currency("USD")}

	_, err := a.Add(b)
	assert.Error(t, err)

	_, err = a.Subtract(b)
	assert.Error(t, err)

	_, err = a.GreaterThan(b)
	assert.Error(t, err)
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyVND(decimal.NewFromInt(324000))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"324000","currency":"VND"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equals(m))
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("100000"))
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, VND, m.Currency())

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())

	assert.Error(t, m.Scan(struct{}{}))
}
