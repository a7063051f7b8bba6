package billing

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LineItem is one plant type's contribution to a statement: the quantity in
// effect for the period and the unit price snapshotted at generation time.
// Line items exist only embedded in a MonthlyStatement, never on their own.
type LineItem struct {
	PlantTypeID uuid.UUID       `json:"plant_type_id"`
	PlantName   string          `json:"plant_name"`
	SizeSpec    string          `json:"size_spec,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// NewLineItem builds a line with its total rounded to the currency unit
func NewLineItem(plantTypeID uuid.UUID, plantName, sizeSpec string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if plantTypeID == uuid.Nil {
		return LineItem{}, shared.NewDomainError("INVALID_PLANT_TYPE", "Plant type ID cannot be empty")
	}
	if plantName == "" {
		return LineItem{}, shared.NewDomainError("INVALID_PLANT_NAME", "Plant name cannot be empty")
	}
	if quantity <= 0 {
		return LineItem{}, shared.NewDomainError("INVALID_QUANTITY", fmt.Sprintf("Quantity must be positive, got %d", quantity))
	}
	if unitPrice.IsNegative() {
		return LineItem{}, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return LineItem{
		PlantTypeID: plantTypeID,
		PlantName:   plantName,
		SizeSpec:    sizeSpec,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       lineTotal(quantity, unitPrice),
	}, nil
}

// lineTotal rounds quantity * unitPrice to the currency unit, half up
func lineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(0)
}

// LineItems is the embedded statement content, persisted as a JSONB column
type LineItems []LineItem

// Value implements driver.Valuer for JSONB storage
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for JSONB storage
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported source type for line items")
	}

	if len(data) == 0 {
		*l = LineItems{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Totals carries the derived statement amounts. All three values are exact
// decimals already rounded to the currency unit.
type Totals struct {
	Subtotal   decimal.Decimal
	VATAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

// CalculateTotals derives subtotal, VAT and grand total from the lines.
// Each line total is already rounded at line granularity; the VAT amount is
// subtotal * rate / 100 rounded half up at the currency unit; the grand
// total is their exact sum. The function is pure.
func CalculateTotals(lines []LineItem, vatRatePercent decimal.Decimal) (Totals, error) {
	if vatRatePercent.IsNegative() {
		return Totals{}, shared.NewDomainError("INVALID_VAT_RATE", "VAT rate cannot be negative")
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total)
	}

	vatAmount := subtotal.Mul(vatRatePercent).Div(decimal.NewFromInt(100)).Round(0)

	return Totals{
		Subtotal:   subtotal,
		VATAmount:  vatAmount,
		GrandTotal: subtotal.Add(vatAmount),
	}, nil
}
