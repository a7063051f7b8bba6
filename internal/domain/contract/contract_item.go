package contract

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ContractItem is one plant placement on a contract: a quantity of one plant
// type at a snapshotted monthly price, effective over a date window. The
// window is inclusive on both ends; a nil EffectiveTo means still on site.
type ContractItem struct {
	ID            uuid.UUID
	ContractID    uuid.UUID
	PlantTypeID   uuid.UUID
	PlantName     string
	SizeSpec      string
	Quantity      int             // Units placed at EffectiveFrom
	UnitPrice     decimal.Decimal // Monthly price per unit, fixed at add time
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	Exchanges     []PlantExchange
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewContractItem creates a new contract item
func NewContractItem(contractID, plantTypeID uuid.UUID, plantName, sizeSpec string, quantity int, unitPrice valueobject.Money, effectiveFrom time.Time) (*ContractItem, error) {
	if plantTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLANT_TYPE", "Plant type ID cannot be empty")
	}
	if plantName == "" {
		return nil, shared.NewDomainError("INVALID_PLANT_NAME", "Plant name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", fmt.Sprintf("Quantity must be positive, got %d", quantity))
	}
	if unitPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if effectiveFrom.IsZero() {
		return nil, shared.NewDomainError("INVALID_EFFECTIVE_DATE", "Effective date cannot be empty")
	}

	now := time.Now()
	return &ContractItem{
		ID:            uuid.New(),
		ContractID:    contractID,
		PlantTypeID:   plantTypeID,
		PlantName:     plantName,
		SizeSpec:      sizeSpec,
		Quantity:      quantity,
		UnitPrice:     unitPrice.Amount(),
		EffectiveFrom: normalizeDate(effectiveFrom),
		Exchanges:     make([]PlantExchange, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// End closes the item's effective window on the given date
func (i *ContractItem) End(endsOn time.Time) error {
	if i.EffectiveTo != nil {
		return shared.NewDomainError("INVALID_STATE", "Contract item is already ended")
	}
	if endsOn.IsZero() {
		return shared.NewDomainError("INVALID_END_DATE", "End date cannot be empty")
	}

	end := normalizeDate(endsOn)
	if end.Before(i.EffectiveFrom) {
		return shared.NewDomainError("INVALID_END_DATE", "End date cannot precede the effective date")
	}

	i.EffectiveTo = &end
	i.UpdatedAt = time.Now()

	return nil
}

// RecordExchange appends a quantity change observed on the given date.
// Zero is allowed: it records that all units were taken off site while the
// line itself stays open for a possible later restock.
func (i *ContractItem) RecordExchange(exchangedOn time.Time, newQuantity int, reason string) (*PlantExchange, error) {
	if newQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Exchanged quantity cannot be negative")
	}
	if exchangedOn.IsZero() {
		return nil, shared.NewDomainError("INVALID_EXCHANGE_DATE", "Exchange date cannot be empty")
	}

	on := normalizeDate(exchangedOn)
	if on.Before(i.EffectiveFrom) {
		return nil, shared.NewDomainError("INVALID_EXCHANGE_DATE", "Exchange cannot precede the item's effective date")
	}
	if i.EffectiveTo != nil && on.After(*i.EffectiveTo) {
		return nil, shared.NewDomainError("INVALID_EXCHANGE_DATE", "Exchange cannot follow the item's end date")
	}

	exchange := NewPlantExchange(i.ID, on, newQuantity, reason)
	i.Exchanges = append(i.Exchanges, *exchange)
	i.UpdatedAt = time.Now()

	return exchange, nil
}

// QuantityOn resolves the unit count in effect on the given date: the most
// recent exchange on or before that date wins, otherwise the placed
// quantity. Same-day exchanges resolve by recording order, latest first.
func (i *ContractItem) QuantityOn(date time.Time) int {
	on := normalizeDate(date)
	if on.Before(i.EffectiveFrom) {
		return 0
	}

	quantity := i.Quantity
	var latest *PlantExchange
	for idx := range i.Exchanges {
		ex := &i.Exchanges[idx]
		if ex.ExchangedOn.After(on) {
			continue
		}
		if latest == nil || ex.ExchangedOn.After(latest.ExchangedOn) ||
			(ex.ExchangedOn.Equal(latest.ExchangedOn) && !ex.CreatedAt.Before(latest.CreatedAt)) {
			latest = ex
		}
	}
	if latest != nil {
		quantity = latest.NewQuantity
	}
	return quantity
}

// ActiveOn returns true if the date falls inside the item's window
func (i *ContractItem) ActiveOn(date time.Time) bool {
	on := normalizeDate(date)
	if on.Before(i.EffectiveFrom) {
		return false
	}
	return i.EffectiveTo == nil || !on.After(*i.EffectiveTo)
}

// Overlaps returns true if the item's window intersects [start, end]
func (i *ContractItem) Overlaps(start, end time.Time) bool {
	if i.EffectiveFrom.After(normalizeDate(end)) {
		return false
	}
	return i.EffectiveTo == nil || !i.EffectiveTo.Before(normalizeDate(start))
}

// GetUnitPriceMoney returns the unit price as Money
func (i *ContractItem) GetUnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyVND(i.UnitPrice)
}

// PlantExchange is the record of a maintenance-visit quantity change on a
// contract item. Exchanges are append-only.
type PlantExchange struct {
	ID             uuid.UUID
	ContractItemID uuid.UUID
	ExchangedOn    time.Time
	NewQuantity    int
	Reason         string
	CreatedAt      time.Time
}

// NewPlantExchange creates a new plant exchange record
func NewPlantExchange(contractItemID uuid.UUID, exchangedOn time.Time, newQuantity int, reason string) *PlantExchange {
	return &PlantExchange{
		ID:             uuid.New(),
		ContractItemID: contractItemID,
		ExchangedOn:    normalizeDate(exchangedOn),
		NewQuantity:    newQuantity,
		Reason:         reason,
		CreatedAt:      time.Now(),
	}
}
