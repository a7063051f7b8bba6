package catalog

import (
	"strings"
	"time"

	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PlantTypeStatus represents the status of a plant type
type PlantTypeStatus string

const (
	PlantTypeStatusActive  PlantTypeStatus = "active"
	PlantTypeStatusRetired PlantTypeStatus = "retired" // No longer offered on new contracts
)

// PlantType represents a rentable plant variety in the catalog: the species
// plus pot/size class the business prices and rotates stock against. Rental
// contracts snapshot its name, size spec and price into their own line items,
// so later catalog edits never rewrite history.
type PlantType struct {
	shared.BaseAggregateRoot
	Code         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string          `gorm:"type:varchar(200);not null"`
	SizeSpec     string          `gorm:"type:varchar(50)"` // e.g. "S", "M", "L", "chậu 30cm"
	Description  string          `gorm:"type:text"`
	DefaultPrice decimal.Decimal `gorm:"type:decimal(18,0);not null;default:0"` // Monthly rental price, VND
	Status       PlantTypeStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (PlantType) TableName() string {
	return "plant_types"
}

// NewPlantType creates a new plant type
func NewPlantType(code, name, sizeSpec string) (*PlantType, error) {
	if err := validatePlantTypeCode(code); err != nil {
		return nil, err
	}
	if err := validatePlantTypeName(name); err != nil {
		return nil, err
	}
	if len(sizeSpec) > 50 {
		return nil, shared.NewDomainError("INVALID_SIZE_SPEC", "Size spec cannot exceed 50 characters")
	}

	plantType := &PlantType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		SizeSpec:          sizeSpec,
		DefaultPrice:      decimal.Zero,
		Status:            PlantTypeStatusActive,
	}

	plantType.AddDomainEvent(NewPlantTypeCreatedEvent(plantType))

	return plantType, nil
}

// Update updates the plant type's descriptive fields
func (p *PlantType) Update(name, sizeSpec, description string) error {
	if err := validatePlantTypeName(name); err != nil {
		return err
	}
	if len(sizeSpec) > 50 {
		return shared.NewDomainError("INVALID_SIZE_SPEC", "Size spec cannot exceed 50 characters")
	}

	p.Name = name
	p.SizeSpec = sizeSpec
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPlantTypeUpdatedEvent(p))

	return nil
}

// SetDefaultPrice sets the monthly rental price offered on new contract lines
func (p *PlantType) SetDefaultPrice(price valueobject.Money) error {
	if price.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Default price cannot be negative")
	}

	oldPrice := p.DefaultPrice
	p.DefaultPrice = price.Amount()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPlantTypePriceChangedEvent(p, oldPrice, p.DefaultPrice))

	return nil
}

// Retire removes the plant type from the offering. Existing contract lines
// keep billing from their own snapshots.
func (p *PlantType) Retire() error {
	if p.Status == PlantTypeStatusRetired {
		return shared.NewDomainError("INVALID_STATE", "Plant type is already retired")
	}

	p.Status = PlantTypeStatusRetired
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPlantTypeStatusChangedEvent(p, PlantTypeStatusActive, PlantTypeStatusRetired))

	return nil
}

// Reinstate makes a retired plant type available again
func (p *PlantType) Reinstate() error {
	if p.Status == PlantTypeStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Plant type is already active")
	}

	p.Status = PlantTypeStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPlantTypeStatusChangedEvent(p, PlantTypeStatusRetired, PlantTypeStatusActive))

	return nil
}

// IsActive returns true if the plant type can appear on new contract lines
func (p *PlantType) IsActive() bool {
	return p.Status == PlantTypeStatusActive
}

// GetDefaultPriceMoney returns the default price as Money
func (p *PlantType) GetDefaultPriceMoney() valueobject.Money {
	return valueobject.NewMoneyVND(p.DefaultPrice)
}

// Validation functions

func validatePlantTypeCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Plant type code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Plant type code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Plant type code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validatePlantTypeName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Plant type name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Plant type name cannot exceed 200 characters")
	}
	return nil
}
