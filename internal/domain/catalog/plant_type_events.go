package catalog

import (
	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypePlantType = "PlantType"

// Event type constants
const (
	EventTypePlantTypeCreated       = "PlantTypeCreated"
	EventTypePlantTypeUpdated       = "PlantTypeUpdated"
	EventTypePlantTypePriceChanged  = "PlantTypePriceChanged"
	EventTypePlantTypeStatusChanged = "PlantTypeStatusChanged"
)

// PlantTypeCreatedEvent is published when a new plant type is created
type PlantTypeCreatedEvent struct {
	shared.BaseDomainEvent
	PlantTypeID uuid.UUID `json:"plant_type_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
}

// NewPlantTypeCreatedEvent creates a new PlantTypeCreatedEvent
func NewPlantTypeCreatedEvent(p *PlantType) *PlantTypeCreatedEvent {
	return &PlantTypeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlantTypeCreated, AggregateTypePlantType, p.ID),
		PlantTypeID:     p.ID,
		Code:            p.Code,
		Name:            p.Name,
	}
}

// PlantTypeUpdatedEvent is published when a plant type is updated
type PlantTypeUpdatedEvent struct {
	shared.BaseDomainEvent
	PlantTypeID uuid.UUID `json:"plant_type_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
}

// NewPlantTypeUpdatedEvent creates a new PlantTypeUpdatedEvent
func NewPlantTypeUpdatedEvent(p *PlantType) *PlantTypeUpdatedEvent {
	return &PlantTypeUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlantTypeUpdated, AggregateTypePlantType, p.ID),
		PlantTypeID:     p.ID,
		Code:            p.Code,
		Name:            p.Name,
	}
}

// PlantTypePriceChangedEvent is published when the default rental price changes
type PlantTypePriceChangedEvent struct {
	shared.BaseDomainEvent
	PlantTypeID uuid.UUID       `json:"plant_type_id"`
	Code        string          `json:"code"`
	OldPrice    decimal.Decimal `json:"old_price"`
	NewPrice    decimal.Decimal `json:"new_price"`
}

// NewPlantTypePriceChangedEvent creates a new PlantTypePriceChangedEvent
func NewPlantTypePriceChangedEvent(p *PlantType, oldPrice, newPrice decimal.Decimal) *PlantTypePriceChangedEvent {
	return &PlantTypePriceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlantTypePriceChanged, AggregateTypePlantType, p.ID),
		PlantTypeID:     p.ID,
		Code:            p.Code,
		OldPrice:        oldPrice,
		NewPrice:        newPrice,
	}
}

// PlantTypeStatusChangedEvent is published when a plant type is retired or reinstated
type PlantTypeStatusChangedEvent struct {
	shared.BaseDomainEvent
	PlantTypeID uuid.UUID       `json:"plant_type_id"`
	Code        string          `json:"code"`
	OldStatus   PlantTypeStatus `json:"old_status"`
	NewStatus   PlantTypeStatus `json:"new_status"`
}

// NewPlantTypeStatusChangedEvent creates a new PlantTypeStatusChangedEvent
func NewPlantTypeStatusChangedEvent(p *PlantType, oldStatus, newStatus PlantTypeStatus) *PlantTypeStatusChangedEvent {
	return &PlantTypeStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlantTypeStatusChanged, AggregateTypePlantType, p.ID),
		PlantTypeID:     p.ID,
		Code:            p.Code,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
