package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeRentalContract = "RentalContract"

// Event type constants
const (
	EventTypeContractCreated    = "ContractCreated"
	EventTypeContractItemAdded  = "ContractItemAdded"
	EventTypeContractActivated  = "ContractActivated"
	EventTypeContractTerminated = "ContractTerminated"
	EventTypePlantExchanged     = "PlantExchanged"
)

// ContractCreatedEvent is published when a new contract is created
type ContractCreatedEvent struct {
	shared.BaseDomainEvent
	ContractID     uuid.UUID `json:"contract_id"`
	ContractNumber string    `json:"contract_number"`
	CustomerID     uuid.UUID `json:"customer_id"`
}

// NewContractCreatedEvent creates a new ContractCreatedEvent
func NewContractCreatedEvent(c *RentalContract) *ContractCreatedEvent {
	return &ContractCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractCreated, AggregateTypeRentalContract, c.ID),
		ContractID:      c.ID,
		ContractNumber:  c.ContractNumber,
		CustomerID:      c.CustomerID,
	}
}

// ContractItemAddedEvent is published when a plant line is added to a contract
type ContractItemAddedEvent struct {
	shared.BaseDomainEvent
	ContractID  uuid.UUID `json:"contract_id"`
	ItemID      uuid.UUID `json:"item_id"`
	PlantTypeID uuid.UUID `json:"plant_type_id"`
	PlantName   string    `json:"plant_name"`
	Quantity    int       `json:"quantity"`
}

// NewContractItemAddedEvent creates a new ContractItemAddedEvent
func NewContractItemAddedEvent(c *RentalContract, item *ContractItem) *ContractItemAddedEvent {
	return &ContractItemAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractItemAdded, AggregateTypeRentalContract, c.ID),
		ContractID:      c.ID,
		ItemID:          item.ID,
		PlantTypeID:     item.PlantTypeID,
		PlantName:       item.PlantName,
		Quantity:        item.Quantity,
	}
}

// ContractActivatedEvent is published when a contract goes into force
type ContractActivatedEvent struct {
	shared.BaseDomainEvent
	ContractID     uuid.UUID `json:"contract_id"`
	ContractNumber string    `json:"contract_number"`
	CustomerID     uuid.UUID `json:"customer_id"`
	StartsOn       time.Time `json:"starts_on"`
}

// NewContractActivatedEvent creates a new ContractActivatedEvent
func NewContractActivatedEvent(c *RentalContract) *ContractActivatedEvent {
	return &ContractActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractActivated, AggregateTypeRentalContract, c.ID),
		ContractID:      c.ID,
		ContractNumber:  c.ContractNumber,
		CustomerID:      c.CustomerID,
		StartsOn:        c.StartsOn,
	}
}

// ContractTerminatedEvent is published when a contract is terminated
type ContractTerminatedEvent struct {
	shared.BaseDomainEvent
	ContractID     uuid.UUID  `json:"contract_id"`
	ContractNumber string     `json:"contract_number"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	EndsOn         *time.Time `json:"ends_on"`
	Reason         string     `json:"reason,omitempty"`
}

// NewContractTerminatedEvent creates a new ContractTerminatedEvent
func NewContractTerminatedEvent(c *RentalContract, reason string) *ContractTerminatedEvent {
	return &ContractTerminatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractTerminated, AggregateTypeRentalContract, c.ID),
		ContractID:      c.ID,
		ContractNumber:  c.ContractNumber,
		CustomerID:      c.CustomerID,
		EndsOn:          c.EndsOn,
		Reason:          reason,
	}
}

// PlantExchangedEvent is published when a maintenance visit changes a line's quantity
type PlantExchangedEvent struct {
	shared.BaseDomainEvent
	ContractID  uuid.UUID `json:"contract_id"`
	ItemID      uuid.UUID `json:"item_id"`
	PlantTypeID uuid.UUID `json:"plant_type_id"`
	ExchangedOn time.Time `json:"exchanged_on"`
	NewQuantity int       `json:"new_quantity"`
	Reason      string    `json:"reason,omitempty"`
}

// NewPlantExchangedEvent creates a new PlantExchangedEvent
func NewPlantExchangedEvent(c *RentalContract, item *ContractItem, exchange *PlantExchange) *PlantExchangedEvent {
	return &PlantExchangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlantExchanged, AggregateTypeRentalContract, c.ID),
		ContractID:      c.ID,
		ItemID:          item.ID,
		PlantTypeID:     item.PlantTypeID,
		ExchangedOn:     exchange.ExchangedOn,
		NewQuantity:     exchange.NewQuantity,
		Reason:          exchange.Reason,
	}
}
