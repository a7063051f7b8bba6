package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/domain/shared/valueobject"
)

// ContractStatus represents the status of a rental contract
type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "DRAFT"
	ContractStatusActive     ContractStatus = "ACTIVE"
	ContractStatusTerminated ContractStatus = "TERMINATED"
)

// IsValid checks if the status is a valid ContractStatus
func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractStatusDraft, ContractStatusActive, ContractStatusTerminated:
		return true
	}
	return false
}

// String returns the string representation of ContractStatus
func (s ContractStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	switch s {
	case ContractStatusDraft:
		return target == ContractStatusActive || target == ContractStatusTerminated
	case ContractStatusActive:
		return target == ContractStatusTerminated
	}
	return false
}

// RentalContract binds a customer to a set of plant placements. It is the
// aggregate root for contract operations: items are only added, ended or
// exchanged through it. Each item snapshots the catalog name and monthly
// price at the time it was added, so catalog edits never change what an
// existing contract bills.
type RentalContract struct {
	shared.BaseAggregateRoot
	ContractNumber string
	CustomerID     uuid.UUID
	CustomerName   string
	Status         ContractStatus
	StartsOn       time.Time  // First day plants are on site
	EndsOn         *time.Time // Set at termination
	Notes          string
	Items          []ContractItem
	ActivatedAt    *time.Time
	TerminatedAt   *time.Time
}

// NewRentalContract creates a new contract in draft status
func NewRentalContract(contractNumber string, customerID uuid.UUID, customerName string, startsOn time.Time) (*RentalContract, error) {
	if contractNumber == "" {
		return nil, shared.NewDomainError("INVALID_CONTRACT_NUMBER", "Contract number cannot be empty")
	}
	if len(contractNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_CONTRACT_NUMBER", "Contract number cannot exceed 50 characters")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if startsOn.IsZero() {
		return nil, shared.NewDomainError("INVALID_START_DATE", "Contract start date cannot be empty")
	}

	contract := &RentalContract{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ContractNumber:    contractNumber,
		CustomerID:        customerID,
		CustomerName:      customerName,
		Status:            ContractStatusDraft,
		StartsOn:          normalizeDate(startsOn),
		Items:             make([]ContractItem, 0),
	}

	contract.AddDomainEvent(NewContractCreatedEvent(contract))

	return contract, nil
}

// AddItem places a new plant line on the contract. Allowed while the
// contract is draft or active; live contracts gain plants mid-term all the
// time. The same plant type may appear on several lines when batches were
// placed at different prices or sizes.
func (c *RentalContract) AddItem(plantTypeID uuid.UUID, plantName, sizeSpec string, quantity int, unitPrice valueobject.Money, effectiveFrom time.Time) (*ContractItem, error) {
	if c.Status == ContractStatusTerminated {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a terminated contract")
	}
	if effectiveFrom.IsZero() {
		effectiveFrom = c.StartsOn
	}
	if normalizeDate(effectiveFrom).Before(c.StartsOn) {
		return nil, shared.NewDomainError("INVALID_EFFECTIVE_DATE", "Item cannot take effect before the contract starts")
	}

	item, err := NewContractItem(c.ID, plantTypeID, plantName, sizeSpec, quantity, unitPrice, effectiveFrom)
	if err != nil {
		return nil, err
	}

	c.Items = append(c.Items, *item)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewContractItemAddedEvent(c, item))

	return item, nil
}

// EndItem closes a plant line's effective window, typically when the plants
// are picked up. The line keeps billing for periods it overlapped.
func (c *RentalContract) EndItem(itemID uuid.UUID, endsOn time.Time) error {
	item := c.findItem(itemID)
	if item == nil {
		return shared.NewDomainError("ITEM_NOT_FOUND", "Contract item not found")
	}

	if err := item.End(endsOn); err != nil {
		return err
	}

	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// RecordExchange captures a quantity change on a plant line observed during
// a maintenance visit: plants swapped in, pulled for recovery, or added.
// A new quantity of zero means every unit was taken off site.
func (c *RentalContract) RecordExchange(itemID uuid.UUID, exchangedOn time.Time, newQuantity int, reason string) (*PlantExchange, error) {
	if c.Status != ContractStatusActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Exchanges can only be recorded on an active contract")
	}

	item := c.findItem(itemID)
	if item == nil {
		return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Contract item not found")
	}

	exchange, err := item.RecordExchange(exchangedOn, newQuantity, reason)
	if err != nil {
		return nil, err
	}

	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewPlantExchangedEvent(c, item, exchange))

	return exchange, nil
}

// Activate puts the contract in force. At least one plant line is required.
func (c *RentalContract) Activate() error {
	if !c.Status.CanTransitionTo(ContractStatusActive) {
		return shared.NewDomainError("INVALID_STATE", "Cannot activate contract in "+string(c.Status)+" status")
	}
	if len(c.Items) == 0 {
		return shared.NewDomainError("EMPTY_CONTRACT", "Cannot activate a contract without items")
	}

	now := time.Now()
	c.Status = ContractStatusActive
	c.ActivatedAt = &now
	c.UpdatedAt = now
	c.IncrementVersion()

	c.AddDomainEvent(NewContractActivatedEvent(c))

	return nil
}

// Terminate ends the contract on the given date and closes every plant line
// still open. Closed lines keep their own earlier end dates.
func (c *RentalContract) Terminate(endsOn time.Time, reason string) error {
	if !c.Status.CanTransitionTo(ContractStatusTerminated) {
		return shared.NewDomainError("INVALID_STATE", "Cannot terminate contract in "+string(c.Status)+" status")
	}
	if endsOn.IsZero() {
		return shared.NewDomainError("INVALID_END_DATE", "Termination date cannot be empty")
	}

	end := normalizeDate(endsOn)
	if end.Before(c.StartsOn) {
		return shared.NewDomainError("INVALID_END_DATE", "Termination date cannot precede the contract start")
	}

	for i := range c.Items {
		if c.Items[i].EffectiveTo == nil {
			c.Items[i].EffectiveTo = &end
			c.Items[i].UpdatedAt = time.Now()
		}
	}

	now := time.Now()
	c.Status = ContractStatusTerminated
	c.EndsOn = &end
	c.TerminatedAt = &now
	if reason != "" {
		c.Notes = reason
	}
	c.UpdatedAt = now
	c.IncrementVersion()

	c.AddDomainEvent(NewContractTerminatedEvent(c, reason))

	return nil
}

// UpdateNotes sets the contract notes
func (c *RentalContract) UpdateNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsActive returns true if the contract is in force
func (c *RentalContract) IsActive() bool {
	return c.Status == ContractStatusActive
}

// GetItem returns the item with the given ID, or nil
func (c *RentalContract) GetItem(itemID uuid.UUID) *ContractItem {
	return c.findItem(itemID)
}

func (c *RentalContract) findItem(itemID uuid.UUID) *ContractItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// normalizeDate truncates a timestamp to its date at midnight UTC
func normalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
