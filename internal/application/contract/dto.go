package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/contract"
	"github.com/shopspring/decimal"
)

// CreateContractRequest represents a request to create a new rental contract
type CreateContractRequest struct {
	ContractNumber string    `json:"contract_number" binding:"required,min=1,max=50"`
	CustomerID     uuid.UUID `json:"customer_id" binding:"required"`
	StartsOn       time.Time `json:"starts_on" binding:"required"`
	Notes          string    `json:"notes"`
}

// AddContractItemRequest represents a request to add a rental line to a contract.
// UnitPrice is optional; when omitted the plant type's default price is
// snapshotted onto the line.
type AddContractItemRequest struct {
	PlantTypeID   uuid.UUID        `json:"plant_type_id" binding:"required"`
	Quantity      int              `json:"quantity" binding:"required,min=1"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	EffectiveFrom *time.Time       `json:"effective_from"`
}

// RecordExchangeRequest represents a request to record a plant exchange visit
type RecordExchangeRequest struct {
	ExchangedOn time.Time `json:"exchanged_on" binding:"required"`
	NewQuantity *int      `json:"new_quantity" binding:"required,min=0"`
	Reason      string    `json:"reason" binding:"max=500"`
}

// TerminateContractRequest represents a request to terminate a contract
type TerminateContractRequest struct {
	EndsOn time.Time `json:"ends_on" binding:"required"`
	Reason string    `json:"reason" binding:"max=500"`
}

// EndContractItemRequest represents a request to end a single rental line
type EndContractItemRequest struct {
	EndsOn time.Time `json:"ends_on" binding:"required"`
}

// PlantExchangeResponse represents an exchange visit in API responses
type PlantExchangeResponse struct {
	ID          uuid.UUID `json:"id"`
	ExchangedOn time.Time `json:"exchanged_on"`
	NewQuantity int       `json:"new_quantity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// ContractItemResponse represents a rental line in API responses
type ContractItemResponse struct {
	ID            uuid.UUID               `json:"id"`
	PlantTypeID   uuid.UUID               `json:"plant_type_id"`
	PlantName     string                  `json:"plant_name"`
	SizeSpec      string                  `json:"size_spec"`
	Quantity      int                     `json:"quantity"`
	UnitPrice     decimal.Decimal         `json:"unit_price"`
	EffectiveFrom time.Time               `json:"effective_from"`
	EffectiveTo   *time.Time              `json:"effective_to,omitempty"`
	Exchanges     []PlantExchangeResponse `json:"exchanges"`
}

// ContractResponse represents a rental contract in API responses
type ContractResponse struct {
	ID             uuid.UUID              `json:"id"`
	ContractNumber string                 `json:"contract_number"`
	CustomerID     uuid.UUID              `json:"customer_id"`
	CustomerName   string                 `json:"customer_name"`
	Status         string                 `json:"status"`
	StartsOn       time.Time              `json:"starts_on"`
	EndsOn         *time.Time             `json:"ends_on,omitempty"`
	Notes          string                 `json:"notes"`
	Items          []ContractItemResponse `json:"items"`
	ActivatedAt    *time.Time             `json:"activated_at,omitempty"`
	TerminatedAt   *time.Time             `json:"terminated_at,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	Version        int                    `json:"version"`
}

// ContractListResponse represents a list item for contracts
type ContractListResponse struct {
	ID             uuid.UUID  `json:"id"`
	ContractNumber string     `json:"contract_number"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	CustomerName   string     `json:"customer_name"`
	Status         string     `json:"status"`
	StartsOn       time.Time  `json:"starts_on"`
	EndsOn         *time.Time `json:"ends_on,omitempty"`
	ItemCount      int        `json:"item_count"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ContractListFilter represents filter options for contract list
type ContractListFilter struct {
	CustomerID *uuid.UUID `form:"customer_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=DRAFT ACTIVE TERMINATED"`
	Search     string     `form:"search"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPlantExchangeResponse converts a domain PlantExchange to PlantExchangeResponse
func ToPlantExchangeResponse(e *contract.PlantExchange) PlantExchangeResponse {
	return PlantExchangeResponse{
		ID:          e.ID,
		ExchangedOn: e.ExchangedOn,
		NewQuantity: e.NewQuantity,
		Reason:      e.Reason,
		CreatedAt:   e.CreatedAt,
	}
}

// ToContractItemResponse converts a domain ContractItem to ContractItemResponse
func ToContractItemResponse(i *contract.ContractItem) ContractItemResponse {
	exchanges := make([]PlantExchangeResponse, len(i.Exchanges))
	for j := range i.Exchanges {
		exchanges[j] = ToPlantExchangeResponse(&i.Exchanges[j])
	}
	return ContractItemResponse{
		ID:            i.ID,
		PlantTypeID:   i.PlantTypeID,
		PlantName:     i.PlantName,
		SizeSpec:      i.SizeSpec,
		Quantity:      i.Quantity,
		UnitPrice:     i.UnitPrice,
		EffectiveFrom: i.EffectiveFrom,
		EffectiveTo:   i.EffectiveTo,
		Exchanges:     exchanges,
	}
}

// ToContractResponse converts a domain RentalContract to ContractResponse
func ToContractResponse(c *contract.RentalContract) ContractResponse {
	items := make([]ContractItemResponse, len(c.Items))
	for i := range c.Items {
		items[i] = ToContractItemResponse(&c.Items[i])
	}
	return ContractResponse{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		CustomerID:     c.CustomerID,
		CustomerName:   c.CustomerName,
		Status:         string(c.Status),
		StartsOn:       c.StartsOn,
		EndsOn:         c.EndsOn,
		Notes:          c.Notes,
		Items:          items,
		ActivatedAt:    c.ActivatedAt,
		TerminatedAt:   c.TerminatedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		Version:        c.Version,
	}
}

// ToContractListResponse converts a domain RentalContract to ContractListResponse
func ToContractListResponse(c *contract.RentalContract) ContractListResponse {
	return ContractListResponse{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		CustomerID:     c.CustomerID,
		CustomerName:   c.CustomerName,
		Status:         string(c.Status),
		StartsOn:       c.StartsOn,
		EndsOn:         c.EndsOn,
		ItemCount:      len(c.Items),
		CreatedAt:      c.CreatedAt,
	}
}

// ToContractListResponses converts a slice of domain RentalContracts to ContractListResponses
func ToContractListResponses(contracts []contract.RentalContract) []ContractListResponse {
	responses := make([]ContractListResponse, len(contracts))
	for i := range contracts {
		responses[i] = ToContractListResponse(&contracts[i])
	}
	return responses
}
