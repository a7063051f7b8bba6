package contract

import (
	"context"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
)

// ContractFilter narrows contract listings
type ContractFilter struct {
	shared.Filter
	CustomerID *uuid.UUID
	Status     *ContractStatus
}

// ContractRepository defines the interface for contract persistence.
// Contracts load whole: items and their exchanges always come along.
type ContractRepository interface {
	// FindByID finds a contract by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*RentalContract, error)

	// FindByNumber finds a contract by its contract number
	FindByNumber(ctx context.Context, contractNumber string) (*RentalContract, error)

	// FindAll finds all contracts matching the filter
	FindAll(ctx context.Context, filter ContractFilter) ([]RentalContract, error)

	// FindByCustomerID finds every non-draft contract for a customer
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]RentalContract, error)

	// Save creates or updates a contract with its items and exchanges
	Save(ctx context.Context, contract *RentalContract) error

	// Count counts contracts matching the filter
	Count(ctx context.Context, filter ContractFilter) (int64, error)

	// ExistsByNumber checks if a contract with the given number exists
	ExistsByNumber(ctx context.Context, contractNumber string) (bool, error)
}
