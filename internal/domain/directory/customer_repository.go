package directory

import (
	"context"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
)

// CustomerFilter narrows customer listings beyond the shared paging filter.
// Search matches against the normalized name, so callers may pass text with
// or without diacritics.
type CustomerFilter struct {
	shared.Filter
	Status   *CustomerStatus
	District string
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByCode finds a customer by its code
	FindByCode(ctx context.Context, code string) (*Customer, error)

	// FindAll finds all customers matching the filter
	FindAll(ctx context.Context, filter CustomerFilter) ([]Customer, error)

	// FindBillable finds the customers included in statement runs
	FindBillable(ctx context.Context) ([]Customer, error)

	// FindByIDs finds multiple customers by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Count counts customers matching the filter
	Count(ctx context.Context, filter CustomerFilter) (int64, error)

	// ExistsByCode checks if a customer with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
