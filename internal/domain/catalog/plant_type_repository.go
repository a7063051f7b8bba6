package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
)

// PlantTypeFilter narrows plant type listings
type PlantTypeFilter struct {
	shared.Filter
	Status *PlantTypeStatus
}

// PlantTypeRepository defines the interface for plant type persistence
type PlantTypeRepository interface {
	// FindByID finds a plant type by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*PlantType, error)

	// FindByCode finds a plant type by its code
	FindByCode(ctx context.Context, code string) (*PlantType, error)

	// FindAll finds all plant types matching the filter
	FindAll(ctx context.Context, filter PlantTypeFilter) ([]PlantType, error)

	// FindByIDs finds multiple plant types by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]PlantType, error)

	// Save creates or updates a plant type
	Save(ctx context.Context, plantType *PlantType) error

	// Count counts plant types matching the filter
	Count(ctx context.Context, filter PlantTypeFilter) (int64, error)

	// ExistsByCode checks if a plant type with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
