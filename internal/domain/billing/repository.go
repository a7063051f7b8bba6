package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
)

// StatementFilter represents filter options for statement queries.
// Soft-deleted statements are excluded unless IncludeDeleted is set.
type StatementFilter struct {
	shared.Filter
	CustomerID        *uuid.UUID
	Year              *int
	Month             *int
	Status            *StatementStatus
	NeedsConfirmation *bool
	IncludeDeleted    bool
}

// StatementRepository is the persistence boundary for monthly statements.
// Create maps a partial-unique-index violation on the active
// (customer, year, month) slot to shared.ErrConcurrencyConflict; Update
// applies an optimistic version check and reports a lost race the same way.
type StatementRepository interface {
	// FindByID returns the statement regardless of deletion state, so
	// soft-deleted statements stay addressable for audit.
	FindByID(ctx context.Context, id uuid.UUID) (*MonthlyStatement, error)

	// FindActiveByPeriod returns the single non-deleted statement for the
	// (customer, year, month) key, or shared.ErrNotFound.
	FindActiveByPeriod(ctx context.Context, customerID uuid.UUID, year, month int) (*MonthlyStatement, error)

	// FindAll returns statements matching the filter
	FindAll(ctx context.Context, filter StatementFilter) ([]MonthlyStatement, error)

	// Count returns the number of statements matching the filter
	Count(ctx context.Context, filter StatementFilter) (int64, error)

	// Create inserts a new statement
	Create(ctx context.Context, statement *MonthlyStatement) error

	// Update persists changes to an existing statement with an optimistic
	// lock on the version column
	Update(ctx context.Context, statement *MonthlyStatement) error

	// ExistsActive reports whether a non-deleted statement occupies the
	// (customer, year, month) slot
	ExistsActive(ctx context.Context, customerID uuid.UUID, year, month int) (bool, error)
}
