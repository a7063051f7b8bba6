package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/billing"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyStatementModel is the GORM model for monthly statements. The partial
// unique index keeps at most one non-deleted statement per customer and
// period; soft-deleted rows fall out of the index, so a period slot can be
// filled again after deletion.
type MonthlyStatementModel struct {
	ID                uuid.UUID               `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_statement_active_period,priority:1,where:deleted_at IS NULL"`
	CustomerName      string                  `gorm:"type:varchar(200);not null"`
	Year              int                     `gorm:"not null;uniqueIndex:idx_statement_active_period,priority:2"`
	Month             int                     `gorm:"not null;uniqueIndex:idx_statement_active_period,priority:3"`
	PeriodStart       time.Time               `gorm:"type:date;not null"`
	PeriodEnd         time.Time               `gorm:"type:date;not null"`
	Lines             billing.LineItems       `gorm:"type:jsonb;not null"`
	Subtotal          decimal.Decimal         `gorm:"type:decimal(18,0);not null;default:0"`
	VATRate           decimal.Decimal         `gorm:"type:decimal(5,2);not null;default:0"`
	VATAmount         decimal.Decimal         `gorm:"type:decimal(18,0);not null;default:0"`
	GrandTotal        decimal.Decimal         `gorm:"type:decimal(18,0);not null;default:0"`
	Currency          valueobject.Currency    `gorm:"type:varchar(3);not null;default:'VND'"`
	BoundaryDay       int                     `gorm:"not null"`
	Status            billing.StatementStatus `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	NeedsConfirmation bool                    `gorm:"not null;default:false"`
	ConfirmedAt       *time.Time
	ConfirmedBy       *uuid.UUID `gorm:"type:uuid"`
	DeletedAt         *time.Time `gorm:"index"`
	Notes             string     `gorm:"type:text"`
	InternalNotes     string     `gorm:"type:text"`
	Version           int        `gorm:"not null;default:1"`
	CreatedBy         *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time  `gorm:"not null"`
	UpdatedAt         time.Time  `gorm:"not null"`
}

// TableName returns the table name for the model
func (MonthlyStatementModel) TableName() string {
	return "monthly_statements"
}

// ToEntity converts the model to a domain entity
func (m *MonthlyStatementModel) ToEntity() *billing.MonthlyStatement {
	return &billing.MonthlyStatement{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version:   m.Version,
			CreatedBy: m.CreatedBy,
		},
		CustomerID:        m.CustomerID,
		CustomerName:      m.CustomerName,
		Year:              m.Year,
		Month:             m.Month,
		PeriodStart:       m.PeriodStart,
		PeriodEnd:         m.PeriodEnd,
		Lines:             m.Lines,
		Subtotal:          m.Subtotal,
		VATRate:           m.VATRate,
		VATAmount:         m.VATAmount,
		GrandTotal:        m.GrandTotal,
		Currency:          m.Currency,
		BoundaryDay:       m.BoundaryDay,
		Status:            m.Status,
		NeedsConfirmation: m.NeedsConfirmation,
		ConfirmedAt:       m.ConfirmedAt,
		ConfirmedBy:       m.ConfirmedBy,
		DeletedAt:         m.DeletedAt,
		Notes:             m.Notes,
		InternalNotes:     m.InternalNotes,
	}
}

// MonthlyStatementModelFromEntity creates a model from a domain entity
func MonthlyStatementModelFromEntity(s *billing.MonthlyStatement) *MonthlyStatementModel {
	return &MonthlyStatementModel{
		ID:                s.ID,
		CustomerID:        s.CustomerID,
		CustomerName:      s.CustomerName,
		Year:              s.Year,
		Month:             s.Month,
		PeriodStart:       s.PeriodStart,
		PeriodEnd:         s.PeriodEnd,
		Lines:             s.Lines,
		Subtotal:          s.Subtotal,
		VATRate:           s.VATRate,
		VATAmount:         s.VATAmount,
		GrandTotal:        s.GrandTotal,
		Currency:          s.Currency,
		BoundaryDay:       s.BoundaryDay,
		Status:            s.Status,
		NeedsConfirmation: s.NeedsConfirmation,
		ConfirmedAt:       s.ConfirmedAt,
		ConfirmedBy:       s.ConfirmedBy,
		DeletedAt:         s.DeletedAt,
		Notes:             s.Notes,
		InternalNotes:     s.InternalNotes,
		Version:           s.Version,
		CreatedBy:         s.CreatedBy,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// StatementRepository implements the billing.StatementRepository interface
type StatementRepository struct {
	db *gorm.DB
}

// NewStatementRepository creates a new statement repository
func NewStatementRepository(db *gorm.DB) *StatementRepository {
	return &StatementRepository{db: db}
}

// FindByID retrieves a statement by its ID. Soft-deleted statements are
// returned too, so they stay addressable for audit and restore.
func (r *StatementRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.MonthlyStatement, error) {
	var model MonthlyStatementModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// FindActiveByPeriod retrieves the single non-deleted statement occupying the
// (customer, year, month) slot
func (r *StatementRepository) FindActiveByPeriod(ctx context.Context, customerID uuid.UUID, year, month int) (*billing.MonthlyStatement, error) {
	var model MonthlyStatementModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND year = ? AND month = ?", customerID, year, month).
		Where("deleted_at IS NULL").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// FindAll retrieves statements matching the filter
func (r *StatementRepository) FindAll(ctx context.Context, filter billing.StatementFilter) ([]billing.MonthlyStatement, error) {
	var statementModels []MonthlyStatementModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&MonthlyStatementModel{}), filter)

	if err := query.Find(&statementModels).Error; err != nil {
		return nil, err
	}

	statements := make([]billing.MonthlyStatement, len(statementModels))
	for i, model := range statementModels {
		statements[i] = *model.ToEntity()
	}
	return statements, nil
}

// Count returns the number of statements matching the filter
func (r *StatementRepository) Count(ctx context.Context, filter billing.StatementFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&MonthlyStatementModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new statement. A duplicate on the active period slot means
// another writer generated the same statement first; the caller sees that as
// a concurrency conflict and retries with a fresh read.
func (r *StatementRepository) Create(ctx context.Context, statement *billing.MonthlyStatement) error {
	model := MonthlyStatementModelFromEntity(statement)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrConcurrencyConflict
		}
		return err
	}
	return nil
}

// Update persists changes to an existing statement with an optimistic lock on
// the version column. The domain entity increments its version before the
// repository is called, so the check targets the previous stored version.
func (r *StatementRepository) Update(ctx context.Context, statement *billing.MonthlyStatement) error {
	model := MonthlyStatementModelFromEntity(statement)
	result := r.db.WithContext(ctx).
		Model(&MonthlyStatementModel{}).
		Where("id = ? AND version = ?", statement.ID, statement.Version-1).
		Updates(map[string]interface{}{
			"customer_name":      model.CustomerName,
			"lines":              model.Lines,
			"subtotal":           model.Subtotal,
			"vat_rate":           model.VATRate,
			"vat_amount":         model.VATAmount,
			"grand_total":        model.GrandTotal,
			"currency":           model.Currency,
			"boundary_day":       model.BoundaryDay,
			"status":             model.Status,
			"needs_confirmation": model.NeedsConfirmation,
			"confirmed_at":       model.ConfirmedAt,
			"confirmed_by":       model.ConfirmedBy,
			"deleted_at":         model.DeletedAt,
			"notes":              model.Notes,
			"internal_notes":     model.InternalNotes,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		// Restoring into a period slot another statement now occupies
		// trips the partial unique index.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return shared.ErrConcurrencyConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// ExistsActive reports whether a non-deleted statement occupies the
// (customer, year, month) slot
func (r *StatementRepository) ExistsActive(ctx context.Context, customerID uuid.UUID, year, month int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&MonthlyStatementModel{}).
		Where("customer_id = ? AND year = ? AND month = ?", customerID, year, month).
		Where("deleted_at IS NULL").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *StatementRepository) applyFilter(query *gorm.DB, filter billing.StatementFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply pagination
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Apply ordering with whitelist validation to prevent SQL injection
	if filter.OrderBy != "" {
		sortField := ValidateSortField(filter.OrderBy, StatementSortFields, "")
		if sortField != "" {
			sortOrder := ValidateSortOrder(filter.OrderDir)
			query = query.Order(sortField + " " + sortOrder)
		} else {
			query = query.Order("year DESC, month DESC, customer_name ASC")
		}
	} else {
		// Default ordering: newest period first
		query = query.Order("year DESC, month DESC, customer_name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *StatementRepository) applyFilterWithoutPagination(query *gorm.DB, filter billing.StatementFilter) *gorm.DB {
	if !filter.IncludeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	if filter.Search != "" {
		query = query.Where("customer_name ILIKE ?", "%"+filter.Search+"%")
	}

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.NeedsConfirmation != nil {
		query = query.Where("needs_confirmation = ?", *filter.NeedsConfirmation)
	}

	return query
}

// Ensure StatementRepository implements the interface
var _ billing.StatementRepository = (*StatementRepository)(nil)
