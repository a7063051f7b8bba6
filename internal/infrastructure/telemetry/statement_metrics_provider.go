package telemetry

import (
	"context"

	"gorm.io/gorm"
)

// GormStatementMetricsProvider implements StatementMetricsProvider using GORM.
// It queries the monthly_statements and rental_contracts tables directly for
// aggregated metrics.
type GormStatementMetricsProvider struct {
	db *gorm.DB
}

// NewGormStatementMetricsProvider creates a new GormStatementMetricsProvider.
func NewGormStatementMetricsProvider(db *gorm.DB) *GormStatementMetricsProvider {
	return &GormStatementMetricsProvider{db: db}
}

// GetAwaitingConfirmationCount returns how many active statements still need
// a human confirmation.
func (p *GormStatementMetricsProvider) GetAwaitingConfirmationCount(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Table("monthly_statements").
		Where("deleted_at IS NULL").
		Where("needs_confirmation = ? AND confirmed_at IS NULL", true).
		Count(&count).Error

	return count, err
}

// GetActiveContractCount returns how many rental contracts are currently active.
func (p *GormStatementMetricsProvider) GetActiveContractCount(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Table("rental_contracts").
		Where("status = ?", "ACTIVE").
		Count(&count).Error

	return count, err
}

// Ensure GormStatementMetricsProvider implements StatementMetricsProvider
var _ StatementMetricsProvider = (*GormStatementMetricsProvider)(nil)
