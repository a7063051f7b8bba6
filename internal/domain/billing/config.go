package billing

import (
	"fmt"

	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Config carries the billing parameters in effect when a statement is
// generated. It is passed explicitly into the calculators and its values are
// persisted on each statement, so stored totals stay reproducible even after
// the operating configuration changes.
type Config struct {
	// VATRatePercent is the fixed system-wide VAT rate, e.g. 8 for 8%.
	VATRatePercent decimal.Decimal
	// BoundaryDay is the cycle boundary day of month, 1..28.
	BoundaryDay int
	// Currency is the operating currency.
	Currency valueobject.Currency
	// RequireConfirmation controls whether freshly generated statements
	// enter the pending-confirmation state. The operating policy keeps it
	// on for every statement.
	RequireConfirmation bool
}

// DefaultConfig returns the operating defaults: 8% VAT, boundary day 24,
// VND, confirmation required.
func DefaultConfig() Config {
	return Config{
		VATRatePercent:      decimal.NewFromInt(8),
		BoundaryDay:         24,
		Currency:            valueobject.VND,
		RequireConfirmation: true,
	}
}

// Validate checks the configuration invariants
func (c Config) Validate() error {
	if c.VATRatePercent.IsNegative() {
		return shared.NewDomainError("INVALID_VAT_RATE", "VAT rate cannot be negative")
	}
	if c.BoundaryDay < MinBoundaryDay || c.BoundaryDay > MaxBoundaryDay {
		return shared.NewDomainError("INVALID_BOUNDARY_DAY", fmt.Sprintf("Cycle boundary day must be between %d and %d, got %d", MinBoundaryDay, MaxBoundaryDay, c.BoundaryDay))
	}
	if !c.Currency.IsValid() {
		return shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Unsupported currency: %s", c.Currency))
	}
	return nil
}
