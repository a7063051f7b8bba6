package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// StatementStatus represents the workflow state of a monthly statement
type StatementStatus string

const (
	StatementStatusDraft     StatementStatus = "DRAFT"     // Generated, no confirmation required by policy
	StatementStatusPending   StatementStatus = "PENDING"   // Generated, waiting for confirmation
	StatementStatusConfirmed StatementStatus = "CONFIRMED" // Finalized, content immutable
)

// IsValid checks if the status is a valid StatementStatus
func (s StatementStatus) IsValid() bool {
	switch s {
	case StatementStatusDraft, StatementStatusPending, StatementStatusConfirmed:
		return true
	}
	return false
}

// String returns the string representation of StatementStatus
func (s StatementStatus) String() string {
	return string(s)
}

// CanConfirm returns true if a statement in this status may be confirmed
func (s StatementStatus) CanConfirm() bool {
	return s == StatementStatusDraft || s == StatementStatusPending
}

// IsConfirmed returns true for the terminal confirmed status
func (s StatementStatus) IsConfirmed() bool {
	return s == StatementStatusConfirmed
}

// MonthlyStatement is the per-customer-per-period billing document. At most
// one non-deleted statement exists for a (customer, year, month) key; the
// storage layer enforces this with a partial unique index. Once confirmed,
// the statement's content never changes again.
type MonthlyStatement struct {
	shared.BaseAggregateRoot
	CustomerID        uuid.UUID            `json:"customer_id"`
	CustomerName      string               `json:"customer_name"`
	Year              int                  `json:"year"`
	Month             int                  `json:"month"`
	PeriodStart       time.Time            `json:"period_start"`
	PeriodEnd         time.Time            `json:"period_end"`
	Lines             LineItems            `json:"lines"`
	Subtotal          decimal.Decimal      `json:"subtotal"`
	VATRate           decimal.Decimal      `json:"vat_rate"`
	VATAmount         decimal.Decimal      `json:"vat_amount"`
	GrandTotal        decimal.Decimal      `json:"grand_total"`
	Currency          valueobject.Currency `json:"currency"`
	BoundaryDay       int                  `json:"boundary_day"`
	Status            StatementStatus      `json:"status"`
	NeedsConfirmation bool                 `json:"needs_confirmation"`
	ConfirmedAt       *time.Time           `json:"confirmed_at"`
	ConfirmedBy       *uuid.UUID           `json:"confirmed_by"`
	DeletedAt         *time.Time           `json:"deleted_at"`
	Notes             string               `json:"notes"`
	InternalNotes     string               `json:"internal_notes"`
}

// NewMonthlyStatement generates a statement for the customer and period from
// the aggregated lines, deriving totals under the supplied configuration.
// The configuration values used are snapshotted onto the statement. An empty
// line set is valid and produces a zero-amount statement.
func NewMonthlyStatement(customerID uuid.UUID, customerName string, period Period, lines []LineItem, cfg Config) (*MonthlyStatement, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	totals, err := CalculateTotals(lines, cfg.VATRatePercent)
	if err != nil {
		return nil, err
	}

	status := StatementStatusDraft
	needsConfirmation := false
	if cfg.RequireConfirmation {
		status = StatementStatusPending
		needsConfirmation = true
	}

	s := &MonthlyStatement{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		CustomerName:      customerName,
		Year:              period.Year,
		Month:             period.Month,
		PeriodStart:       period.Start,
		PeriodEnd:         period.End,
		Lines:             append(LineItems{}, lines...),
		Subtotal:          totals.Subtotal,
		VATRate:           cfg.VATRatePercent,
		VATAmount:         totals.VATAmount,
		GrandTotal:        totals.GrandTotal,
		Currency:          cfg.Currency,
		BoundaryDay:       cfg.BoundaryDay,
		Status:            status,
		NeedsConfirmation: needsConfirmation,
	}

	s.AddDomainEvent(NewMonthlyStatementGeneratedEvent(s))

	return s, nil
}

// Regenerate replaces the line items and recalculates totals while keeping
// the statement's identity and period. Confirmed statements are immutable
// snapshots and reject regeneration; soft-deleted statements do too. The
// confirmation flag is raised again only when the recomputed grand total
// differs from the stored one.
func (s *MonthlyStatement) Regenerate(lines []LineItem, cfg Config) error {
	if s.IsDeleted() {
		return shared.NewDomainError("INVALID_STATE", "Cannot regenerate a deleted statement")
	}
	if s.Status.IsConfirmed() {
		return shared.NewDomainError("STATEMENT_CONFIRMED", "Confirmed statements are immutable")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	totals, err := CalculateTotals(lines, cfg.VATRatePercent)
	if err != nil {
		return err
	}

	totalChanged := !totals.GrandTotal.Equal(s.GrandTotal)

	s.Lines = append(LineItems{}, lines...)
	s.Subtotal = totals.Subtotal
	s.VATRate = cfg.VATRatePercent
	s.VATAmount = totals.VATAmount
	s.GrandTotal = totals.GrandTotal
	s.Currency = cfg.Currency
	s.BoundaryDay = cfg.BoundaryDay

	if totalChanged && cfg.RequireConfirmation {
		s.Status = StatementStatusPending
		s.NeedsConfirmation = true
	}

	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	s.AddDomainEvent(NewMonthlyStatementRegeneratedEvent(s, totalChanged))

	return nil
}

// Confirm finalizes the statement on behalf of the acting user
func (s *MonthlyStatement) Confirm(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Confirming user ID cannot be empty")
	}
	if s.IsDeleted() {
		return shared.NewDomainError("INVALID_STATE", "Cannot confirm a deleted statement")
	}
	if !s.Status.CanConfirm() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot confirm statement in %s status", s.Status))
	}

	now := time.Now()
	s.Status = StatementStatusConfirmed
	s.NeedsConfirmation = false
	s.ConfirmedAt = &now
	s.ConfirmedBy = &userID

	s.UpdatedAt = now
	s.IncrementVersion()
	s.AddDomainEvent(NewMonthlyStatementConfirmedEvent(s))

	return nil
}

// SoftDelete marks the statement deleted. Deletion is an administrative
// override and is permitted regardless of confirmation state; the record
// stays addressable by ID for audit.
func (s *MonthlyStatement) SoftDelete() error {
	if s.IsDeleted() {
		return shared.NewDomainError("INVALID_STATE", "Statement is already deleted")
	}

	now := time.Now()
	s.DeletedAt = &now

	s.UpdatedAt = now
	s.IncrementVersion()
	s.AddDomainEvent(NewMonthlyStatementSoftDeletedEvent(s))

	return nil
}

// Restore clears the deletion mark, returning the statement to its prior
// active state. The caller must ensure the (customer, year, month) slot is
// free before restoring.
func (s *MonthlyStatement) Restore() error {
	if !s.IsDeleted() {
		return shared.NewDomainError("INVALID_STATE", "Statement is not deleted")
	}

	s.DeletedAt = nil

	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	s.AddDomainEvent(NewMonthlyStatementRestoredEvent(s))

	return nil
}

// UpdateNotes sets the customer-facing and internal notes
func (s *MonthlyStatement) UpdateNotes(notes, internalNotes string) error {
	if s.IsDeleted() {
		return shared.NewDomainError("INVALID_STATE", "Cannot edit a deleted statement")
	}
	if s.Status.IsConfirmed() {
		return shared.NewDomainError("INVALID_STATE", "Cannot edit a confirmed statement")
	}

	s.Notes = notes
	s.InternalNotes = internalNotes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsDeleted reports whether the statement is soft-deleted
func (s *MonthlyStatement) IsDeleted() bool {
	return s.DeletedAt != nil
}

// IsConfirmed reports whether the statement has been finalized
func (s *MonthlyStatement) IsConfirmed() bool {
	return s.Status.IsConfirmed()
}

// Period reconstructs the billing window stored on the statement
func (s *MonthlyStatement) Period() Period {
	return Period{
		Year:  s.Year,
		Month: s.Month,
		Start: s.PeriodStart,
		End:   s.PeriodEnd,
	}
}

// GetSubtotalMoney returns the subtotal as a Money value object
func (s *MonthlyStatement) GetSubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyVND(s.Subtotal)
}

// GetVATAmountMoney returns the VAT amount as a Money value object
func (s *MonthlyStatement) GetVATAmountMoney() valueobject.Money {
	return valueobject.NewMoneyVND(s.VATAmount)
}

// GetGrandTotalMoney returns the grand total as a Money value object
func (s *MonthlyStatement) GetGrandTotalMoney() valueobject.Money {
	return valueobject.NewMoneyVND(s.GrandTotal)
}
