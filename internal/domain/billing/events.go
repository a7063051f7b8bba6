package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MonthlyStatementGeneratedEvent is raised when a statement is first created
// for a (customer, period) key
type MonthlyStatementGeneratedEvent struct {
	shared.BaseDomainEvent
	StatementID  uuid.UUID       `json:"statement_id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	LineCount    int             `json:"line_count"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// EventType returns the event type name
func (e *MonthlyStatementGeneratedEvent) EventType() string {
	return "MonthlyStatementGenerated"
}

// NewMonthlyStatementGeneratedEvent creates a new MonthlyStatementGeneratedEvent
func NewMonthlyStatementGeneratedEvent(s *MonthlyStatement) *MonthlyStatementGeneratedEvent {
	return &MonthlyStatementGeneratedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("MonthlyStatementGenerated", "MonthlyStatement", s.ID),
		StatementID:     s.ID,
		CustomerID:      s.CustomerID,
		CustomerName:    s.CustomerName,
		Year:            s.Year,
		Month:           s.Month,
		LineCount:       len(s.Lines),
		GrandTotal:      s.GrandTotal,
	}
}

// MonthlyStatementRegeneratedEvent is raised when an unconfirmed statement's
// content is replaced
type MonthlyStatementRegeneratedEvent struct {
	shared.BaseDomainEvent
	StatementID  uuid.UUID       `json:"statement_id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	LineCount    int             `json:"line_count"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	TotalChanged bool            `json:"total_changed"`
}

// EventType returns the event type name
func (e *MonthlyStatementRegeneratedEvent) EventType() string {
	return "MonthlyStatementRegenerated"
}

// NewMonthlyStatementRegeneratedEvent creates a new MonthlyStatementRegeneratedEvent
func NewMonthlyStatementRegeneratedEvent(s *MonthlyStatement, totalChanged bool) *MonthlyStatementRegeneratedEvent {
	return &MonthlyStatementRegeneratedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("MonthlyStatementRegenerated", "MonthlyStatement", s.ID),
		StatementID:     s.ID,
		CustomerID:      s.CustomerID,
		Year:            s.Year,
		Month:           s.Month,
		LineCount:       len(s.Lines),
		GrandTotal:      s.GrandTotal,
		TotalChanged:    totalChanged,
	}
}

// MonthlyStatementConfirmedEvent is raised when a statement is finalized
type MonthlyStatementConfirmedEvent struct {
	shared.BaseDomainEvent
	StatementID uuid.UUID       `json:"statement_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	ConfirmedBy uuid.UUID       `json:"confirmed_by"`
	ConfirmedAt time.Time       `json:"confirmed_at"`
}

// EventType returns the event type name
func (e *MonthlyStatementConfirmedEvent) EventType() string {
	return "MonthlyStatementConfirmed"
}

// NewMonthlyStatementConfirmedEvent creates a new MonthlyStatementConfirmedEvent
func NewMonthlyStatementConfirmedEvent(s *MonthlyStatement) *MonthlyStatementConfirmedEvent {
	e := &MonthlyStatementConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("MonthlyStatementConfirmed", "MonthlyStatement", s.ID),
		StatementID:     s.ID,
		CustomerID:      s.CustomerID,
		Year:            s.Year,
		Month:           s.Month,
		GrandTotal:      s.GrandTotal,
	}
	if s.ConfirmedBy != nil {
		e.ConfirmedBy = *s.ConfirmedBy
	}
	if s.ConfirmedAt != nil {
		e.ConfirmedAt = *s.ConfirmedAt
	}
	return e
}

// MonthlyStatementSoftDeletedEvent is raised when a statement is soft-deleted
type MonthlyStatementSoftDeletedEvent struct {
	shared.BaseDomainEvent
	StatementID  uuid.UUID `json:"statement_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	WasConfirmed bool      `json:"was_confirmed"`
}

// EventType returns the event type name
func (e *MonthlyStatementSoftDeletedEvent) EventType() string {
	return "MonthlyStatementSoftDeleted"
}

// NewMonthlyStatementSoftDeletedEvent creates a new MonthlyStatementSoftDeletedEvent
func NewMonthlyStatementSoftDeletedEvent(s *MonthlyStatement) *MonthlyStatementSoftDeletedEvent {
	return &MonthlyStatementSoftDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("MonthlyStatementSoftDeleted", "MonthlyStatement", s.ID),
		StatementID:     s.ID,
		CustomerID:      s.CustomerID,
		Year:            s.Year,
		Month:           s.Month,
		WasConfirmed:    s.IsConfirmed(),
	}
}

// MonthlyStatementRestoredEvent is raised when a soft-deleted statement is
// brought back to the active state
type MonthlyStatementRestoredEvent struct {
	shared.BaseDomainEvent
	StatementID uuid.UUID `json:"statement_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
}

// EventType returns the event type name
func (e *MonthlyStatementRestoredEvent) EventType() string {
	return "MonthlyStatementRestored"
}

// NewMonthlyStatementRestoredEvent creates a new MonthlyStatementRestoredEvent
func NewMonthlyStatementRestoredEvent(s *MonthlyStatement) *MonthlyStatementRestoredEvent {
	return &MonthlyStatementRestoredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("MonthlyStatementRestored", "MonthlyStatement", s.ID),
		StatementID:     s.ID,
		CustomerID:      s.CustomerID,
		Year:            s.Year,
		Month:           s.Month,
	}
}
