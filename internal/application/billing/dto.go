package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// GenerateOutcome says what a generate call did to the statement slot
type GenerateOutcome string

const (
	OutcomeGenerated     GenerateOutcome = "generated"      // New statement row created
	OutcomeRegenerated   GenerateOutcome = "regenerated"    // Existing unconfirmed statement recalculated
	OutcomeConfirmedKept GenerateOutcome = "confirmed_kept" // Confirmed statement returned untouched
	OutcomeFailed        GenerateOutcome = "failed"         // Run entry only; the error rides along
)

// =============================================================================
// Requests
// =============================================================================

// GenerateStatementRequest asks for the statement of one customer and period
type GenerateStatementRequest struct {
	CustomerID uuid.UUID  `json:"customer_id" binding:"required"`
	Year       int        `json:"year" binding:"required,min=2000,max=2100"`
	Month      int        `json:"month" binding:"required,min=1,max=12"`
	Force      bool       `json:"force"` // Overwrite request; rejected with a conflict when confirmed
	ActorID    *uuid.UUID `json:"-"`     // Set from the auth context, not from the request body
}

// GenerateAllRequest asks for a statement run over every billable customer
type GenerateAllRequest struct {
	Year    int        `json:"year" binding:"required,min=2000,max=2100"`
	Month   int        `json:"month" binding:"required,min=1,max=12"`
	ActorID *uuid.UUID `json:"-"`
}

// UpdateStatementNotesRequest updates the notes of an unconfirmed statement
type UpdateStatementNotesRequest struct {
	Notes         *string `json:"notes"`
	InternalNotes *string `json:"internal_notes"`
}

// StatementListFilter represents filter options for the statement list
type StatementListFilter struct {
	CustomerID        *uuid.UUID `form:"customer_id"`
	Year              *int       `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month             *int       `form:"month" binding:"omitempty,min=1,max=12"`
	Status            string     `form:"status" binding:"omitempty,oneof=DRAFT PENDING CONFIRMED"`
	NeedsConfirmation *bool      `form:"needs_confirmation"`
	IncludeDeleted    bool       `form:"include_deleted"`
	Page              int        `form:"page" binding:"min=0"`
	PageSize          int        `form:"page_size" binding:"min=0,max=100"`
	OrderBy           string     `form:"order_by"`
	OrderDir          string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// =============================================================================
// Responses
// =============================================================================

// StatementLineResponse is one plant line on a statement
type StatementLineResponse struct {
	PlantTypeID uuid.UUID       `json:"plant_type_id"`
	PlantName   string          `json:"plant_name"`
	SizeSpec    string          `json:"size_spec,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// StatementResponse represents a statement in API responses
type StatementResponse struct {
	ID                uuid.UUID               `json:"id"`
	CustomerID        uuid.UUID               `json:"customer_id"`
	CustomerName      string                  `json:"customer_name"`
	Year              int                     `json:"year"`
	Month             int                     `json:"month"`
	PeriodStart       time.Time               `json:"period_start"`
	PeriodEnd         time.Time               `json:"period_end"`
	Lines             []StatementLineResponse `json:"lines"`
	Subtotal          decimal.Decimal         `json:"subtotal"`
	VATRate           decimal.Decimal         `json:"vat_rate"`
	VATAmount         decimal.Decimal         `json:"vat_amount"`
	GrandTotal        decimal.Decimal         `json:"grand_total"`
	Currency          string                  `json:"currency"`
	BoundaryDay       int                     `json:"boundary_day"`
	Status            string                  `json:"status"`
	NeedsConfirmation bool                    `json:"needs_confirmation"`
	ConfirmedAt       *time.Time              `json:"confirmed_at,omitempty"`
	ConfirmedBy       *uuid.UUID              `json:"confirmed_by,omitempty"`
	DeletedAt         *time.Time              `json:"deleted_at,omitempty"`
	Notes             string                  `json:"notes"`
	InternalNotes     string                  `json:"internal_notes"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
	Version           int                     `json:"version"`
}

// StatementListResponse represents a list item for statements
type StatementListResponse struct {
	ID                uuid.UUID       `json:"id"`
	CustomerID        uuid.UUID       `json:"customer_id"`
	CustomerName      string          `json:"customer_name"`
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	NeedsConfirmation bool            `json:"needs_confirmation"`
	ConfirmedAt       *time.Time      `json:"confirmed_at,omitempty"`
	DeletedAt         *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// PeriodResponse is the computed billing window for a labeled month
type PeriodResponse struct {
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	BoundaryDay int       `json:"boundary_day"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Days        int       `json:"days"`
}

// GenerateResultItem is one customer's outcome in a statement run
type GenerateResultItem struct {
	CustomerID   uuid.UUID        `json:"customer_id"`
	CustomerName string           `json:"customer_name"`
	StatementID  *uuid.UUID       `json:"statement_id,omitempty"`
	Outcome      GenerateOutcome  `json:"outcome"`
	GrandTotal   *decimal.Decimal `json:"grand_total,omitempty"`
	Error        string           `json:"error,omitempty"`
}

// GenerateAllResponse summarizes a statement run
type GenerateAllResponse struct {
	Year          int                  `json:"year"`
	Month         int                  `json:"month"`
	Customers     int                  `json:"customers"`
	Generated     int                  `json:"generated"`
	Regenerated   int                  `json:"regenerated"`
	ConfirmedKept int                  `json:"confirmed_kept"`
	Failed        int                  `json:"failed"`
	Results       []GenerateResultItem `json:"results"`
}

// ToStatementLineResponses converts domain line items
func ToStatementLineResponses(lines billing.LineItems) []StatementLineResponse {
	out := make([]StatementLineResponse, len(lines))
	for i, line := range lines {
		out[i] = StatementLineResponse{
			PlantTypeID: line.PlantTypeID,
			PlantName:   line.PlantName,
			SizeSpec:    line.SizeSpec,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.Total,
		}
	}
	return out
}

// ToStatementResponse converts a domain MonthlyStatement to StatementResponse
func ToStatementResponse(s *billing.MonthlyStatement) StatementResponse {
	return StatementResponse{
		ID:                s.ID,
		CustomerID:        s.CustomerID,
		CustomerName:      s.CustomerName,
		Year:              s.Year,
		Month:             s.Month,
		PeriodStart:       s.PeriodStart,
		PeriodEnd:         s.PeriodEnd,
		Lines:             ToStatementLineResponses(s.Lines),
		Subtotal:          s.Subtotal,
		VATRate:           s.VATRate,
		VATAmount:         s.VATAmount,
		GrandTotal:        s.GrandTotal,
		Currency:          string(s.Currency),
		BoundaryDay:       s.BoundaryDay,
		Status:            string(s.Status),
		NeedsConfirmation: s.NeedsConfirmation,
		ConfirmedAt:       s.ConfirmedAt,
		ConfirmedBy:       s.ConfirmedBy,
		DeletedAt:         s.DeletedAt,
		Notes:             s.Notes,
		InternalNotes:     s.InternalNotes,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		Version:           s.Version,
	}
}

// ToStatementListResponses converts domain statements to list items
func ToStatementListResponses(statements []billing.MonthlyStatement) []StatementListResponse {
	out := make([]StatementListResponse, len(statements))
	for i := range statements {
		s := &statements[i]
		out[i] = StatementListResponse{
			ID:                s.ID,
			CustomerID:        s.CustomerID,
			CustomerName:      s.CustomerName,
			Year:              s.Year,
			Month:             s.Month,
			GrandTotal:        s.GrandTotal,
			Currency:          string(s.Currency),
			Status:            string(s.Status),
			NeedsConfirmation: s.NeedsConfirmation,
			ConfirmedAt:       s.ConfirmedAt,
			DeletedAt:         s.DeletedAt,
			CreatedAt:         s.CreatedAt,
		}
	}
	return out
}

// ToPeriodResponse converts a domain Period
func ToPeriodResponse(p billing.Period, boundaryDay int) PeriodResponse {
	return PeriodResponse{
		Year:        p.Year,
		Month:       p.Month,
		BoundaryDay: boundaryDay,
		Start:       p.Start,
		End:         p.End,
		Days:        p.Days(),
	}
}
