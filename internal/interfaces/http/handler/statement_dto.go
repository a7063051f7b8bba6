package handler

// StatementLineResponse represents one plant line on a statement
// @Description Statement line item with the price snapshotted at generation
type StatementLineResponse struct {
	PlantTypeID string `json:"plant_type_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	PlantName   string `json:"plant_name" example:"Kentia Palm"`
	SizeSpec    string `json:"size_spec,omitempty" example:"1.6-1.8m"`
	Quantity    int    `json:"quantity" example:"3"`
	UnitPrice   string `json:"unit_price" example:"100000"`
	Total       string `json:"total" example:"300000"`
}

// StatementResponse represents a monthly statement in API responses
// @Description Monthly statement with line items and totals
type StatementResponse struct {
	ID                string                  `json:"id" example:"550e8400-e29b-41d4-a716-446655440010"`
	CustomerID        string                  `json:"customer_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	CustomerName      string                  `json:"customer_name" example:"Saigon Riverside Hotel"`
	Year              int                     `json:"year" example:"2025"`
	Month             int                     `json:"month" example:"7"`
	PeriodStart       string                  `json:"period_start" example:"2025-06-25T00:00:00Z"`
	PeriodEnd         string                  `json:"period_end" example:"2025-07-24T00:00:00Z"`
	Lines             []StatementLineResponse `json:"lines"`
	Subtotal          string                  `json:"subtotal" example:"300000"`
	VATRate           string                  `json:"vat_rate" example:"8"`
	VATAmount         string                  `json:"vat_amount" example:"24000"`
	GrandTotal        string                  `json:"grand_total" example:"324000"`
	Currency          string                  `json:"currency" example:"VND"`
	BoundaryDay       int                     `json:"boundary_day" example:"25"`
	Status            string                  `json:"status" example:"PENDING" enums:"DRAFT,PENDING,CONFIRMED"`
	NeedsConfirmation bool                    `json:"needs_confirmation" example:"true"`
	ConfirmedAt       *string                 `json:"confirmed_at,omitempty"`
	ConfirmedBy       *string                 `json:"confirmed_by,omitempty"`
	DeletedAt         *string                 `json:"deleted_at,omitempty"`
	Notes             string                  `json:"notes" example:""`
	InternalNotes     string                  `json:"internal_notes" example:""`
	CreatedAt         string                  `json:"created_at" example:"2025-07-26T08:00:00Z"`
	UpdatedAt         string                  `json:"updated_at" example:"2025-07-26T08:00:00Z"`
	Version           int                     `json:"version" example:"1"`
}

// StatementListResponse represents a statement list item
// @Description Statement list item with totals but without line detail
type StatementListResponse struct {
	ID                string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440010"`
	CustomerID        string  `json:"customer_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	CustomerName      string  `json:"customer_name" example:"Saigon Riverside Hotel"`
	Year              int     `json:"year" example:"2025"`
	Month             int     `json:"month" example:"7"`
	GrandTotal        string  `json:"grand_total" example:"324000"`
	Currency          string  `json:"currency" example:"VND"`
	Status            string  `json:"status" example:"PENDING" enums:"DRAFT,PENDING,CONFIRMED"`
	NeedsConfirmation bool    `json:"needs_confirmation" example:"true"`
	ConfirmedAt       *string `json:"confirmed_at,omitempty"`
	DeletedAt         *string `json:"deleted_at,omitempty"`
	CreatedAt         string  `json:"created_at" example:"2025-07-26T08:00:00Z"`
}

// PeriodResponse represents a computed billing window
// @Description Billing window resolved from a labeled month and the boundary day
type PeriodResponse struct {
	Year        int    `json:"year" example:"2025"`
	Month       int    `json:"month" example:"7"`
	BoundaryDay int    `json:"boundary_day" example:"25"`
	Start       string `json:"start" example:"2025-06-25T00:00:00Z"`
	End         string `json:"end" example:"2025-07-24T00:00:00Z"`
	Days        int    `json:"days" example:"30"`
}

// GenerateResultItem represents one customer's outcome in a statement run
// @Description Per customer outcome of a statement run
type GenerateResultItem struct {
	CustomerID   string  `json:"customer_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	CustomerName string  `json:"customer_name" example:"Saigon Riverside Hotel"`
	StatementID  *string `json:"statement_id,omitempty"`
	Outcome      string  `json:"outcome" example:"generated" enums:"generated,regenerated,confirmed_kept,failed"`
	GrandTotal   *string `json:"grand_total,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// GenerateAllStatementsResponse summarizes a statement run
// @Description Summary of a statement run over all billable customers
type GenerateAllStatementsResponse struct {
	Year          int                  `json:"year" example:"2025"`
	Month         int                  `json:"month" example:"7"`
	Customers     int                  `json:"customers" example:"42"`
	Generated     int                  `json:"generated" example:"30"`
	Regenerated   int                  `json:"regenerated" example:"8"`
	ConfirmedKept int                  `json:"confirmed_kept" example:"3"`
	Failed        int                  `json:"failed" example:"1"`
	Results       []GenerateResultItem `json:"results"`
}
