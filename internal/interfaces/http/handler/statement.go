package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/plantrent/backend/internal/application/billing"
)

// StatementHandler handles monthly statement API endpoints
type StatementHandler struct {
	BaseHandler
	statementService *billingapp.StatementService
}

// NewStatementHandler creates a new StatementHandler
func NewStatementHandler(statementService *billingapp.StatementService) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
	}
}

// GenerateStatementRequest represents a request to generate one statement
// @Description Request body for generating or regenerating a monthly statement
type GenerateStatementRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100" example:"2025"`
	Month      int    `json:"month" binding:"required,min=1,max=12" example:"7"`
	Force      bool   `json:"force" example:"false"`
}

// GenerateAllStatementsRequest represents a request for a full statement run
// @Description Request body for generating statements for every billable customer
type GenerateAllStatementsRequest struct {
	Year  int `json:"year" binding:"required,min=2000,max=2100" example:"2025"`
	Month int `json:"month" binding:"required,min=1,max=12" example:"7"`
}

// UpdateStatementNotesRequest represents a request to update statement notes
// @Description Request body for updating the notes of an unconfirmed statement
type UpdateStatementNotesRequest struct {
	Notes         *string `json:"notes" example:"Customer asked for itemized annex"`
	InternalNotes *string `json:"internal_notes" example:"Quantity verified on site 2025-07-28"`
}

// GenerateStatementResult pairs a statement with what the generate call did
// @Description Statement generation result with outcome
type GenerateStatementResult struct {
	Outcome   billingapp.GenerateOutcome    `json:"outcome" example:"generated" enums:"generated,regenerated,confirmed_kept"`
	Statement *billingapp.StatementResponse `json:"statement"`
}

// Generate godoc
// @ID           generateStatement
// @Summary      Generate or regenerate a statement
// @Description  Produce the monthly statement for one customer and period. An unconfirmed statement is recalculated in place; a confirmed one is returned untouched unless force is set, which is rejected as a conflict.
// @Tags         statements
// @Accept       json
// @Produce      json
// @Param        request body GenerateStatementRequest true "Statement generation request"
// @Success      200 {object} APIResponse[GenerateStatementResult]
// @Success      201 {object} APIResponse[GenerateStatementResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/statements/generate [post]
func (h *StatementHandler) Generate(c *gin.Context) {
	var req GenerateStatementRequest
	if !h.bindJSON(c, &req) {
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	appReq := billingapp.GenerateStatementRequest{
		CustomerID: customerID,
		Year:       req.Year,
		Month:      req.Month,
		Force:      req.Force,
	}
	if userID, err := getUserID(c); err == nil && userID != uuid.Nil {
		appReq.ActorID = &userID
	}

	statement, outcome, err := h.statementService.GenerateOrRegenerate(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	result := GenerateStatementResult{Outcome: outcome, Statement: statement}
	if outcome == billingapp.OutcomeGenerated {
		h.Created(c, result)
		return
	}
	h.Success(c, result)
}

// GenerateAll godoc
// @ID           generateAllStatements
// @Summary      Run statement generation for all billable customers
// @Description  Generate or regenerate the statements of every billable customer for one period. Customers whose slot is confirmed are kept untouched; per-customer failures are reported without aborting the run.
// @Tags         statements
// @Accept       json
// @Produce      json
// @Param        request body GenerateAllStatementsRequest true "Statement run request"
// @Success      200 {object} APIResponse[GenerateAllStatementsResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/statements/generate-all [post]
func (h *StatementHandler) GenerateAll(c *gin.Context) {
	var req GenerateAllStatementsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appReq := billingapp.GenerateAllRequest{
		Year:  req.Year,
		Month: req.Month,
	}
	if userID, err := getUserID(c); err == nil && userID != uuid.Nil {
		appReq.ActorID = &userID
	}

	result, err := h.statementService.GenerateAll(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByID godoc
// @ID           getStatementById
// @Summary      Get statement by ID
// @Description  Retrieve a monthly statement with its line items
// @Tags         statements
// @Produce      json
// @Param        id path string true "Statement ID" format(uuid)
// @Success      200 {object} APIResponse[StatementResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/statements/{id} [get]
func (h *StatementHandler) GetByID(c *gin.Context) {
	statementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid statement ID format")
		return
	}

	statement, err := h.statementService.GetByID(c.Request.Context(), statementID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, statement)
}

// List godoc
// @ID           listStatements
// @Summary      List statements
// @Description  Retrieve a paginated list of statements with optional filtering
// @Tags         statements
// @Produce      json
// @Param        customer_id query string false "Customer ID" format(uuid)
// @Param        year query int false "Statement year"
// @Param        month query int false "Statement month"
// @Param        status query string false "Statement status" Enums(DRAFT, PENDING, CONFIRMED)
// @Param        needs_confirmation query bool false "Only statements awaiting confirmation"
// @Param        include_deleted query bool false "Include soft deleted statements"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(desc)
// @Success      200 {object} APIResponse[[]StatementListResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/statements [get]
func (h *StatementHandler) List(c *gin.Context) {
	var filter billingapp.StatementListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	statements, total, err := h.statementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, statements, total, filter.Page, filter.PageSize)
}

// Confirm godoc
// @ID           confirmStatement
// @Summary      Confirm a statement
// @Description  Mark a statement as checked against reality. A confirmed statement is immutable; later generate calls leave it untouched.
// @Tags         statements
// @Produce      json
// @Param        id path string true "Statement ID" format(uuid)
// @Success      200 {object} APIResponse[StatementResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/statements/{id}/confirm [post]
func (h *StatementHandler) Confirm(c *gin.Context) {
	statementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid statement ID format")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity is required to confirm a statement")
		return
	}

	statement, err := h.statementService.Confirm(c.Request.Context(), statementID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, statement)
}

// SoftDelete godoc
// @ID           deleteStatement
// @Summary      Soft delete a statement
// @Description  Hide a statement from the active set. Works on confirmed statements too; the row is kept for audit and can be restored.
// @Tags         statements
// @Produce      json
// @Param        id path string true "Statement ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/statements/{id} [delete]
func (h *StatementHandler) SoftDelete(c *gin.Context) {
	statementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid statement ID format")
		return
	}

	if err := h.statementService.SoftDelete(c.Request.Context(), statementID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Restore godoc
// @ID           restoreStatement
// @Summary      Restore a soft deleted statement
// @Description  Bring a soft deleted statement back into the active set. Rejected with a conflict when another active statement occupies the same customer and period.
// @Tags         statements
// @Produce      json
// @Param        id path string true "Statement ID" format(uuid)
// @Success      200 {object} APIResponse[StatementResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/statements/{id}/restore [post]
func (h *StatementHandler) Restore(c *gin.Context) {
	statementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid statement ID format")
		return
	}

	statement, err := h.statementService.Restore(c.Request.Context(), statementID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, statement)
}

// UpdateNotes godoc
// @ID           updateStatementNotes
// @Summary      Update statement notes
// @Description  Update the customer-facing or internal notes of an unconfirmed statement
// @Tags         statements
// @Accept       json
// @Produce      json
// @Param        id path string true "Statement ID" format(uuid)
// @Param        request body UpdateStatementNotesRequest true "Notes update request"
// @Success      200 {object} APIResponse[StatementResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/statements/{id}/notes [put]
func (h *StatementHandler) UpdateNotes(c *gin.Context) {
	statementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid statement ID format")
		return
	}

	var req UpdateStatementNotesRequest
	if !h.bindJSON(c, &req) {
		return
	}

	statement, err := h.statementService.UpdateNotes(c.Request.Context(), statementID, billingapp.UpdateStatementNotesRequest{
		Notes:         req.Notes,
		InternalNotes: req.InternalNotes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, statement)
}

// ComputePeriod godoc
// @ID           computeStatementPeriod
// @Summary      Compute the billing window for a month
// @Description  Resolve the labeled month to its concrete billing window using the configured boundary day. Pure calculation, nothing is stored.
// @Tags         statements
// @Produce      json
// @Param        year path int true "Statement year" example(2025)
// @Param        month path int true "Statement month" example(7)
// @Success      200 {object} APIResponse[PeriodResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /billing/periods/{year}/{month} [get]
func (h *StatementHandler) ComputePeriod(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.BadRequest(c, "Invalid year format")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		h.BadRequest(c, "Invalid month format")
		return
	}

	period, err := h.statementService.ComputePeriod(year, month)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, period)
}
