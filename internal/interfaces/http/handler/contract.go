package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	contractapp "github.com/plantrent/backend/internal/application/contract"
	"github.com/plantrent/backend/internal/interfaces/http/dto"
)

// ContractHandler handles rental contract-related API endpoints
type ContractHandler struct {
	BaseHandler
	contractService *contractapp.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *contractapp.ContractService) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// CreateContractRequest represents a request to create a new rental contract
// @Description Request body for creating a new rental contract
type CreateContractRequest struct {
	ContractNumber string    `json:"contract_number" binding:"required,min=1,max=50" example:"HD-2025-0042"`
	CustomerID     string    `json:"customer_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	StartsOn       time.Time `json:"starts_on" binding:"required" example:"2025-06-01T00:00:00Z"`
	Notes          string    `json:"notes" binding:"max=1000" example:"Lobby and mezzanine placement"`
}

// AddContractItemRequest represents a request to add a rental line to a contract
// @Description Rental line to add. When unit_price is omitted the plant type's default price is snapshotted onto the line.
type AddContractItemRequest struct {
	PlantTypeID   string     `json:"plant_type_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440002"`
	Quantity      int        `json:"quantity" binding:"required,min=1" example:"3"`
	UnitPrice     *float64   `json:"unit_price" example:"100000"`
	EffectiveFrom *time.Time `json:"effective_from" example:"2025-06-01T00:00:00Z"`
}

// RecordExchangeRequest represents a request to record a plant exchange visit
// @Description Exchange visit for a rental line. The new quantity becomes the line's quantity from the visit date onward.
type RecordExchangeRequest struct {
	ExchangedOn time.Time `json:"exchanged_on" binding:"required" example:"2025-07-10T00:00:00Z"`
	NewQuantity *int      `json:"new_quantity" binding:"required,min=0" example:"5"`
	Reason      string    `json:"reason" binding:"max=500" example:"Two palms scorched, swapped for fresh stock"`
}

// EndContractItemRequest represents a request to end a single rental line
// @Description Request body for ending a rental line
type EndContractItemRequest struct {
	EndsOn time.Time `json:"ends_on" binding:"required" example:"2025-09-30T00:00:00Z"`
}

// TerminateContractRequest represents a request to terminate a contract
// @Description Request body for terminating a contract
type TerminateContractRequest struct {
	EndsOn time.Time `json:"ends_on" binding:"required" example:"2025-12-31T00:00:00Z"`
	Reason string    `json:"reason" binding:"max=500" example:"Customer closed the branch office"`
}

// ContractResponse represents a rental contract in API responses
// @Description Rental contract response
type ContractResponse struct {
	ID             string                 `json:"id" example:"550e8400-e29b-41d4-a716-446655440010"`
	ContractNumber string                 `json:"contract_number" example:"HD-2025-0042"`
	CustomerID     string                 `json:"customer_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CustomerName   string                 `json:"customer_name" example:"Saigon Riverside Hotel"`
	Status         string                 `json:"status" example:"ACTIVE" enums:"DRAFT,ACTIVE,TERMINATED"`
	StartsOn       time.Time              `json:"starts_on"`
	EndsOn         *time.Time             `json:"ends_on,omitempty"`
	Notes          string                 `json:"notes" example:"Lobby and mezzanine placement"`
	Items          []ContractItemResponse `json:"items"`
	ActivatedAt    *time.Time             `json:"activated_at,omitempty"`
	TerminatedAt   *time.Time             `json:"terminated_at,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	Version        int                    `json:"version" example:"1"`
}

// ContractItemResponse represents a rental line in API responses
// @Description Rental line response
type ContractItemResponse struct {
	ID            string                  `json:"id" example:"550e8400-e29b-41d4-a716-446655440020"`
	PlantTypeID   string                  `json:"plant_type_id" example:"550e8400-e29b-41d4-a716-446655440002"`
	PlantName     string                  `json:"plant_name" example:"Kentia Palm"`
	SizeSpec      string                  `json:"size_spec" example:"1.6-1.8m"`
	Quantity      int                     `json:"quantity" example:"3"`
	UnitPrice     float64                 `json:"unit_price" example:"100000"`
	EffectiveFrom time.Time               `json:"effective_from"`
	EffectiveTo   *time.Time              `json:"effective_to,omitempty"`
	Exchanges     []PlantExchangeResponse `json:"exchanges"`
}

// PlantExchangeResponse represents an exchange visit in API responses
// @Description Plant exchange visit response
type PlantExchangeResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440030"`
	ExchangedOn time.Time `json:"exchanged_on"`
	NewQuantity int       `json:"new_quantity" example:"5"`
	Reason      string    `json:"reason" example:"Two palms scorched, swapped for fresh stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// ContractListResponse represents a rental contract in list responses
// @Description Rental contract list item response
type ContractListResponse struct {
	ID             string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440010"`
	ContractNumber string     `json:"contract_number" example:"HD-2025-0042"`
	CustomerID     string     `json:"customer_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CustomerName   string     `json:"customer_name" example:"Saigon Riverside Hotel"`
	Status         string     `json:"status" example:"ACTIVE" enums:"DRAFT,ACTIVE,TERMINATED"`
	StartsOn       time.Time  `json:"starts_on"`
	EndsOn         *time.Time `json:"ends_on,omitempty"`
	ItemCount      int        `json:"item_count" example:"3"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Create godoc
// @Summary      Create a new rental contract
// @Description  Create a new rental contract in DRAFT status. Rental lines are added separately before activation.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        request body CreateContractRequest true "Contract creation request"
// @Success      201 {object} dto.Response{data=ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if !h.bindJSON(c, &req) {
		return
	}

	// Convert to application DTO
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	appReq := contractapp.CreateContractRequest{
		ContractNumber: req.ContractNumber,
		CustomerID:     customerID,
		StartsOn:       req.StartsOn,
		Notes:          req.Notes,
	}

	rentalContract, err := h.contractService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toContractResponse(rentalContract))
}

// GetByID godoc
// @Summary      Get rental contract by ID
// @Description  Retrieve a rental contract with its lines and exchange history
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {object} dto.Response{data=ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetByID(c *gin.Context) {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	rentalContract, err := h.contractService.GetByID(c.Request.Context(), contractID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toContractResponse(rentalContract))
}

// List godoc
// @Summary      List rental contracts
// @Description  Retrieve a paginated list of rental contracts with optional filtering
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        customer_id query string false "Filter by customer ID" format(uuid)
// @Param        status query string false "Contract status" Enums(DRAFT, ACTIVE, TERMINATED)
// @Param        search query string false "Search term (contract number, customer name)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(desc)
// @Success      200 {object} dto.Response{data=[]ContractListResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	var filter contractapp.ContractListFilter
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

	contracts, total, err := h.contractService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, toContractListResponses(contracts), total, filter.Page, filter.PageSize)
}

// AddItem godoc
// @Summary      Add rental line to contract
// @Description  Add a new rental line to a contract. The unit price is snapshotted from the plant type's default price when omitted.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Param        request body AddContractItemRequest true "Rental line to add"
// @Success      200 {object} dto.Response{data=ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id}/items [post]
func (h *ContractHandler) AddItem(c *gin.Context) {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	var req AddContractItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	plantTypeID, err := uuid.Parse(req.PlantTypeID)
	if err != nil {
		h.BadRequest(c, "Invalid plant type ID format")
		return
	}

	appReq := contractapp.AddContractItemRequest{
		PlantTypeID:   plantTypeID,
		Quantity:      req.Quantity,
		EffectiveFrom: req.EffectiveFrom,
	}
	if req.UnitPrice != nil {
		appReq.UnitPrice = decimalPtr(*req.UnitPrice)
	}

	rentalContract, err := h.contractService.AddItem(c.Request.Context(), contractID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toContractResponse(rentalContract))
}

// EndItem godoc
// @Summary      End a rental line
// @Description  End a single rental line on the given date. The line stops contributing to statements for periods after that date.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Param        item_id path string true "Rental Line ID" format(uuid)
// @Param        request body EndContractItemRequest true "End line request"
// @Success      200 {object} dto.Response{data=ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id}/items/{item_id}/end [post]
func (h *ContractHandler) EndItem(c *gin.Context) {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid rental line ID format")
		return
	}

	var req EndContractItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appReq := contractapp.EndContractItemRequest{
		EndsOn: req.EndsOn,
	}

	rentalContract, err := h.contractService.EndItem(c.Request.Context(), contractID, itemID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toContractResponse(rentalContract))
}

// RecordExchange godoc
// @Summary      Record a plant exchange visit
// @Description  Record an exchange visit on a rental line. The new quantity takes effect from the visit date and drives quantity resolution for statement periods.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Param        item_id path string true "Rental Line ID" format(uuid)
// @Param        request body RecordExchangeRequest true "Exchange visit to record"
// @Success      200 {object} dto.Response{data=ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id}/items/{item_id}/exchanges [post]
func (h *ContractHandler) RecordExchange(c *gin.Context) {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid rental line ID format")
		return
	}

	var req RecordExchangeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appReq := contractapp.RecordExchangeRequest{
		ExchangedOn: req.ExchangedOn,
		NewQuantity: req.NewQuantity,
		Reason:      req.Reason,
	}

	rentalContract, err := h.contractService.RecordExchange(c.Request.Context(), contractID, itemID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toContractResponse(rentalContract))
}

// Activate godoc
// @Summary      Activate a rental contract
// @Description  Activate a draft contract (transitions from DRAFT to ACTIVE). Only active contracts contribute to statement generation.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {object} dto.Response{data=ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id}/activate [post]
func (h *ContractHandler) Activate(c *gin.Context) {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	rentalContract, err := h.contractService.Activate(c.Request.Context(), contractID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toContractResponse(rentalContract))
}

// Terminate godoc
// @Summary      Terminate a rental contract
// @Description  Terminate an active contract on the given end date. Open rental lines are closed on the same date.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Param        request body TerminateContractRequest true "Termination request"
// @Success      200 {object} dto.Response{data=ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id}/terminate [post]
func (h *ContractHandler) Terminate(c *gin.Context) {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	var req TerminateContractRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appReq := contractapp.TerminateContractRequest{
		EndsOn: req.EndsOn,
		Reason: req.Reason,
	}

	rentalContract, err := h.contractService.Terminate(c.Request.Context(), contractID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toContractResponse(rentalContract))
}

// toContractResponse converts application response to handler response
func toContractResponse(rentalContract *contractapp.ContractResponse) ContractResponse {
	items := make([]ContractItemResponse, len(rentalContract.Items))
	for i, item := range rentalContract.Items {
		exchanges := make([]PlantExchangeResponse, len(item.Exchanges))
		for j, exchange := range item.Exchanges {
			exchanges[j] = PlantExchangeResponse{
				ID:          exchange.ID.String(),
				ExchangedOn: exchange.ExchangedOn,
				NewQuantity: exchange.NewQuantity,
				Reason:      exchange.Reason,
				CreatedAt:   exchange.CreatedAt,
			}
		}
		items[i] = ContractItemResponse{
			ID:            item.ID.String(),
			PlantTypeID:   item.PlantTypeID.String(),
			PlantName:     item.PlantName,
			SizeSpec:      item.SizeSpec,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice.InexactFloat64(),
			EffectiveFrom: item.EffectiveFrom,
			EffectiveTo:   item.EffectiveTo,
			Exchanges:     exchanges,
		}
	}

	return ContractResponse{
		ID:             rentalContract.ID.String(),
		ContractNumber: rentalContract.ContractNumber,
		CustomerID:     rentalContract.CustomerID.String(),
		CustomerName:   rentalContract.CustomerName,
		Status:         rentalContract.Status,
		StartsOn:       rentalContract.StartsOn,
		EndsOn:         rentalContract.EndsOn,
		Notes:          rentalContract.Notes,
		Items:          items,
		ActivatedAt:    rentalContract.ActivatedAt,
		TerminatedAt:   rentalContract.TerminatedAt,
		CreatedAt:      rentalContract.CreatedAt,
		UpdatedAt:      rentalContract.UpdatedAt,
		Version:        rentalContract.Version,
	}
}

// toContractListResponses converts application list responses to handler responses
func toContractListResponses(contracts []contractapp.ContractListResponse) []ContractListResponse {
	responses := make([]ContractListResponse, len(contracts))
	for i, rentalContract := range contracts {
		responses[i] = ContractListResponse{
			ID:             rentalContract.ID.String(),
			ContractNumber: rentalContract.ContractNumber,
			CustomerID:     rentalContract.CustomerID.String(),
			CustomerName:   rentalContract.CustomerName,
			Status:         rentalContract.Status,
			StartsOn:       rentalContract.StartsOn,
			EndsOn:         rentalContract.EndsOn,
			ItemCount:      rentalContract.ItemCount,
			CreatedAt:      rentalContract.CreatedAt,
		}
	}
	return responses
}

// Keep the dto import anchored; its types appear only in swagger annotations.
var _ = dto.Response{}
