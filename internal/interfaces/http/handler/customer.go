package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	directoryapp "github.com/plantrent/backend/internal/application/directory"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *directoryapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *directoryapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CreateCustomerRequest represents a request to create a new customer
// @Description Request body for creating a new customer
type CreateCustomerRequest struct {
	Code     string `json:"code" binding:"required,min=1,max=50" example:"KH-0042"`
	Name     string `json:"name" binding:"required,min=1,max=200" example:"Saigon Riverside Hotel"`
	Phone    string `json:"phone" binding:"max=50" example:"+84 28 3823 4999"`
	Email    string `json:"email" binding:"omitempty,email,max=200" example:"facilities@riverside.example.vn"`
	Address  string `json:"address" binding:"max=500" example:"18 Ton Duc Thang"`
	District string `json:"district" binding:"max=100" example:"District 1"`
	Notes    string `json:"notes" example:"Lobby and rooftop bar"`
}

// UpdateCustomerRequest represents a request to update a customer
// @Description Request body for updating a customer
type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200" example:"Saigon Riverside Hotel"`
	Phone    *string `json:"phone" binding:"omitempty,max=50" example:"+84 28 3823 4999"`
	Email    *string `json:"email" binding:"omitempty,email,max=200" example:"facilities@riverside.example.vn"`
	Address  *string `json:"address" binding:"omitempty,max=500" example:"18 Ton Duc Thang"`
	District *string `json:"district" binding:"omitempty,max=100" example:"District 1"`
	Notes    *string `json:"notes" example:"Lobby, rooftop bar and spa floor"`
}

// TransitionCustomerRequest represents a request to move a customer to a new status
// @Description Request body for customer status transitions
type TransitionCustomerRequest struct {
	Status string `json:"status" binding:"required,oneof=lead active inactive terminated" example:"active"`
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a new customer
// @Description  Create a new customer in the directory
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body CreateCustomerRequest true "Customer creation request"
// @Success      201 {object} APIResponse[CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /directory/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), directoryapp.CreateCustomerRequest{
		Code:     req.Code,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		District: req.District,
		Notes:    req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, customer)
}

// GetByID godoc
// @ID           getCustomerById
// @Summary      Get customer by ID
// @Description  Retrieve a customer by its ID
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /directory/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// GetByCode godoc
// @ID           getCustomerByCode
// @Summary      Get customer by code
// @Description  Retrieve a customer by its code
// @Tags         customers
// @Produce      json
// @Param        code path string true "Customer Code"
// @Success      200 {object} APIResponse[CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /directory/customers/code/{code} [get]
func (h *CustomerHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Customer code is required")
		return
	}

	customer, err := h.customerService.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Retrieve a paginated list of customers with optional filtering
// @Tags         customers
// @Produce      json
// @Param        search query string false "Search term (name, code, phone)"
// @Param        status query string false "Customer status" Enums(lead, active, inactive, terminated)
// @Param        district query string false "District"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(desc)
// @Success      200 {object} APIResponse[[]CustomerListResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /directory/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var filter directoryapp.CustomerListFilter
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

	customers, total, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, customers, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Update an existing customer's contact details and notes
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body UpdateCustomerRequest true "Customer update request"
// @Success      200 {object} APIResponse[CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /directory/customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req UpdateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), customerID, directoryapp.UpdateCustomerRequest{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		District: req.District,
		Notes:    req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// Transition godoc
// @ID           transitionCustomer
// @Summary      Change customer status
// @Description  Move a customer through its lifecycle (lead, active, inactive, terminated). Only active customers are picked up by statement runs.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body TransitionCustomerRequest true "Status transition request"
// @Success      200 {object} APIResponse[CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /directory/customers/{id}/transition [post]
func (h *CustomerHandler) Transition(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req TransitionCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Transition(c.Request.Context(), customerID, directoryapp.TransitionCustomerRequest{
		Status: req.Status,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}
