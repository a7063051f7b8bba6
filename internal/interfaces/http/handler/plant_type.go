package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/plantrent/backend/internal/application/catalog"
)

// PlantTypeHandler handles plant type API endpoints
type PlantTypeHandler struct {
	BaseHandler
	plantTypeService *catalogapp.PlantTypeService
}

// NewPlantTypeHandler creates a new PlantTypeHandler
func NewPlantTypeHandler(plantTypeService *catalogapp.PlantTypeService) *PlantTypeHandler {
	return &PlantTypeHandler{
		plantTypeService: plantTypeService,
	}
}

// CreatePlantTypeRequest represents a request to create a plant type
// @Description Request body for creating a plant type
type CreatePlantTypeRequest struct {
	Code         string   `json:"code" binding:"required,min=1,max=50" example:"KENTIA-L"`
	Name         string   `json:"name" binding:"required,min=1,max=200" example:"Kentia Palm"`
	SizeSpec     string   `json:"size_spec" binding:"max=50" example:"1.6-1.8m"`
	Description  string   `json:"description" binding:"max=1000" example:"Shade tolerant palm for lobbies"`
	DefaultPrice *float64 `json:"default_price" example:"100000"`
}

// UpdatePlantTypeRequest represents a request to update a plant type
// @Description Request body for updating a plant type
type UpdatePlantTypeRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=200" example:"Kentia Palm"`
	SizeSpec     *string  `json:"size_spec" binding:"omitempty,max=50" example:"1.8-2.0m"`
	Description  *string  `json:"description" binding:"omitempty,max=1000" example:"Shade tolerant palm"`
	DefaultPrice *float64 `json:"default_price" example:"120000"`
}

// PlantTypeResponse represents a plant type in API responses
// @Description Plant type details returned by the API
type PlantTypeResponse struct {
	ID           string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Code         string `json:"code" example:"KENTIA-L"`
	Name         string `json:"name" example:"Kentia Palm"`
	SizeSpec     string `json:"size_spec" example:"1.6-1.8m"`
	Description  string `json:"description" example:"Shade tolerant palm for lobbies"`
	DefaultPrice string `json:"default_price" example:"100000"`
	Status       string `json:"status" example:"active" enums:"active,retired"`
	CreatedAt    string `json:"created_at" example:"2025-01-24T12:00:00Z"`
	UpdatedAt    string `json:"updated_at" example:"2025-01-24T12:00:00Z"`
	Version      int    `json:"version" example:"1"`
}

// PlantTypeListResponse represents a plant type list item
// @Description Plant type list item
type PlantTypeListResponse struct {
	ID           string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Code         string `json:"code" example:"KENTIA-L"`
	Name         string `json:"name" example:"Kentia Palm"`
	SizeSpec     string `json:"size_spec" example:"1.6-1.8m"`
	DefaultPrice string `json:"default_price" example:"100000"`
	Status       string `json:"status" example:"active" enums:"active,retired"`
}

// Create godoc
// @ID           createPlantType
// @Summary      Create a plant type
// @Description  Create a new rentable plant type in the catalog
// @Tags         plant-types
// @Accept       json
// @Produce      json
// @Param        request body CreatePlantTypeRequest true "Plant type creation request"
// @Success      201 {object} APIResponse[PlantTypeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /catalog/plant-types [post]
func (h *PlantTypeHandler) Create(c *gin.Context) {
	var req CreatePlantTypeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appReq := catalogapp.CreatePlantTypeRequest{
		Code:        req.Code,
		Name:        req.Name,
		SizeSpec:    req.SizeSpec,
		Description: req.Description,
	}
	if req.DefaultPrice != nil {
		appReq.DefaultPrice = decimalPtr(*req.DefaultPrice)
	}

	plantType, err := h.plantTypeService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, plantType)
}

// GetByID godoc
// @ID           getPlantTypeById
// @Summary      Get plant type by ID
// @Description  Retrieve a plant type by its ID
// @Tags         plant-types
// @Produce      json
// @Param        id path string true "Plant Type ID" format(uuid)
// @Success      200 {object} APIResponse[PlantTypeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /catalog/plant-types/{id} [get]
func (h *PlantTypeHandler) GetByID(c *gin.Context) {
	plantTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plant type ID format")
		return
	}

	plantType, err := h.plantTypeService.GetByID(c.Request.Context(), plantTypeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plantType)
}

// GetByCode godoc
// @ID           getPlantTypeByCode
// @Summary      Get plant type by code
// @Description  Retrieve a plant type by its code
// @Tags         plant-types
// @Produce      json
// @Param        code path string true "Plant Type Code"
// @Success      200 {object} APIResponse[PlantTypeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /catalog/plant-types/code/{code} [get]
func (h *PlantTypeHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Plant type code is required")
		return
	}

	plantType, err := h.plantTypeService.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plantType)
}

// List godoc
// @ID           listPlantTypes
// @Summary      List plant types
// @Description  Retrieve a paginated list of plant types with optional filtering
// @Tags         plant-types
// @Produce      json
// @Param        search query string false "Search term (name, code)"
// @Param        status query string false "Plant type status" Enums(active, retired)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(desc)
// @Success      200 {object} APIResponse[[]PlantTypeListResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /catalog/plant-types [get]
func (h *PlantTypeHandler) List(c *gin.Context) {
	var filter catalogapp.PlantTypeListFilter
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

	plantTypes, total, err := h.plantTypeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, plantTypes, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updatePlantType
// @Summary      Update a plant type
// @Description  Update an existing plant type. The default price only affects lines added after the change; existing contract lines keep their snapshotted price.
// @Tags         plant-types
// @Accept       json
// @Produce      json
// @Param        id path string true "Plant Type ID" format(uuid)
// @Param        request body UpdatePlantTypeRequest true "Plant type update request"
// @Success      200 {object} APIResponse[PlantTypeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /catalog/plant-types/{id} [put]
func (h *PlantTypeHandler) Update(c *gin.Context) {
	plantTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plant type ID format")
		return
	}

	var req UpdatePlantTypeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appReq := catalogapp.UpdatePlantTypeRequest{
		Name:        req.Name,
		SizeSpec:    req.SizeSpec,
		Description: req.Description,
	}
	if req.DefaultPrice != nil {
		appReq.DefaultPrice = decimalPtr(*req.DefaultPrice)
	}

	plantType, err := h.plantTypeService.Update(c.Request.Context(), plantTypeID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plantType)
}

// Retire godoc
// @ID           retirePlantType
// @Summary      Retire a plant type
// @Description  Take a plant type out of the rentable catalog. Existing contract lines are unaffected.
// @Tags         plant-types
// @Produce      json
// @Param        id path string true "Plant Type ID" format(uuid)
// @Success      200 {object} APIResponse[PlantTypeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /catalog/plant-types/{id}/retire [post]
func (h *PlantTypeHandler) Retire(c *gin.Context) {
	plantTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plant type ID format")
		return
	}

	plantType, err := h.plantTypeService.Retire(c.Request.Context(), plantTypeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plantType)
}

// Reinstate godoc
// @ID           reinstatePlantType
// @Summary      Reinstate a retired plant type
// @Description  Bring a retired plant type back into the rentable catalog
// @Tags         plant-types
// @Produce      json
// @Param        id path string true "Plant Type ID" format(uuid)
// @Success      200 {object} APIResponse[PlantTypeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /catalog/plant-types/{id}/reinstate [post]
func (h *PlantTypeHandler) Reinstate(c *gin.Context) {
	plantTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plant type ID format")
		return
	}

	plantType, err := h.plantTypeService.Reinstate(c.Request.Context(), plantTypeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plantType)
}
