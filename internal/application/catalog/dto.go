package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreatePlantTypeRequest represents a request to create a new plant type
type CreatePlantTypeRequest struct {
	Code         string           `json:"code" binding:"required,min=1,max=50"`
	Name         string           `json:"name" binding:"required,min=1,max=200"`
	SizeSpec     string           `json:"size_spec" binding:"max=50"`
	Description  string           `json:"description" binding:"max=1000"`
	DefaultPrice *decimal.Decimal `json:"default_price"`
}

// UpdatePlantTypeRequest represents a request to update a plant type
type UpdatePlantTypeRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=200"`
	SizeSpec     *string          `json:"size_spec" binding:"omitempty,max=50"`
	Description  *string          `json:"description" binding:"omitempty,max=1000"`
	DefaultPrice *decimal.Decimal `json:"default_price"`
}

// PlantTypeResponse represents a plant type in API responses
type PlantTypeResponse struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	SizeSpec     string          `json:"size_spec"`
	Description  string          `json:"description"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

// PlantTypeListResponse represents a list item for plant types
type PlantTypeListResponse struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	SizeSpec     string          `json:"size_spec"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	Status       string          `json:"status"`
}

// PlantTypeListFilter represents filter options for plant type list
type PlantTypeListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active retired"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPlantTypeResponse converts a domain PlantType to PlantTypeResponse
func ToPlantTypeResponse(p *catalog.PlantType) PlantTypeResponse {
	return PlantTypeResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		SizeSpec:     p.SizeSpec,
		Description:  p.Description,
		DefaultPrice: p.DefaultPrice,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Version:      p.Version,
	}
}

// ToPlantTypeListResponse converts a domain PlantType to PlantTypeListResponse
func ToPlantTypeListResponse(p *catalog.PlantType) PlantTypeListResponse {
	return PlantTypeListResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		SizeSpec:     p.SizeSpec,
		DefaultPrice: p.DefaultPrice,
		Status:       string(p.Status),
	}
}

// ToPlantTypeListResponses converts a slice of domain PlantTypes to PlantTypeListResponses
func ToPlantTypeListResponses(plantTypes []catalog.PlantType) []PlantTypeListResponse {
	responses := make([]PlantTypeListResponse, len(plantTypes))
	for i, p := range plantTypes {
		responses[i] = ToPlantTypeListResponse(&p)
	}
	return responses
}
