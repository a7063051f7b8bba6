package directory

import (
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/directory"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Code     string `json:"code" binding:"required,min=1,max=50"`
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Phone    string `json:"phone" binding:"max=50"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
	Address  string `json:"address" binding:"max=500"`
	District string `json:"district" binding:"max=100"`
	Notes    string `json:"notes"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Email    *string `json:"email" binding:"omitempty,email,max=200"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
	District *string `json:"district" binding:"omitempty,max=100"`
	Notes    *string `json:"notes"`
}

// TransitionCustomerRequest represents a request to move a customer to a new status
type TransitionCustomerRequest struct {
	Status string `json:"status" binding:"required,oneof=lead active inactive terminated"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalized_name"`
	Status         string    `json:"status"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	District       string    `json:"district"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Version        int       `json:"version"`
}

// CustomerListResponse represents a list item for customers
type CustomerListResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Phone     string    `json:"phone"`
	District  string    `json:"district"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListFilter represents filter options for customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=lead active inactive terminated"`
	District string `form:"district"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *directory.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		NormalizedName: c.NormalizedName,
		Status:         string(c.Status),
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		District:       c.District,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		Version:        c.Version,
	}
}

// ToCustomerListResponse converts a domain Customer to CustomerListResponse
func ToCustomerListResponse(c *directory.Customer) CustomerListResponse {
	return CustomerListResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Status:    string(c.Status),
		Phone:     c.Phone,
		District:  c.District,
		CreatedAt: c.CreatedAt,
	}
}

// ToCustomerListResponses converts a slice of domain Customers to CustomerListResponses
func ToCustomerListResponses(customers []directory.Customer) []CustomerListResponse {
	responses := make([]CustomerListResponse, len(customers))
	for i, c := range customers {
		responses[i] = ToCustomerListResponse(&c)
	}
	return responses
}
