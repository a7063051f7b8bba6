package directory

import (
	"regexp"
	"strings"
	"time"

	"github.com/plantrent/backend/internal/domain/shared"
)

// CustomerStatus represents where a customer sits in the rental relationship
type CustomerStatus string

const (
	CustomerStatusLead       CustomerStatus = "lead"       // Prospect, no active rentals yet
	CustomerStatusActive     CustomerStatus = "active"     // Renting, included in statement runs
	CustomerStatusInactive   CustomerStatus = "inactive"   // Paused, kept for reactivation
	CustomerStatusTerminated CustomerStatus = "terminated" // Relationship closed
)

// IsValid returns true for a known status value
func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusLead, CustomerStatusActive, CustomerStatusInactive, CustomerStatusTerminated:
		return true
	}
	return false
}

// String returns the string representation of CustomerStatus
func (s CustomerStatus) String() string {
	return string(s)
}

// CanTransitionTo returns true if the status change is allowed
func (s CustomerStatus) CanTransitionTo(target CustomerStatus) bool {
	switch s {
	case CustomerStatusLead:
		return target == CustomerStatusActive || target == CustomerStatusTerminated
	case CustomerStatusActive:
		return target == CustomerStatusInactive || target == CustomerStatusTerminated
	case CustomerStatusInactive:
		return target == CustomerStatusActive || target == CustomerStatusTerminated
	}
	return false
}

// Customer represents a renting business or household in the directory context.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseAggregateRoot
	Code           string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string         `gorm:"type:varchar(200);not null"`
	NormalizedName string         `gorm:"type:varchar(200);not null;index"` // Diacritic-folded, for search
	Phone          string         `gorm:"type:varchar(50);index"`
	Email          string         `gorm:"type:varchar(200);index"`
	Address        string         `gorm:"type:text"`
	District       string         `gorm:"type:varchar(100);index"` // Delivery/maintenance routing area
	Status         CustomerStatus `gorm:"type:varchar(20);not null;default:'lead'"`
	Notes          string         `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer in the lead status
func NewCustomer(code, name string) (*Customer, error) {
	if err := validateCustomerCode(code); err != nil {
		return nil, err
	}
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		NormalizedName:    NormalizeName(name),
		Status:            CustomerStatusLead,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// Update updates the customer's display name, keeping the search key in sync
func (c *Customer) Update(name string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = name
	c.NormalizedName = NormalizeName(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(phone, email string) error {
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAddress sets the customer's street address and routing district
func (c *Customer) SetAddress(address, district string) error {
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	if district != "" && len(district) > 100 {
		return shared.NewDomainError("INVALID_DISTRICT", "District cannot exceed 100 characters")
	}

	c.Address = address
	c.District = district
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetNotes sets the customer's notes
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// TransitionTo moves the customer to a new status following the allowed edges
func (c *Customer) TransitionTo(target CustomerStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown customer status")
	}
	if target == c.Status {
		return shared.NewDomainError("INVALID_STATE", "Customer is already "+string(target))
	}
	if !c.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", "Cannot move customer from "+string(c.Status)+" to "+string(target))
	}

	oldStatus := c.Status
	c.Status = target
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerStatusChangedEvent(c, oldStatus, target))

	return nil
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// IsTerminated returns true if the relationship is closed
func (c *Customer) IsTerminated() bool {
	return c.Status == CustomerStatusTerminated
}

// IsBillable returns true if the customer participates in statement runs
func (c *Customer) IsBillable() bool {
	return c.Status == CustomerStatusActive
}

// Validation functions

func validateCustomerCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Customer code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Customer code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Customer code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
