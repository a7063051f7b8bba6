package models

import (
	"github.com/plantrent/backend/internal/domain/directory"
	"github.com/plantrent/backend/internal/domain/shared"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AggregateModel
	Code           string                   `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string                   `gorm:"type:varchar(200);not null"`
	NormalizedName string                   `gorm:"type:varchar(200);not null;index"`
	Phone          string                   `gorm:"type:varchar(50);index"`
	Email          string                   `gorm:"type:varchar(200);index"`
	Address        string                   `gorm:"type:text"`
	District       string                   `gorm:"type:varchar(100);index"`
	Status         directory.CustomerStatus `gorm:"type:varchar(20);not null;default:'lead'"`
	Notes          string                   `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *directory.Customer {
	return &directory.Customer{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version:   m.Version,
			CreatedBy: m.CreatedBy,
		},
		Code:           m.Code,
		Name:           m.Name,
		NormalizedName: m.NormalizedName,
		Phone:          m.Phone,
		Email:          m.Email,
		Address:        m.Address,
		District:       m.District,
		Status:         m.Status,
		Notes:          m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *directory.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.NormalizedName = c.NormalizedName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.District = c.District
	m.Status = c.Status
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *directory.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
