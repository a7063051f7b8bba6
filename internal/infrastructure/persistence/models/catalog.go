package models

import (
	"github.com/plantrent/backend/internal/domain/catalog"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PlantTypeModel is the persistence model for the PlantType domain entity.
type PlantTypeModel struct {
	AggregateModel
	Code         string                  `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string                  `gorm:"type:varchar(200);not null"`
	SizeSpec     string                  `gorm:"type:varchar(50)"`
	Description  string                  `gorm:"type:text"`
	DefaultPrice decimal.Decimal         `gorm:"type:decimal(18,0);not null;default:0"`
	Status       catalog.PlantTypeStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (PlantTypeModel) TableName() string {
	return "plant_types"
}

// ToDomain converts the persistence model to a domain PlantType entity.
func (m *PlantTypeModel) ToDomain() *catalog.PlantType {
	return &catalog.PlantType{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version:   m.Version,
			CreatedBy: m.CreatedBy,
		},
		Code:         m.Code,
		Name:         m.Name,
		SizeSpec:     m.SizeSpec,
		Description:  m.Description,
		DefaultPrice: m.DefaultPrice,
		Status:       m.Status,
	}
}

// FromDomain populates the persistence model from a domain PlantType entity.
func (m *PlantTypeModel) FromDomain(p *catalog.PlantType) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Code = p.Code
	m.Name = p.Name
	m.SizeSpec = p.SizeSpec
	m.Description = p.Description
	m.DefaultPrice = p.DefaultPrice
	m.Status = p.Status
}

// PlantTypeModelFromDomain creates a new persistence model from a domain PlantType entity.
func PlantTypeModelFromDomain(p *catalog.PlantType) *PlantTypeModel {
	m := &PlantTypeModel{}
	m.FromDomain(p)
	return m
}
