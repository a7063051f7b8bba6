package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/contract"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RentalContractModel is the persistence model for the RentalContract aggregate root.
type RentalContractModel struct {
	AggregateModel
	ContractNumber string                  `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID     uuid.UUID               `gorm:"type:uuid;not null;index"`
	CustomerName   string                  `gorm:"type:varchar(200);not null"`
	Status         contract.ContractStatus `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	StartsOn       time.Time               `gorm:"type:date;not null"`
	EndsOn         *time.Time              `gorm:"type:date"`
	Notes          string                  `gorm:"type:text"`
	Items          []ContractItemModel     `gorm:"foreignKey:ContractID;references:ID"`
	ActivatedAt    *time.Time              `gorm:"index"`
	TerminatedAt   *time.Time
}

// TableName returns the table name for GORM
func (RentalContractModel) TableName() string {
	return "rental_contracts"
}

// ToDomain converts the persistence model to a domain RentalContract entity.
func (m *RentalContractModel) ToDomain() *contract.RentalContract {
	c := &contract.RentalContract{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version:   m.Version,
			CreatedBy: m.CreatedBy,
		},
		ContractNumber: m.ContractNumber,
		CustomerID:     m.CustomerID,
		CustomerName:   m.CustomerName,
		Status:         m.Status,
		StartsOn:       m.StartsOn,
		EndsOn:         m.EndsOn,
		Notes:          m.Notes,
		ActivatedAt:    m.ActivatedAt,
		TerminatedAt:   m.TerminatedAt,
		Items:          make([]contract.ContractItem, len(m.Items)),
	}
	for i, item := range m.Items {
		c.Items[i] = *item.ToDomain()
	}
	return c
}

// FromDomain populates the persistence model from a domain RentalContract entity.
func (m *RentalContractModel) FromDomain(c *contract.RentalContract) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.ContractNumber = c.ContractNumber
	m.CustomerID = c.CustomerID
	m.CustomerName = c.CustomerName
	m.Status = c.Status
	m.StartsOn = c.StartsOn
	m.EndsOn = c.EndsOn
	m.Notes = c.Notes
	m.ActivatedAt = c.ActivatedAt
	m.TerminatedAt = c.TerminatedAt
	m.Items = make([]ContractItemModel, len(c.Items))
	for i, item := range c.Items {
		m.Items[i] = *ContractItemModelFromDomain(&item)
	}
}

// RentalContractModelFromDomain creates a new persistence model from a domain RentalContract entity.
func RentalContractModelFromDomain(c *contract.RentalContract) *RentalContractModel {
	m := &RentalContractModel{}
	m.FromDomain(c)
	return m
}

// ContractItemModel is the persistence model for the ContractItem entity.
type ContractItemModel struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key"`
	ContractID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	PlantTypeID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	PlantName     string               `gorm:"type:varchar(200);not null"`
	SizeSpec      string               `gorm:"type:varchar(50)"`
	Quantity      int                  `gorm:"not null"`
	UnitPrice     decimal.Decimal      `gorm:"type:decimal(18,0);not null"`
	EffectiveFrom time.Time            `gorm:"type:date;not null;index"`
	EffectiveTo   *time.Time           `gorm:"type:date;index"`
	Exchanges     []PlantExchangeModel `gorm:"foreignKey:ContractItemID;references:ID"`
	CreatedAt     time.Time            `gorm:"not null"`
	UpdatedAt     time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ContractItemModel) TableName() string {
	return "contract_items"
}

// ToDomain converts the persistence model to a domain ContractItem entity.
func (m *ContractItemModel) ToDomain() *contract.ContractItem {
	item := &contract.ContractItem{
		ID:            m.ID,
		ContractID:    m.ContractID,
		PlantTypeID:   m.PlantTypeID,
		PlantName:     m.PlantName,
		SizeSpec:      m.SizeSpec,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		EffectiveFrom: m.EffectiveFrom,
		EffectiveTo:   m.EffectiveTo,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Exchanges:     make([]contract.PlantExchange, len(m.Exchanges)),
	}
	for i, ex := range m.Exchanges {
		item.Exchanges[i] = *ex.ToDomain()
	}
	return item
}

// FromDomain populates the persistence model from a domain ContractItem entity.
func (m *ContractItemModel) FromDomain(i *contract.ContractItem) {
	m.ID = i.ID
	m.ContractID = i.ContractID
	m.PlantTypeID = i.PlantTypeID
	m.PlantName = i.PlantName
	m.SizeSpec = i.SizeSpec
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.EffectiveFrom = i.EffectiveFrom
	m.EffectiveTo = i.EffectiveTo
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
	m.Exchanges = make([]PlantExchangeModel, len(i.Exchanges))
	for idx, ex := range i.Exchanges {
		m.Exchanges[idx] = *PlantExchangeModelFromDomain(&ex)
	}
}

// ContractItemModelFromDomain creates a new persistence model from a domain ContractItem entity.
func ContractItemModelFromDomain(i *contract.ContractItem) *ContractItemModel {
	m := &ContractItemModel{}
	m.FromDomain(i)
	return m
}

// PlantExchangeModel is the persistence model for the PlantExchange entity.
type PlantExchangeModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ContractItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	ExchangedOn    time.Time `gorm:"type:date;not null;index"`
	NewQuantity    int       `gorm:"not null"`
	Reason         string    `gorm:"type:varchar(500)"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PlantExchangeModel) TableName() string {
	return "plant_exchanges"
}

// ToDomain converts the persistence model to a domain PlantExchange entity.
func (m *PlantExchangeModel) ToDomain() *contract.PlantExchange {
	return &contract.PlantExchange{
		ID:             m.ID,
		ContractItemID: m.ContractItemID,
		ExchangedOn:    m.ExchangedOn,
		NewQuantity:    m.NewQuantity,
		Reason:         m.Reason,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain PlantExchange entity.
func (m *PlantExchangeModel) FromDomain(e *contract.PlantExchange) {
	m.ID = e.ID
	m.ContractItemID = e.ContractItemID
	m.ExchangedOn = e.ExchangedOn
	m.NewQuantity = e.NewQuantity
	m.Reason = e.Reason
	m.CreatedAt = e.CreatedAt
}

// PlantExchangeModelFromDomain creates a new persistence model from a domain PlantExchange entity.
func PlantExchangeModelFromDomain(e *contract.PlantExchange) *PlantExchangeModel {
	m := &PlantExchangeModel{}
	m.FromDomain(e)
	return m
}
