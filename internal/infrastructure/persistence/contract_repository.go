package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/contract"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract by its ID
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*contract.RentalContract, error) {
	var model models.RentalContractModel
	if err := r.db.WithContext(ctx).
		Preload("Items", itemLoadOrder).
		Preload("Items.Exchanges", exchangeLoadOrder).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a contract by its contract number
func (r *GormContractRepository) FindByNumber(ctx context.Context, contractNumber string) (*contract.RentalContract, error) {
	var model models.RentalContractModel
	if err := r.db.WithContext(ctx).
		Preload("Items", itemLoadOrder).
		Preload("Items.Exchanges", exchangeLoadOrder).
		Where("contract_number = ?", contractNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all contracts matching the filter
func (r *GormContractRepository) FindAll(ctx context.Context, filter contract.ContractFilter) ([]contract.RentalContract, error) {
	var contractModels []models.RentalContractModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.RentalContractModel{}), filter)

	if err := query.
		Preload("Items", itemLoadOrder).
		Preload("Items.Exchanges", exchangeLoadOrder).
		Find(&contractModels).Error; err != nil {
		return nil, err
	}

	contracts := make([]contract.RentalContract, len(contractModels))
	for i, model := range contractModels {
		contracts[i] = *model.ToDomain()
	}
	return contracts, nil
}

// FindByCustomerID finds every non-draft contract for a customer. The
// statement run reads plant placements from these, so drafts stay invisible.
func (r *GormContractRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]contract.RentalContract, error) {
	var contractModels []models.RentalContractModel
	if err := r.db.WithContext(ctx).
		Preload("Items", itemLoadOrder).
		Preload("Items.Exchanges", exchangeLoadOrder).
		Where("customer_id = ? AND status <> ?", customerID, contract.ContractStatusDraft).
		Order("starts_on ASC").
		Find(&contractModels).Error; err != nil {
		return nil, err
	}

	contracts := make([]contract.RentalContract, len(contractModels))
	for i, model := range contractModels {
		contracts[i] = *model.ToDomain()
	}
	return contracts, nil
}

// Save creates or updates a contract with its items and exchanges
func (r *GormContractRepository) Save(ctx context.Context, c *contract.RentalContract) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.RentalContractModelFromDomain(c)

		// Save the contract without auto-saving associations
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}

		// Handle items: delete removed items and save/update existing ones
		if c.ID != uuid.Nil {
			currentItemIDs := make([]uuid.UUID, len(c.Items))
			for i, item := range c.Items {
				currentItemIDs[i] = item.ID
			}

			// Collect stale item IDs so their exchanges can be removed first
			var staleItems []models.ContractItemModel
			staleQuery := tx.Select("id").Where("contract_id = ?", c.ID)
			if len(currentItemIDs) > 0 {
				staleQuery = staleQuery.Where("id NOT IN ?", currentItemIDs)
			}
			if err := staleQuery.Find(&staleItems).Error; err != nil {
				return err
			}

			if len(staleItems) > 0 {
				staleIDs := make([]uuid.UUID, len(staleItems))
				for i, item := range staleItems {
					staleIDs[i] = item.ID
				}
				if err := tx.Where("contract_item_id IN ?", staleIDs).
					Delete(&models.PlantExchangeModel{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", staleIDs).
					Delete(&models.ContractItemModel{}).Error; err != nil {
					return err
				}
			}

			// Save/update remaining items and their exchanges
			for i := range c.Items {
				c.Items[i].ContractID = c.ID
				itemModel := models.ContractItemModelFromDomain(&c.Items[i])
				if err := tx.Omit("Exchanges").Save(itemModel).Error; err != nil {
					return err
				}

				// Exchanges are append-only, no orphan pass needed
				for j := range c.Items[i].Exchanges {
					c.Items[i].Exchanges[j].ContractItemID = c.Items[i].ID
					exchangeModel := models.PlantExchangeModelFromDomain(&c.Items[i].Exchanges[j])
					if err := tx.Save(exchangeModel).Error; err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}

// Count counts contracts matching the filter
func (r *GormContractRepository) Count(ctx context.Context, filter contract.ContractFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.RentalContractModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNumber checks if a contract with the given number exists
func (r *GormContractRepository) ExistsByNumber(ctx context.Context, contractNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RentalContractModel{}).
		Where("contract_number = ?", contractNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormContractRepository) applyFilter(query *gorm.DB, filter contract.ContractFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply pagination
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Apply ordering with whitelist validation to prevent SQL injection
	if filter.OrderBy != "" {
		sortField := ValidateSortField(filter.OrderBy, ContractSortFields, "")
		if sortField != "" {
			sortOrder := ValidateSortOrder(filter.OrderDir)
			query = query.Order(sortField + " " + sortOrder)
		} else {
			query = query.Order("created_at DESC")
		}
	} else {
		// Default ordering
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormContractRepository) applyFilterWithoutPagination(query *gorm.DB, filter contract.ContractFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("contract_number ILIKE ? OR customer_name ILIKE ?", searchPattern, searchPattern)
	}

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	return query
}

// itemLoadOrder keeps contract lines in placement order so statements list
// plants the way they were added
func itemLoadOrder(db *gorm.DB) *gorm.DB {
	return db.Order("contract_items.effective_from ASC, contract_items.created_at ASC")
}

// exchangeLoadOrder keeps exchange history chronological; QuantityOn relies
// on CreatedAt to break same-day ties
func exchangeLoadOrder(db *gorm.DB) *gorm.DB {
	return db.Order("plant_exchanges.exchanged_on ASC, plant_exchanges.created_at ASC")
}

// Ensure GormContractRepository implements ContractRepository
var _ contract.ContractRepository = (*GormContractRepository)(nil)
