package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/catalog"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPlantTypeRepository implements PlantTypeRepository using GORM
type GormPlantTypeRepository struct {
	db *gorm.DB
}

// NewGormPlantTypeRepository creates a new GormPlantTypeRepository
func NewGormPlantTypeRepository(db *gorm.DB) *GormPlantTypeRepository {
	return &GormPlantTypeRepository{db: db}
}

// FindByID finds a plant type by its ID
func (r *GormPlantTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.PlantType, error) {
	var model models.PlantTypeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a plant type by its code
func (r *GormPlantTypeRepository) FindByCode(ctx context.Context, code string) (*catalog.PlantType, error) {
	var model models.PlantTypeModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all plant types matching the filter
func (r *GormPlantTypeRepository) FindAll(ctx context.Context, filter catalog.PlantTypeFilter) ([]catalog.PlantType, error) {
	var plantTypeModels []models.PlantTypeModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PlantTypeModel{}), filter)

	if err := query.Find(&plantTypeModels).Error; err != nil {
		return nil, err
	}

	plantTypes := make([]catalog.PlantType, len(plantTypeModels))
	for i, model := range plantTypeModels {
		plantTypes[i] = *model.ToDomain()
	}
	return plantTypes, nil
}

// FindByIDs finds multiple plant types by their IDs
func (r *GormPlantTypeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.PlantType, error) {
	if len(ids) == 0 {
		return []catalog.PlantType{}, nil
	}

	var plantTypeModels []models.PlantTypeModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&plantTypeModels).Error; err != nil {
		return nil, err
	}

	plantTypes := make([]catalog.PlantType, len(plantTypeModels))
	for i, model := range plantTypeModels {
		plantTypes[i] = *model.ToDomain()
	}
	return plantTypes, nil
}

// Save creates or updates a plant type
func (r *GormPlantTypeRepository) Save(ctx context.Context, plantType *catalog.PlantType) error {
	model := models.PlantTypeModelFromDomain(plantType)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts plant types matching the filter
func (r *GormPlantTypeRepository) Count(ctx context.Context, filter catalog.PlantTypeFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PlantTypeModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a plant type with the given code exists
func (r *GormPlantTypeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PlantTypeModel{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormPlantTypeRepository) applyFilter(query *gorm.DB, filter catalog.PlantTypeFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply pagination
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Apply ordering with whitelist validation to prevent SQL injection
	if filter.OrderBy != "" {
		sortField := ValidateSortField(filter.OrderBy, PlantTypeSortFields, "")
		if sortField != "" {
			sortOrder := ValidateSortOrder(filter.OrderDir)
			query = query.Order(sortField + " " + sortOrder)
		} else {
			query = query.Order("code ASC")
		}
	} else {
		// Default ordering
		query = query.Order("code ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPlantTypeRepository) applyFilterWithoutPagination(query *gorm.DB, filter catalog.PlantTypeFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		codePattern := "%" + strings.ToUpper(filter.Search) + "%"
		query = query.Where("name ILIKE ? OR code LIKE ?", searchPattern, codePattern)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	return query
}

// Ensure GormPlantTypeRepository implements PlantTypeRepository
var _ catalog.PlantTypeRepository = (*GormPlantTypeRepository)(nil)
