package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/catalog"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/domain/shared/valueobject"
)

// PlantTypeService handles plant catalog operations
type PlantTypeService struct {
	plantTypeRepo catalog.PlantTypeRepository
}

// NewPlantTypeService creates a new PlantTypeService
func NewPlantTypeService(plantTypeRepo catalog.PlantTypeRepository) *PlantTypeService {
	return &PlantTypeService{
		plantTypeRepo: plantTypeRepo,
	}
}

// Create creates a new plant type
func (s *PlantTypeService) Create(ctx context.Context, req CreatePlantTypeRequest) (*PlantTypeResponse, error) {
	exists, err := s.plantTypeRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Plant type with this code already exists")
	}

	plantType, err := catalog.NewPlantType(req.Code, req.Name, req.SizeSpec)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := plantType.Update(req.Name, req.SizeSpec, req.Description); err != nil {
			return nil, err
		}
	}
	if req.DefaultPrice != nil {
		if err := plantType.SetDefaultPrice(valueobject.NewMoneyVND(*req.DefaultPrice)); err != nil {
			return nil, err
		}
	}

	if err := s.plantTypeRepo.Save(ctx, plantType); err != nil {
		return nil, err
	}

	response := ToPlantTypeResponse(plantType)
	return &response, nil
}

// GetByID retrieves a plant type by ID
func (s *PlantTypeService) GetByID(ctx context.Context, plantTypeID uuid.UUID) (*PlantTypeResponse, error) {
	plantType, err := s.plantTypeRepo.FindByID(ctx, plantTypeID)
	if err != nil {
		return nil, err
	}

	response := ToPlantTypeResponse(plantType)
	return &response, nil
}

// GetByCode retrieves a plant type by code
func (s *PlantTypeService) GetByCode(ctx context.Context, code string) (*PlantTypeResponse, error) {
	plantType, err := s.plantTypeRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToPlantTypeResponse(plantType)
	return &response, nil
}

// List retrieves a list of plant types with filtering and pagination
func (s *PlantTypeService) List(ctx context.Context, filter PlantTypeListFilter) ([]PlantTypeListResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "code"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := catalog.PlantTypeFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
	}
	if filter.Status != "" {
		status := catalog.PlantTypeStatus(filter.Status)
		domainFilter.Status = &status
	}

	plantTypes, err := s.plantTypeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.plantTypeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPlantTypeListResponses(plantTypes), total, nil
}

// Update updates a plant type
func (s *PlantTypeService) Update(ctx context.Context, plantTypeID uuid.UUID, req UpdatePlantTypeRequest) (*PlantTypeResponse, error) {
	plantType, err := s.plantTypeRepo.FindByID(ctx, plantTypeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.SizeSpec != nil || req.Description != nil {
		name := plantType.Name
		sizeSpec := plantType.SizeSpec
		description := plantType.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.SizeSpec != nil {
			sizeSpec = *req.SizeSpec
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := plantType.Update(name, sizeSpec, description); err != nil {
			return nil, err
		}
	}

	if req.DefaultPrice != nil {
		if err := plantType.SetDefaultPrice(valueobject.NewMoneyVND(*req.DefaultPrice)); err != nil {
			return nil, err
		}
	}

	if err := s.plantTypeRepo.Save(ctx, plantType); err != nil {
		return nil, err
	}

	response := ToPlantTypeResponse(plantType)
	return &response, nil
}

// Retire takes a plant type off the catalog for new contracts
func (s *PlantTypeService) Retire(ctx context.Context, plantTypeID uuid.UUID) (*PlantTypeResponse, error) {
	plantType, err := s.plantTypeRepo.FindByID(ctx, plantTypeID)
	if err != nil {
		return nil, err
	}

	if err := plantType.Retire(); err != nil {
		return nil, err
	}

	if err := s.plantTypeRepo.Save(ctx, plantType); err != nil {
		return nil, err
	}

	response := ToPlantTypeResponse(plantType)
	return &response, nil
}

// Reinstate puts a retired plant type back on the catalog
func (s *PlantTypeService) Reinstate(ctx context.Context, plantTypeID uuid.UUID) (*PlantTypeResponse, error) {
	plantType, err := s.plantTypeRepo.FindByID(ctx, plantTypeID)
	if err != nil {
		return nil, err
	}

	if err := plantType.Reinstate(); err != nil {
		return nil, err
	}

	if err := s.plantTypeRepo.Save(ctx, plantType); err != nil {
		return nil, err
	}

	response := ToPlantTypeResponse(plantType)
	return &response, nil
}
