package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/catalog"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlantTypeRepository is a mock implementation of catalog.PlantTypeRepository
type MockPlantTypeRepository struct {
	mock.Mock
}

func (m *MockPlantTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.PlantType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PlantType), args.Error(1)
}

func (m *MockPlantTypeRepository) FindByCode(ctx context.Context, code string) (*catalog.PlantType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PlantType), args.Error(1)
}

func (m *MockPlantTypeRepository) FindAll(ctx context.Context, filter catalog.PlantTypeFilter) ([]catalog.PlantType, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.PlantType), args.Error(1)
}

func (m *MockPlantTypeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.PlantType, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.PlantType), args.Error(1)
}

func (m *MockPlantTypeRepository) Save(ctx context.Context, plantType *catalog.PlantType) error {
	args := m.Called(ctx, plantType)
	return args.Error(0)
}

func (m *MockPlantTypeRepository) Count(ctx context.Context, filter catalog.PlantTypeFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlantTypeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// Verify interface compliance
var _ catalog.PlantTypeRepository = (*MockPlantTypeRepository)(nil)

func createTestPlantType(t *testing.T) *catalog.PlantType {
	t.Helper()
	plantType, err := catalog.NewPlantType("KT-M", "Kim Tiền", "M")
	if err != nil {
		t.Fatalf("createTestPlantType: %v", err)
	}
	plantType.ClearDomainEvents()
	return plantType
}

func TestPlantTypeService_Create_Success(t *testing.T) {
	mockRepo := new(MockPlantTypeRepository)
	service := NewPlantTypeService(mockRepo)

	ctx := context.Background()
	price := decimal.NewFromInt(100000)
	req := CreatePlantTypeRequest{
		Code:         "kt-m",
		Name:         "Kim Tiền",
		SizeSpec:     "M",
		DefaultPrice: &price,
	}

	mockRepo.On("ExistsByCode", ctx, req.Code).Return(false, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*catalog.PlantType")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "KT-M", result.Code)
	assert.Equal(t, "Kim Tiền", result.Name)
	assert.Equal(t, "M", result.SizeSpec)
	assert.True(t, result.DefaultPrice.Equal(price))
	assert.Equal(t, "active", result.Status)
	mockRepo.AssertExpectations(t)
}

func TestPlantTypeService_Create_DuplicateCode(t *testing.T) {
	mockRepo := new(MockPlantTypeRepository)
	service := NewPlantTypeService(mockRepo)

	ctx := context.Background()
	req := CreatePlantTypeRequest{Code: "KT-M", Name: "Kim Tiền"}

	mockRepo.On("ExistsByCode", ctx, req.Code).Return(true, nil)

	result, err := service.Create(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPlantTypeService_Create_NegativePrice(t *testing.T) {
	mockRepo := new(MockPlantTypeRepository)
	service := NewPlantTypeService(mockRepo)

	ctx := context.Background()
	price := decimal.NewFromInt(-5000)
	req := CreatePlantTypeRequest{Code: "KT-M", Name: "Kim Tiền", DefaultPrice: &price}

	mockRepo.On("ExistsByCode", ctx, req.Code).Return(false, nil)

	result, err := service.Create(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPlantTypeService_Update_Success(t *testing.T) {
	mockRepo := new(MockPlantTypeRepository)
	service := NewPlantTypeService(mockRepo)

	ctx := context.Background()
	plantType := createTestPlantType(t)
	newName := "Kim Tiền Lớn"
	newPrice := decimal.NewFromInt(150000)

	mockRepo.On("FindByID", ctx, plantType.ID).Return(plantType, nil)
	mockRepo.On("Save", ctx, plantType).Return(nil)

	result, err := service.Update(ctx, plantType.ID, UpdatePlantTypeRequest{
		Name:         &newName,
		DefaultPrice: &newPrice,
	})

	assert.NoError(t, err)
	assert.Equal(t, newName, result.Name)
	assert.Equal(t, "M", result.SizeSpec)
	assert.True(t, result.DefaultPrice.Equal(newPrice))
	mockRepo.AssertExpectations(t)
}

func TestPlantTypeService_Retire_Success(t *testing.T) {
	mockRepo := new(MockPlantTypeRepository)
	service := NewPlantTypeService(mockRepo)

	ctx := context.Background()
	plantType := createTestPlantType(t)

	mockRepo.On("FindByID", ctx, plantType.ID).Return(plantType, nil)
	mockRepo.On("Save", ctx, plantType).Return(nil)

	result, err := service.Retire(ctx, plantType.ID)

	assert.NoError(t, err)
	assert.Equal(t, "retired", result.Status)
	mockRepo.AssertExpectations(t)
}

func TestPlantTypeService_Retire_AlreadyRetired(t *testing.T) {
	mockRepo := new(MockPlantTypeRepository)
	service := NewPlantTypeService(mockRepo)

	ctx := context.Background()
	plantType := createTestPlantType(t)
	if err := plantType.Retire(); err != nil {
		t.Fatalf("Retire: %v", err)
	}

	mockRepo.On("FindByID", ctx, plantType.ID).Return(plantType, nil)

	result, err := service.Retire(ctx, plantType.ID)

	assert.Error(t, err)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPlantTypeService_List_Success(t *testing.T) {
	mockRepo := new(MockPlantTypeRepository)
	service := NewPlantTypeService(mockRepo)

	ctx := context.Background()
	plantType := createTestPlantType(t)

	mockRepo.On("FindAll", ctx, mock.MatchedBy(func(filter catalog.PlantTypeFilter) bool {
		return filter.Page == 1 && filter.PageSize == 20 && filter.OrderBy == "code"
	})).Return([]catalog.PlantType{*plantType}, nil)
	mockRepo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

	results, total, err := service.List(ctx, PlantTypeListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, results, 1)
	assert.Equal(t, "KT-M", results[0].Code)
	mockRepo.AssertExpectations(t)
}
