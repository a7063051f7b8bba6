package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	directoryapp "github.com/plantrent/backend/internal/application/directory"
	"github.com/plantrent/backend/internal/domain/directory"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository implements directory.CustomerRepository for testing
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByCode(ctx context.Context, code string) (*directory.Customer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter directory.CustomerFilter) ([]directory.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]directory.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindBillable(ctx context.Context) ([]directory.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]directory.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]directory.Customer, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]directory.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *directory.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter directory.CustomerFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ directory.CustomerRepository = (*MockCustomerRepository)(nil)

// Test helpers

func setupCustomerTestRouter() (*gin.Engine, *MockCustomerRepository, *CustomerHandler) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockCustomerRepository)
	service := directoryapp.NewCustomerService(mockRepo, &capturingPublisher{})
	handler := NewCustomerHandler(service)

	router := gin.New()
	return router, mockRepo, handler
}

// Tests

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("should create customer successfully", func(t *testing.T) {
		router, mockRepo, handler := setupCustomerTestRouter()

		router.POST("/customers", handler.Create)

		mockRepo.On("ExistsByCode", mock.Anything, "KH-0042").Return(false, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*directory.Customer")).
			Return(nil)

		reqBody := CreateCustomerRequest{
			Code:     "KH-0042",
			Name:     "Saigon Riverside Hotel",
			Phone:    "+84 28 3822 0033",
			District: "District 1",
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response["success"].(bool))

		data := response["data"].(map[string]interface{})
		assert.Equal(t, "KH-0042", data["code"])
		assert.Equal(t, "lead", data["status"])

		mockRepo.AssertExpectations(t)
	})

	t.Run("should conflict on duplicate code", func(t *testing.T) {
		router, mockRepo, handler := setupCustomerTestRouter()

		router.POST("/customers", handler.Create)

		mockRepo.On("ExistsByCode", mock.Anything, "KH-0042").Return(true, nil)

		reqBody := CreateCustomerRequest{
			Code: "KH-0042",
			Name: "Saigon Riverside Hotel",
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("should return error for missing required fields", func(t *testing.T) {
		router, _, handler := setupCustomerTestRouter()

		router.POST("/customers", handler.Create)

		reqBody := map[string]interface{}{
			"code": "KH-0042",
			// Missing name
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	t.Run("should get customer by ID", func(t *testing.T) {
		router, mockRepo, handler := setupCustomerTestRouter()
		customer := billableCustomer(t)

		router.GET("/customers/:id", handler.GetByID)

		mockRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		req, _ := http.NewRequest(http.MethodGet, "/customers/"+customer.ID.String(), nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response["success"].(bool))

		data := response["data"].(map[string]interface{})
		assert.Equal(t, customer.ID.String(), data["id"])
		assert.Equal(t, "active", data["status"])

		mockRepo.AssertExpectations(t)
	})

	t.Run("should return 404 for non-existent customer", func(t *testing.T) {
		router, mockRepo, handler := setupCustomerTestRouter()
		customerID := uuid.New()

		router.GET("/customers/:id", handler.GetByID)

		mockRepo.On("FindByID", mock.Anything, customerID).Return(nil, shared.ErrNotFound)

		req, _ := http.NewRequest(http.MethodGet, "/customers/"+customerID.String(), nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return error for invalid customer ID", func(t *testing.T) {
		router, _, handler := setupCustomerTestRouter()

		router.GET("/customers/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/customers/invalid-uuid", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerHandler_GetByCode(t *testing.T) {
	t.Run("should get customer by code", func(t *testing.T) {
		router, mockRepo, handler := setupCustomerTestRouter()
		customer := billableCustomer(t)

		router.GET("/customers/code/:code", handler.GetByCode)

		mockRepo.On("FindByCode", mock.Anything, "KH001").Return(customer, nil)

		req, _ := http.NewRequest(http.MethodGet, "/customers/code/KH001", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)

		data := response["data"].(map[string]interface{})
		assert.Equal(t, "KH001", data["code"])

		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerHandler_List(t *testing.T) {
	t.Run("should list customers with pagination", func(t *testing.T) {
		router, mockRepo, handler := setupCustomerTestRouter()
		customer := billableCustomer(t)

		router.GET("/customers", handler.List)

		mockRepo.On("FindAll", mock.Anything, mock.AnythingOfType("directory.CustomerFilter")).
			Return([]directory.Customer{*customer}, nil)
		mockRepo.On("Count", mock.Anything, mock.AnythingOfType("directory.CustomerFilter")).
			Return(int64(1), nil)

		req, _ := http.NewRequest(http.MethodGet, "/customers?status=active", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response["success"].(bool))

		meta := response["meta"].(map[string]interface{})
		assert.Equal(t, float64(1), meta["total"])

		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerHandler_Update(t *testing.T) {
	t.Run("should update customer fields", func(t *testing.T) {
		router, mockRepo, handler := setupCustomerTestRouter()
		customer := billableCustomer(t)
		phone := "+84 28 3999 1100"

		router.PUT("/customers/:id", handler.Update)

		mockRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*directory.Customer")).
			Return(nil)

		reqBody := UpdateCustomerRequest{Phone: &phone}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPut, "/customers/"+customer.ID.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)

		data := response["data"].(map[string]interface{})
		assert.Equal(t, phone, data["phone"])

		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerHandler_Transition(t *testing.T) {
	t.Run("should transition customer status", func(t *testing.T) {
		router, mockRepo, handler := setupCustomerTestRouter()
		customer := billableCustomer(t)

		router.POST("/customers/:id/transition", handler.Transition)

		mockRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*directory.Customer")).
			Return(nil)

		reqBody := TransitionCustomerRequest{Status: "inactive"}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/customers/"+customer.ID.String()+"/transition", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)

		data := response["data"].(map[string]interface{})
		assert.Equal(t, "inactive", data["status"])

		mockRepo.AssertExpectations(t)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		router, _, handler := setupCustomerTestRouter()
		customerID := uuid.New()

		router.POST("/customers/:id/transition", handler.Transition)

		reqBody := map[string]interface{}{"status": "archived"}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/customers/"+customerID.String()+"/transition", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
