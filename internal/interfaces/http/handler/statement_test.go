package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/plantrent/backend/internal/application/billing"
	"github.com/plantrent/backend/internal/domain/billing"
	"github.com/plantrent/backend/internal/domain/contract"
	"github.com/plantrent/backend/internal/domain/directory"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStatementRepository implements billing.StatementRepository for testing
type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.MonthlyStatement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.MonthlyStatement), args.Error(1)
}

func (m *MockStatementRepository) FindActiveByPeriod(ctx context.Context, customerID uuid.UUID, year, month int) (*billing.MonthlyStatement, error) {
	args := m.Called(ctx, customerID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.MonthlyStatement), args.Error(1)
}

func (m *MockStatementRepository) FindAll(ctx context.Context, filter billing.StatementFilter) ([]billing.MonthlyStatement, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.MonthlyStatement), args.Error(1)
}

func (m *MockStatementRepository) Count(ctx context.Context, filter billing.StatementFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatementRepository) Create(ctx context.Context, statement *billing.MonthlyStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) Update(ctx context.Context, statement *billing.MonthlyStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) ExistsActive(ctx context.Context, customerID uuid.UUID, year, month int) (bool, error) {
	args := m.Called(ctx, customerID, year, month)
	return args.Bool(0), args.Error(1)
}

// MockAssignmentLedger implements contract.AssignmentLedger for testing
type MockAssignmentLedger struct {
	mock.Mock
}

func (m *MockAssignmentLedger) EffectiveAssignments(ctx context.Context, customerID uuid.UUID, start, end time.Time) ([]contract.Assignment, error) {
	args := m.Called(ctx, customerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contract.Assignment), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ billing.StatementRepository = (*MockStatementRepository)(nil)
	_ contract.AssignmentLedger   = (*MockAssignmentLedger)(nil)
	_ shared.KeyedLocker          = (*fakeLocker)(nil)
	_ shared.EventPublisher       = (*capturingPublisher)(nil)
)

type fakeLocker struct {
	keys []string
}

func (f *fakeLocker) Acquire(_ context.Context, key string) (func(), error) {
	f.keys = append(f.keys, key)
	return func() {}, nil
}

type capturingPublisher struct {
	events []shared.DomainEvent
}

func (p *capturingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

// Test helpers

type statementRouterFixture struct {
	router     *gin.Engine
	statements *MockStatementRepository
	customers  *MockCustomerRepository
	ledger     *MockAssignmentLedger
	handler    *StatementHandler
}

func setupStatementTestRouter() *statementRouterFixture {
	gin.SetMode(gin.TestMode)

	f := &statementRouterFixture{
		statements: new(MockStatementRepository),
		customers:  new(MockCustomerRepository),
		ledger:     new(MockAssignmentLedger),
	}
	service := billingapp.NewStatementService(
		f.statements, f.customers, f.ledger,
		&fakeLocker{}, &capturingPublisher{}, billing.DefaultConfig(),
	)
	f.handler = NewStatementHandler(service)
	f.router = gin.New()
	return f
}

// setJWTContext stores the user identity the way the JWT middleware would
func setJWTContext(c *gin.Context, userID uuid.UUID) {
	c.Set(middleware.JWTUserIDKey, userID.String())
}

func billableCustomer(t *testing.T) *directory.Customer {
	t.Helper()
	customer, err := directory.NewCustomer("KH001", "Công ty TNHH Hoa Mai")
	require.NoError(t, err)
	require.NoError(t, customer.TransitionTo(directory.CustomerStatusActive))
	customer.ClearDomainEvents()
	return customer
}

func rentalAssignments() []contract.Assignment {
	return []contract.Assignment{
		{
			PlantTypeID: uuid.New(),
			PlantName:   "Kim Tiền",
			SizeSpec:    "M",
			Quantity:    3,
			UnitPrice:   decimal.NewFromInt(100000),
		},
	}
}

func draftStatement(t *testing.T, customer *directory.Customer) *billing.MonthlyStatement {
	t.Helper()
	cfg := billing.DefaultConfig()
	period, err := billing.ComputePeriod(2026, 1, cfg.BoundaryDay)
	require.NoError(t, err)
	line, err := billing.NewLineItem(uuid.New(), "Kim Tiền", "M", 3, decimal.NewFromInt(100000))
	require.NoError(t, err)
	statement, err := billing.NewMonthlyStatement(customer.ID, customer.Name, period, []billing.LineItem{line}, cfg)
	require.NoError(t, err)
	statement.ClearDomainEvents()
	return statement
}

func confirmedStatement(t *testing.T, customer *directory.Customer) *billing.MonthlyStatement {
	t.Helper()
	statement := draftStatement(t, customer)
	require.NoError(t, statement.Confirm(uuid.New()))
	statement.ClearDomainEvents()
	return statement
}

// Tests

func TestStatementHandler_Generate(t *testing.T) {
	t.Run("should generate a new statement", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)

		f.router.POST("/billing/statements/generate", f.handler.Generate)

		f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.statements.On("FindActiveByPeriod", mock.Anything, customer.ID, 2026, 1).
			Return(nil, shared.ErrNotFound)
		f.ledger.On("EffectiveAssignments", mock.Anything, customer.ID, mock.Anything, mock.Anything).
			Return(rentalAssignments(), nil)
		f.statements.On("Create", mock.Anything, mock.AnythingOfType("*billing.MonthlyStatement")).
			Return(nil)

		reqBody := GenerateStatementRequest{
			CustomerID: customer.ID.String(),
			Year:       2026,
			Month:      1,
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/generate", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response["success"].(bool))

		data := response["data"].(map[string]interface{})
		assert.Equal(t, "generated", data["outcome"])

		statement := data["statement"].(map[string]interface{})
		assert.Equal(t, "300000", statement["subtotal"])
		assert.Equal(t, "24000", statement["vat_amount"])
		assert.Equal(t, "324000", statement["grand_total"])
		assert.Equal(t, true, statement["needs_confirmation"])

		f.statements.AssertExpectations(t)
		f.customers.AssertExpectations(t)
	})

	t.Run("should keep a confirmed statement untouched", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		existing := confirmedStatement(t, customer)

		f.router.POST("/billing/statements/generate", f.handler.Generate)

		f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.statements.On("FindActiveByPeriod", mock.Anything, customer.ID, 2026, 1).
			Return(existing, nil)

		reqBody := GenerateStatementRequest{
			CustomerID: customer.ID.String(),
			Year:       2026,
			Month:      1,
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/generate", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)

		data := response["data"].(map[string]interface{})
		assert.Equal(t, "confirmed_kept", data["outcome"])

		// The stored statement must come back unchanged
		f.statements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.statements.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should reject forced regeneration of a confirmed statement", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		existing := confirmedStatement(t, customer)

		f.router.POST("/billing/statements/generate", f.handler.Generate)

		f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.statements.On("FindActiveByPeriod", mock.Anything, customer.ID, 2026, 1).
			Return(existing, nil)

		reqBody := GenerateStatementRequest{
			CustomerID: customer.ID.String(),
			Year:       2026,
			Month:      1,
			Force:      true,
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/generate", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.False(t, response["success"].(bool))

		errInfo := response["error"].(map[string]interface{})
		assert.Equal(t, "ERR_STATEMENT_CONFIRMED", errInfo["code"])
	})

	t.Run("should return error for out-of-range month", func(t *testing.T) {
		f := setupStatementTestRouter()

		f.router.POST("/billing/statements/generate", f.handler.Generate)

		reqBody := GenerateStatementRequest{
			CustomerID: uuid.New().String(),
			Year:       2026,
			Month:      13,
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/generate", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should return 404 for unknown customer", func(t *testing.T) {
		f := setupStatementTestRouter()
		customerID := uuid.New()

		f.router.POST("/billing/statements/generate", f.handler.Generate)

		f.customers.On("FindByID", mock.Anything, customerID).Return(nil, shared.ErrNotFound)

		reqBody := GenerateStatementRequest{
			CustomerID: customerID.String(),
			Year:       2026,
			Month:      1,
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/generate", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStatementHandler_GenerateAll(t *testing.T) {
	t.Run("should generate statements for every billable customer", func(t *testing.T) {
		f := setupStatementTestRouter()
		first := billableCustomer(t)
		second := billableCustomer(t)

		f.router.POST("/billing/statements/generate-all", f.handler.GenerateAll)

		f.customers.On("FindBillable", mock.Anything).Return([]directory.Customer{*first, *second}, nil)
		f.customers.On("FindByID", mock.Anything, first.ID).Return(first, nil)
		f.customers.On("FindByID", mock.Anything, second.ID).Return(second, nil)
		f.statements.On("FindActiveByPeriod", mock.Anything, mock.Anything, 2026, 1).
			Return(nil, shared.ErrNotFound)
		f.ledger.On("EffectiveAssignments", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(rentalAssignments(), nil)
		f.statements.On("Create", mock.Anything, mock.AnythingOfType("*billing.MonthlyStatement")).
			Return(nil)

		reqBody := GenerateAllStatementsRequest{Year: 2026, Month: 1}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/generate-all", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response["success"].(bool))

		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(2), data["customers"])
		assert.Equal(t, float64(2), data["generated"])
		assert.Equal(t, float64(0), data["failed"])
		assert.Len(t, data["results"], 2)
	})
}

func TestStatementHandler_GetByID(t *testing.T) {
	t.Run("should get statement by ID", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		statement := draftStatement(t, customer)

		f.router.GET("/billing/statements/:id", f.handler.GetByID)

		f.statements.On("FindByID", mock.Anything, statement.ID).Return(statement, nil)

		req, _ := http.NewRequest(http.MethodGet, "/billing/statements/"+statement.ID.String(), nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response["success"].(bool))

		data := response["data"].(map[string]interface{})
		assert.Equal(t, statement.ID.String(), data["id"])
		assert.Equal(t, "324000", data["grand_total"])

		f.statements.AssertExpectations(t)
	})

	t.Run("should return 404 for non-existent statement", func(t *testing.T) {
		f := setupStatementTestRouter()
		statementID := uuid.New()

		f.router.GET("/billing/statements/:id", f.handler.GetByID)

		f.statements.On("FindByID", mock.Anything, statementID).Return(nil, shared.ErrNotFound)

		req, _ := http.NewRequest(http.MethodGet, "/billing/statements/"+statementID.String(), nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return error for invalid statement ID", func(t *testing.T) {
		f := setupStatementTestRouter()

		f.router.GET("/billing/statements/:id", f.handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/billing/statements/invalid-uuid", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStatementHandler_List(t *testing.T) {
	t.Run("should list statements with pagination", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		statement := draftStatement(t, customer)

		f.router.GET("/billing/statements", f.handler.List)

		f.statements.On("FindAll", mock.Anything, mock.AnythingOfType("billing.StatementFilter")).
			Return([]billing.MonthlyStatement{*statement}, nil)
		f.statements.On("Count", mock.Anything, mock.AnythingOfType("billing.StatementFilter")).
			Return(int64(1), nil)

		req, _ := http.NewRequest(http.MethodGet, "/billing/statements?year=2026&month=1", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response["success"].(bool))

		meta := response["meta"].(map[string]interface{})
		assert.Equal(t, float64(1), meta["total"])

		f.statements.AssertExpectations(t)
	})

	t.Run("should return error for invalid status filter", func(t *testing.T) {
		f := setupStatementTestRouter()

		f.router.GET("/billing/statements", f.handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/billing/statements?status=BOGUS", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStatementHandler_Confirm(t *testing.T) {
	t.Run("should confirm a statement with the acting user", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		statement := draftStatement(t, customer)
		actorID := uuid.New()

		f.router.POST("/billing/statements/:id/confirm", func(c *gin.Context) {
			setJWTContext(c, actorID)
		}, f.handler.Confirm)

		f.statements.On("FindByID", mock.Anything, statement.ID).Return(statement, nil)
		f.statements.On("Update", mock.Anything, mock.AnythingOfType("*billing.MonthlyStatement")).
			Return(nil)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/"+statement.ID.String()+"/confirm", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response["success"].(bool))

		data := response["data"].(map[string]interface{})
		assert.Equal(t, "CONFIRMED", data["status"])
		assert.NotEmpty(t, data["confirmed_at"])
		assert.Equal(t, actorID.String(), data["confirmed_by"])

		f.statements.AssertExpectations(t)
	})

	t.Run("should require an authenticated user", func(t *testing.T) {
		f := setupStatementTestRouter()
		statementID := uuid.New()

		f.router.POST("/billing/statements/:id/confirm", f.handler.Confirm)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/"+statementID.String()+"/confirm", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should reject confirming an already confirmed statement", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		statement := confirmedStatement(t, customer)
		actorID := uuid.New()

		f.router.POST("/billing/statements/:id/confirm", func(c *gin.Context) {
			setJWTContext(c, actorID)
		}, f.handler.Confirm)

		f.statements.On("FindByID", mock.Anything, statement.ID).Return(statement, nil)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/"+statement.ID.String()+"/confirm", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		f.statements.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestStatementHandler_SoftDelete(t *testing.T) {
	t.Run("should soft delete a statement", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		statement := draftStatement(t, customer)

		f.router.DELETE("/billing/statements/:id", f.handler.SoftDelete)

		f.statements.On("FindByID", mock.Anything, statement.ID).Return(statement, nil)
		f.statements.On("Update", mock.Anything, mock.AnythingOfType("*billing.MonthlyStatement")).
			Return(nil)

		req, _ := http.NewRequest(http.MethodDelete, "/billing/statements/"+statement.ID.String(), nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())

		f.statements.AssertExpectations(t)
	})

	t.Run("should soft delete a confirmed statement", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		statement := confirmedStatement(t, customer)

		f.router.DELETE("/billing/statements/:id", f.handler.SoftDelete)

		f.statements.On("FindByID", mock.Anything, statement.ID).Return(statement, nil)
		f.statements.On("Update", mock.Anything, mock.AnythingOfType("*billing.MonthlyStatement")).
			Return(nil)

		req, _ := http.NewRequest(http.MethodDelete, "/billing/statements/"+statement.ID.String(), nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestStatementHandler_Restore(t *testing.T) {
	t.Run("should restore a soft deleted statement", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		statement := draftStatement(t, customer)
		require.NoError(t, statement.SoftDelete())
		statement.ClearDomainEvents()

		f.router.POST("/billing/statements/:id/restore", f.handler.Restore)

		f.statements.On("FindByID", mock.Anything, statement.ID).Return(statement, nil)
		f.statements.On("ExistsActive", mock.Anything, customer.ID, 2026, 1).Return(false, nil)
		f.statements.On("Update", mock.Anything, mock.AnythingOfType("*billing.MonthlyStatement")).
			Return(nil)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/"+statement.ID.String()+"/restore", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)

		data := response["data"].(map[string]interface{})
		assert.Nil(t, data["deleted_at"])

		f.statements.AssertExpectations(t)
	})

	t.Run("should conflict when the period slot is occupied", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		statement := draftStatement(t, customer)
		require.NoError(t, statement.SoftDelete())
		statement.ClearDomainEvents()

		f.router.POST("/billing/statements/:id/restore", f.handler.Restore)

		f.statements.On("FindByID", mock.Anything, statement.ID).Return(statement, nil)
		f.statements.On("ExistsActive", mock.Anything, customer.ID, 2026, 1).Return(true, nil)

		req, _ := http.NewRequest(http.MethodPost, "/billing/statements/"+statement.ID.String()+"/restore", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)

		errInfo := response["error"].(map[string]interface{})
		assert.Equal(t, "ERR_PERIOD_OCCUPIED", errInfo["code"])

		f.statements.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestStatementHandler_UpdateNotes(t *testing.T) {
	t.Run("should update statement notes", func(t *testing.T) {
		f := setupStatementTestRouter()
		customer := billableCustomer(t)
		statement := draftStatement(t, customer)
		notes := "Deliver invoice to reception desk"

		f.router.PUT("/billing/statements/:id/notes", f.handler.UpdateNotes)

		f.statements.On("FindByID", mock.Anything, statement.ID).Return(statement, nil)
		f.statements.On("Update", mock.Anything, mock.AnythingOfType("*billing.MonthlyStatement")).
			Return(nil)

		reqBody := UpdateStatementNotesRequest{Notes: &notes}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPut, "/billing/statements/"+statement.ID.String()+"/notes", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)

		data := response["data"].(map[string]interface{})
		assert.Equal(t, notes, data["notes"])
	})
}

func TestStatementHandler_ComputePeriod(t *testing.T) {
	t.Run("should compute the billing window", func(t *testing.T) {
		f := setupStatementTestRouter()

		f.router.GET("/billing/periods/:year/:month", f.handler.ComputePeriod)

		req, _ := http.NewRequest(http.MethodGet, "/billing/periods/2025/7", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response["success"].(bool))

		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(2025), data["year"])
		assert.Equal(t, float64(7), data["month"])
		assert.NotEmpty(t, data["start"])
		assert.NotEmpty(t, data["end"])
	})

	t.Run("should return error for out-of-range month", func(t *testing.T) {
		f := setupStatementTestRouter()

		f.router.GET("/billing/periods/:year/:month", f.handler.ComputePeriod)

		req, _ := http.NewRequest(http.MethodGet, "/billing/periods/2025/13", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should return error for non-numeric month", func(t *testing.T) {
		f := setupStatementTestRouter()

		f.router.GET("/billing/periods/:year/:month", f.handler.ComputePeriod)

		req, _ := http.NewRequest(http.MethodGet, "/billing/periods/2025/july", nil)

		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
