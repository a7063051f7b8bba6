package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/interfaces/http/dto"
	"github.com/plantrent/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func newHandlerTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetRequestID(t *testing.T) {
	t.Run("reads the ID the RequestID middleware stored", func(t *testing.T) {
		c, _ := newHandlerTestContext(t)
		c.Set("request_id", "rid-stored")
		assert.Equal(t, "rid-stored", getRequestID(c))
	})

	t.Run("falls back to the inbound header", func(t *testing.T) {
		c, _ := newHandlerTestContext(t)
		c.Request.Header.Set("X-Request-ID", "rid-inbound")
		assert.Equal(t, "rid-inbound", getRequestID(c))
	})

	t.Run("prefers the stored ID over the header", func(t *testing.T) {
		c, _ := newHandlerTestContext(t)
		c.Set("request_id", "rid-stored")
		c.Request.Header.Set("X-Request-ID", "rid-inbound")
		assert.Equal(t, "rid-stored", getRequestID(c))
	})

	t.Run("empty when neither is present", func(t *testing.T) {
		c, _ := newHandlerTestContext(t)
		assert.Empty(t, getRequestID(c))
	})
}

func TestGetUserID(t *testing.T) {
	t.Run("reads the authenticated user from the JWT claims", func(t *testing.T) {
		actorID := uuid.New()
		c, _ := newHandlerTestContext(t)
		c.Set(middleware.JWTUserIDKey, actorID.String())

		got, err := getUserID(c)
		require.NoError(t, err)
		assert.Equal(t, actorID, got)
	})

	t.Run("errors when unauthenticated", func(t *testing.T) {
		c, _ := newHandlerTestContext(t)

		_, err := getUserID(c)
		assert.Error(t, err)
	})

	t.Run("rejects a malformed user ID", func(t *testing.T) {
		c, _ := newHandlerTestContext(t)
		c.Set(middleware.JWTUserIDKey, "not-a-uuid")

		_, err := getUserID(c)
		assert.Error(t, err)
	})
}

type bindProbeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

func TestBaseHandlerBindJSON(t *testing.T) {
	h := &BaseHandler{}

	t.Run("binds a valid payload without writing a response", func(t *testing.T) {
		c, w := newHandlerTestContext(t)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Kim lien KS"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		var req bindProbeRequest
		assert.True(t, h.bindJSON(c, &req))
		assert.Equal(t, "Kim lien KS", req.Name)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("reports every failed field", func(t *testing.T) {
		c, w := newHandlerTestContext(t)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"not-an-email"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		var req bindProbeRequest
		assert.False(t, h.bindJSON(c, &req))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 2)
		assert.Equal(t, "name", resp.Error.Details[0].Field)
		assert.Equal(t, "This field is required", resp.Error.Details[0].Message)
		assert.Equal(t, "email", resp.Error.Details[1].Field)
		assert.Equal(t, "Invalid email format", resp.Error.Details[1].Message)
	})

	t.Run("handles malformed JSON as a plain bad request", func(t *testing.T) {
		c, w := newHandlerTestContext(t)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		c.Request.Header.Set("Content-Type", "application/json")

		var req bindProbeRequest
		assert.False(t, h.bindJSON(c, &req))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
		assert.NotEmpty(t, resp.Error.Message)
		assert.Empty(t, resp.Error.Details)
	})
}

type bindProbeFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=draft confirmed"`
	Page   int    `form:"page" binding:"omitempty,gte=1"`
}

func TestBaseHandlerBindQuery(t *testing.T) {
	h := &BaseHandler{}

	t.Run("binds valid query parameters", func(t *testing.T) {
		c, w := newHandlerTestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/?status=draft&page=2", nil)

		var filter bindProbeFilter
		assert.True(t, h.bindQuery(c, &filter))
		assert.Equal(t, "draft", filter.Status)
		assert.Equal(t, 2, filter.Page)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("rejects values outside the allowed set", func(t *testing.T) {
		c, w := newHandlerTestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/?status=bogus", nil)

		var filter bindProbeFilter
		assert.False(t, h.bindQuery(c, &filter))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "status", resp.Error.Details[0].Field)
		assert.Equal(t, "Must be one of: draft confirmed", resp.Error.Details[0].Message)
	})
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	c, w := newHandlerTestContext(t)

	h.Success(c, gin.H{"statement_number": "ST-2026-01-0007"})

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestBaseHandlerSuccessWithMeta(t *testing.T) {
	h := &BaseHandler{}
	c, w := newHandlerTestContext(t)

	statements := []string{"ST-2026-01-0007", "ST-2026-01-0008"}
	h.SuccessWithMeta(c, statements, 57, 3, 20)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(57), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestBaseHandlerCreated(t *testing.T) {
	h := &BaseHandler{}
	c, w := newHandlerTestContext(t)

	h.Created(c, gin.H{"id": uuid.NewString()})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decodeResponse(t, w).Success)
}

func TestBaseHandlerNoContent(t *testing.T) {
	h := &BaseHandler{}

	router := gin.New()
	router.DELETE("/statements/:id", func(c *gin.Context) {
		h.NoContent(c)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/statements/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestBaseHandlerError(t *testing.T) {
	h := &BaseHandler{}
	c, w := newHandlerTestContext(t)
	c.Set("request_id", "rid-error-path")

	h.Error(c, http.StatusConflict, dto.ErrCodeConflict, "Another statement occupies this period")

	assert.Equal(t, http.StatusConflict, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeConflict, resp.Error.Code)
	assert.Equal(t, "Another statement occupies this period", resp.Error.Message)
	assert.Equal(t, "rid-error-path", resp.Error.RequestID)
}

func TestBaseHandlerBadRequest(t *testing.T) {
	h := &BaseHandler{}
	c, w := newHandlerTestContext(t)

	h.BadRequest(c, "Month is out of range")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeBadRequest, decodeResponse(t, w).Error.Code)
}

func TestBaseHandlerUnauthorized(t *testing.T) {
	h := &BaseHandler{}
	c, w := newHandlerTestContext(t)

	h.Unauthorized(c, "Authentication required")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeUnauthorized, decodeResponse(t, w).Error.Code)
}

func TestBaseHandlerHandleDomainError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{shared.ErrAlreadyExists, http.StatusConflict, dto.ErrCodeAlreadyExists},
		{shared.ErrInvalidInput, http.StatusBadRequest, dto.ErrCodeInvalidInput},
		{shared.ErrUnauthorized, http.StatusUnauthorized, dto.ErrCodeUnauthorized},
		{shared.ErrForbidden, http.StatusForbidden, dto.ErrCodeForbidden},
		{shared.ErrInvalidState, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState},
		{shared.ErrConcurrencyConflict, http.StatusConflict, dto.ErrCodeConcurrencyConflict},
		{shared.ErrUnavailable, http.StatusServiceUnavailable, dto.ErrCodeUnavailable},
		{shared.NewDomainError("STATEMENT_CONFIRMED", "Confirmed statements are immutable"), http.StatusConflict, dto.ErrCodeStatementConfirmed},
		{shared.NewDomainError("PERIOD_OCCUPIED", "An active statement already covers this period"), http.StatusConflict, dto.ErrCodePeriodOccupied},
		{shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12"), http.StatusBadRequest, dto.ErrCodeInvalidPeriod},
	}

	for _, tc := range cases {
		t.Run(tc.wantCode, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newHandlerTestContext(t)

			h.HandleDomainError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)

			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		h := &BaseHandler{}
		c, w := newHandlerTestContext(t)

		h.HandleDomainError(c, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("unwraps domain errors inside fmt wrappers", func(t *testing.T) {
		h := &BaseHandler{}
		c, w := newHandlerTestContext(t)

		h.HandleDomainError(c, fmt.Errorf("loading statement: %w", shared.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w).Error.Code)
	})

	t.Run("masks unexpected errors as 500s", func(t *testing.T) {
		h := &BaseHandler{}
		c, w := newHandlerTestContext(t)

		h.HandleDomainError(c, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
		assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
		assert.NotContains(t, resp.Error.Message, assert.AnError.Error())
	})

	t.Run("carries the request correlation ID", func(t *testing.T) {
		h := &BaseHandler{}
		c, w := newHandlerTestContext(t)
		c.Set("request_id", "rid-domain-err")

		h.HandleDomainError(c, shared.ErrInvalidState)

		assert.Equal(t, "rid-domain-err", decodeResponse(t, w).Error.RequestID)
	})
}
