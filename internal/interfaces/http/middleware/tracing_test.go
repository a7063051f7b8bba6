package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var testTracingConfig = TracingConfig{ServiceName: "test-service", Enabled: true}

// setupTestTracer installs a recording tracer provider for the duration of
// the test and restores the previous global afterwards.
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(t.Context())
	})

	return sr
}

func spanByName(spans []sdktrace.ReadOnlySpan, name string) sdktrace.ReadOnlySpan {
	for _, s := range spans {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (string, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}

func TestTracingWithConfig_DisabledRecordsNothing(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{ServiceName: "test-service", Enabled: false}))
	router.GET("/statements", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/statements", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracingWithConfig_NamesSpanByRoutePattern(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(testTracingConfig))
	router.GET("/statements/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/statements/42", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	span := spanByName(sr.Ended(), "GET /statements/:id")
	require.NotNil(t, span, "expected a span named by route pattern")
	assert.Equal(t, trace.SpanKindServer, span.SpanKind())
}

func TestTracingAttributeInjector_TagsRequestID(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(RequestID())
	router.Use(TracingWithConfig(testTracingConfig))
	router.Use(TracingAttributeInjector())
	router.GET("/statements", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/statements", nil)
	req.Header.Set("X-Request-ID", "gateway-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	span := spanByName(sr.Ended(), "GET /statements")
	require.NotNil(t, span)

	got, ok := spanAttr(span, "request_id")
	require.True(t, ok, "request_id attribute missing")
	assert.Equal(t, "gateway-42", got)
}

func TestTracingAttributeInjector_TagsAuthenticatedUser(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(testTracingConfig))
	router.Use(func(c *gin.Context) {
		c.Set(JWTUserIDKey, "user-123")
		c.Next()
	})
	router.Use(TracingAttributeInjector())
	router.GET("/statements", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/statements", nil))

	span := spanByName(sr.Ended(), "GET /statements")
	require.NotNil(t, span)

	got, ok := spanAttr(span, "user_id")
	require.True(t, ok, "user_id attribute missing")
	assert.Equal(t, "user-123", got)
}

func TestTracingAttributeInjector_NoSpanIsSafe(t *testing.T) {
	router := gin.New()
	router.Use(TracingAttributeInjector())
	router.GET("/statements", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/statements", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDFrom(t *testing.T) {
	newCtx := func(header string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/statements", nil)
		if header != "" {
			c.Request.Header.Set("X-Request-ID", header)
		}
		return c
	}

	t.Run("prefers the id stored by the RequestID middleware", func(t *testing.T) {
		c := newCtx("header-id")
		c.Set("request_id", "context-id")

		assert.Equal(t, "context-id", requestIDFrom(c))
	})

	t.Run("falls back to the header", func(t *testing.T) {
		assert.Equal(t, "header-id", requestIDFrom(newCtx("header-id")))
	})

	t.Run("truncates oversized headers", func(t *testing.T) {
		got := requestIDFrom(newCtx(strings.Repeat("x", 500)))
		assert.Len(t, got, maxRequestIDLen)
	})

	t.Run("empty when nothing is set", func(t *testing.T) {
		assert.Empty(t, requestIDFrom(newCtx("")))
	})
}

func TestSpanErrorMarker(t *testing.T) {
	tests := []struct {
		status          int
		wantError       bool
		wantDescription string
	}{
		{status: http.StatusOK, wantError: false},
		{status: http.StatusCreated, wantError: false},
		{status: http.StatusBadRequest, wantError: true, wantDescription: "Bad Request"},
		{status: http.StatusUnauthorized, wantError: true, wantDescription: "Unauthorized"},
		{status: http.StatusForbidden, wantError: true, wantDescription: "Forbidden"},
		{status: http.StatusNotFound, wantError: true, wantDescription: "Not Found"},
		{status: http.StatusConflict, wantError: true, wantDescription: "Conflict"},
		// otelgin marks 5xx itself after this middleware runs and clears the
		// description, so only the code is stable.
		{status: http.StatusInternalServerError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			sr := setupTestTracer(t)

			router := gin.New()
			router.Use(TracingWithConfig(testTracingConfig))
			router.Use(SpanErrorMarker())
			router.GET("/statements", func(c *gin.Context) {
				c.JSON(tt.status, gin.H{"status": tt.status})
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/statements", nil))
			require.Equal(t, tt.status, rec.Code)

			span := spanByName(sr.Ended(), "GET /statements")
			require.NotNil(t, span)

			if !tt.wantError {
				assert.NotEqual(t, codes.Error, span.Status().Code)
				return
			}
			assert.Equal(t, codes.Error, span.Status().Code)
			if tt.wantDescription != "" {
				assert.Equal(t, tt.wantDescription, span.Status().Description)
			}
		})
	}
}

func TestSpanErrorMarker_NoopProviderIsSafe(t *testing.T) {
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(noop.NewTracerProvider())
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	router := gin.New()
	router.Use(SpanErrorMarker())
	router.GET("/statements", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/statements", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
