package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/plantrent/backend/internal/infrastructure/auth"
	"github.com/plantrent/backend/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testJWTSecret = "test-secret-key-at-least-32-chars"

func newTestVerifier() *auth.TokenVerifier {
	return auth.NewTokenVerifier(config.AuthConfig{
		JWTSecret: testJWTSecret,
		Issuer:    "test-issuer",
	})
}

// mintToken signs a token the way the upstream identity provider would.
// mutate can adjust the claims before signing.
func mintToken(t *testing.T, mutate func(*auth.Claims)) (string, *auth.Claims) {
	t.Helper()

	now := time.Now()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "test-issuer",
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:    uuid.NewString(),
		Username:  "testuser",
		TokenType: auth.TokenTypeAccess,
	}
	if mutate != nil {
		mutate(claims)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed, claims
}

// authRouter serves GET /statements behind the configured middleware.
func authRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuthMiddlewareWithConfig(cfg))
	router.GET("/statements", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func getWithAuth(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorCodeFromBody(t *testing.T, body []byte) string {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &response))
	errInfo, ok := response["error"].(map[string]interface{})
	require.True(t, ok)
	code, _ := errInfo["code"].(string)
	return code
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token, claims := mintToken(t, nil)

	var got *auth.Claims
	router := gin.New()
	router.Use(JWTAuthMiddleware(newTestVerifier()))
	router.GET("/statements", func(c *gin.Context) {
		got = GetJWTClaims(c)
		c.Status(http.StatusOK)
	})

	rec := getWithAuth(router, "/statements", "Bearer "+token)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, claims.UserID, got.UserID)
	assert.Equal(t, claims.ID, got.ID)
}

func TestJWTAuth_RejectedCredentials(t *testing.T) {
	tests := []struct {
		name          string
		authorization func(t *testing.T) string
		wantCode      string
	}{
		{
			name:          "no authorization header",
			authorization: func(t *testing.T) string { return "" },
			wantCode:      "UNAUTHORIZED",
		},
		{
			name:          "wrong scheme",
			authorization: func(t *testing.T) string { return "Basic dXNlcjpwYXNz" },
			wantCode:      "UNAUTHORIZED",
		},
		{
			name:          "empty bearer token",
			authorization: func(t *testing.T) string { return "Bearer " },
			wantCode:      "UNAUTHORIZED",
		},
		{
			name:          "garbage token",
			authorization: func(t *testing.T) string { return "Bearer not-a-jwt" },
			wantCode:      "INVALID_TOKEN",
		},
		{
			name: "wrong signing key",
			authorization: func(t *testing.T) string {
				claims := &auth.Claims{
					RegisteredClaims: jwt.RegisteredClaims{
						Issuer:    "test-issuer",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
					},
					UserID:    uuid.NewString(),
					TokenType: auth.TokenTypeAccess,
				}
				signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("an-entirely-different-secret-key"))
				require.NoError(t, err)
				return "Bearer " + signed
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name: "expired token",
			authorization: func(t *testing.T) string {
				token, _ := mintToken(t, func(c *auth.Claims) {
					c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				})
				return "Bearer " + token
			},
			wantCode: "TOKEN_EXPIRED",
		},
		{
			name: "token from the future",
			authorization: func(t *testing.T) string {
				token, _ := mintToken(t, func(c *auth.Claims) {
					c.NotBefore = jwt.NewNumericDate(time.Now().Add(time.Hour))
					c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(2 * time.Hour))
				})
				return "Bearer " + token
			},
			wantCode: "TOKEN_NOT_VALID",
		},
		{
			name: "refresh token on an access endpoint",
			authorization: func(t *testing.T) string {
				token, _ := mintToken(t, func(c *auth.Claims) {
					c.TokenType = auth.TokenTypeRefresh
				})
				return "Bearer " + token
			},
			wantCode: "INVALID_TOKEN_TYPE",
		},
		{
			name: "token without a user id",
			authorization: func(t *testing.T) string {
				token, _ := mintToken(t, func(c *auth.Claims) {
					c.UserID = ""
				})
				return "Bearer " + token
			},
			wantCode: "UNAUTHORIZED",
		},
	}

	router := authRouter(DefaultJWTConfig(newTestVerifier()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getWithAuth(router, "/statements", tt.authorization(t))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantCode, errorCodeFromBody(t, rec.Body.Bytes()))
		})
	}
}

func TestJWTAuth_RevokedToken(t *testing.T) {
	token, claims := mintToken(t, nil)

	revocations := auth.NewMemoryRevocationList()
	require.NoError(t, revocations.Revoke(context.Background(), claims.ID, time.Hour))

	cfg := DefaultJWTConfig(newTestVerifier())
	cfg.Revocations = revocations

	rec := getWithAuth(authRouter(cfg), "/statements", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_REVOKED", errorCodeFromBody(t, rec.Body.Bytes()))
}

func TestJWTAuth_UserSessionsInvalidated(t *testing.T) {
	token, claims := mintToken(t, nil)

	revocations := auth.NewMemoryRevocationList()
	require.NoError(t, revocations.InvalidateUser(context.Background(), claims.UserID, time.Hour))

	cfg := DefaultJWTConfig(newTestVerifier())
	cfg.Revocations = revocations

	rec := getWithAuth(authRouter(cfg), "/statements", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_REVOKED", errorCodeFromBody(t, rec.Body.Bytes()))
}

// failingRevocations simulates an unreachable revocation backend.
type failingRevocations struct{}

func (failingRevocations) Revoke(context.Context, string, time.Duration) error {
	return errors.New("revocation backend unreachable")
}

func (failingRevocations) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("revocation backend unreachable")
}

func (failingRevocations) InvalidateUser(context.Context, string, time.Duration) error {
	return errors.New("revocation backend unreachable")
}

func (failingRevocations) IsUserInvalidated(context.Context, string, time.Time) (bool, error) {
	return false, errors.New("revocation backend unreachable")
}

func TestJWTAuth_RevocationBackendFailureFailsOpen(t *testing.T) {
	token, _ := mintToken(t, nil)

	core, logs := observer.New(zap.ErrorLevel)
	cfg := DefaultJWTConfig(newTestVerifier())
	cfg.Revocations = failingRevocations{}
	cfg.Logger = zap.New(core)

	rec := getWithAuth(authRouter(cfg), "/statements", "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, logs.FilterMessageSnippet("Failed to check").Len())
}

func TestJWTAuth_SkipPaths(t *testing.T) {
	cfg := DefaultJWTConfig(newTestVerifier())
	cfg.SkipPaths = append(cfg.SkipPaths, "/public")

	paths := []string{
		"/public",
		"/health",
		"/healthz",
		"/ready",
		"/metrics",
		"/api/v1/health",
		"/swagger/index.html",
		"/api-docs/openapi.json",
	}

	router := gin.New()
	router.Use(JWTAuthMiddlewareWithConfig(cfg))
	for _, path := range paths {
		router.GET(path, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}

	for _, path := range paths {
		rec := getWithAuth(router, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, "path %s should not require auth", path)
	}
}

func TestJWTAuth_StoresIdentityInContext(t *testing.T) {
	token, claims := mintToken(t, nil)

	router := gin.New()
	router.Use(JWTAuthMiddleware(newTestVerifier()))
	router.GET("/statements", func(c *gin.Context) {
		assert.Equal(t, claims.UserID, GetJWTUserID(c))
		assert.Equal(t, "testuser", GetJWTUsername(c))
		c.Status(http.StatusOK)
	})

	rec := getWithAuth(router, "/statements", "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAccessors_EmptyContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, GetJWTClaims(c))
	assert.Empty(t, GetJWTUserID(c))
	assert.Empty(t, GetJWTUsername(c))
}

func TestJWTAuth_CustomOnError(t *testing.T) {
	var got error
	cfg := DefaultJWTConfig(newTestVerifier())
	cfg.OnError = func(c *gin.Context, err error) {
		got = err
		c.AbortWithStatusJSON(http.StatusTeapot, gin.H{"custom": true})
	}

	rec := getWithAuth(authRouter(cfg), "/statements", "Bearer not-a-jwt")

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.ErrorIs(t, got, auth.ErrInvalidToken)
}
