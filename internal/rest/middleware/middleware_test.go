package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/internal/rest/middleware"
)

const secret = "rahasia"

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(secret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.UserIDKey))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"id":  "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{name: "valid token", header: "Bearer " + valid, code: http.StatusOK},
		{name: "no header", header: "", code: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz", code: http.StatusUnauthorized},
		{
			name: "wrong secret",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("lain"), jwt.MapClaims{
				"id": "user-123",
			}),
			code: http.StatusUnauthorized,
		},
		{
			name: "expired",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
				"id":  "user-123",
				"exp": time.Now().Add(-time.Hour).Unix(),
			}),
			code: http.StatusUnauthorized,
		},
		{
			name:   "missing id claim",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "x"}),
			code:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			newAuthRouter().ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, "user-123", rec.Body.String())
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "fail", body["status"])
			assert.Equal(t, "Missing authentication", body["message"])
		})
	}
}

func TestSetRequestContextWithTimeout(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SetRequestContextWithTimeout(time.Second))
	r.GET("/", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS())
	r.GET("/threads/:threadId", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/threads/thread-1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Metrics())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
