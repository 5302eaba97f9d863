package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cityhub-marketplace-api-server/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/")
	group.Use(Authenticate())
	if len(roles) > 0 {
		group.Use(Authorize(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		uid, _ := c.Get("uid")
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})
	return router
}

func TestAuthenticateMissingHeader(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateBadTokenFormat(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	auth.Init("test-secret", "1h")
	token, err := auth.GenerateJWT("uid-123", "customer", "", "")
	require.NoError(t, err)

	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uid-123")
}

func TestAuthorizeRoles(t *testing.T) {
	auth.Init("test-secret", "1h")

	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{"vendor allowed", "vendor", []string{"vendor"}, http.StatusOK},
		{"customer rejected from vendor routes", "customer", []string{"vendor"}, http.StatusForbidden},
		{"admin allowed among many", "admin", []string{"customer", "vendor", "admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.GenerateJWT("uid-123", tt.role, "", "")
			require.NoError(t, err)

			router := newTestRouter(tt.allowed...)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
