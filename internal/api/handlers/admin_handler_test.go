package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cityhub-marketplace-api-server/config"
	"cityhub-marketplace-api-server/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPINRouter(pin string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth.Init("test-secret", "1h")

	handler := &AdminHandler{Cfg: config.Config{Admin: config.AdminConfig{PIN: pin}}}
	router := gin.New()
	router.POST("/admin/login", handler.Login)
	return router
}

func TestAdminLoginCorrectPIN(t *testing.T) {
	router := newPINRouter("4321")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"pin":"4321"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
}

func TestAdminLoginWrongPIN(t *testing.T) {
	router := newPINRouter("4321")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"pin":"0000"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginUnconfiguredPIN(t *testing.T) {
	// PIN chưa cấu hình thì console bị khóa hoàn toàn
	router := newPINRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"pin":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestAdminLoginMissingBody(t *testing.T) {
	router := newPINRouter("4321")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
