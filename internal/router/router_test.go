package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nutridash/backend/config"
	"github.com/nutridash/backend/internal/service"
	"github.com/nutridash/backend/internal/testdb"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Setup(t)
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	return New(cfg, Deps{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret"),
	})
}

func TestHealthPingsDatabase(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouteTreeGating(t *testing.T) {
	router := setupRouter(t)

	// Auth routes are open.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/auth/sign-in", nil)
	router.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusNotFound, w.Code)
	assert.NotEqual(t, http.StatusUnauthorized, w.Code)

	// Catalog and meal routes require a token.
	for _, path := range []string{
		"/api/v1/foods",
		"/api/v1/categories",
		"/api/v1/serving-units",
		"/api/v1/meals",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
