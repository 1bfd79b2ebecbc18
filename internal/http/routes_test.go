package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cakeshop/cart-service/internal/repository"
	"github.com/cakeshop/cart-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestCartService() service.CartService {
	return service.NewCartService(repository.NewInMemoryCartsRepository())
}

func TestNewCartRoutes(t *testing.T) {
	routes := NewCartRoutes(newTestCartService())

	assert.NotNil(t, routes)
	assert.NotNil(t, routes.handler)
}

func TestCartRoutes_RegisterPublicRoutes(t *testing.T) {
	routes := NewCartRoutes(newTestCartService())

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodDelete, "/api/cart"},
		{http.MethodPost, "/api/cart/items"},
		{http.MethodDelete, "/api/cart/items/some-id"},
		{http.MethodPut, "/api/cart/items/some-id/quantity"},
		{http.MethodPatch, "/api/cart/items/some-id"},
		{http.MethodPost, "/api/cart/items/some-id/addons"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Should not return 404 - route exists
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestCartRoutes_GetHandler(t *testing.T) {
	routes := NewCartRoutes(newTestCartService())

	handler := routes.GetHandler()

	assert.NotNil(t, handler)
	assert.Equal(t, routes.handler, handler)
}
