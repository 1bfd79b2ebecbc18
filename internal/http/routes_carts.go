package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cakeshop/cart-service/internal/service"
)

// CartRoutes handles cart-related route registration.
type CartRoutes struct {
	handler *Handler
}

// NewCartRoutes creates a new CartRoutes instance.
func NewCartRoutes(carts service.CartService) *CartRoutes {
	return &CartRoutes{
		handler: NewHandler(carts),
	}
}

// RegisterPublicRoutes registers the cart endpoints on the API group.
func (r *CartRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/cart", r.handler.GetCart)
	rg.DELETE("/cart", r.handler.ClearCart)
	rg.POST("/cart/items", r.handler.AddItem)
	rg.DELETE("/cart/items/:id", r.handler.RemoveItem)
	rg.PUT("/cart/items/:id/quantity", r.handler.UpdateQuantity)
	rg.PATCH("/cart/items/:id", r.handler.UpdateItem)
	rg.POST("/cart/items/:id/addons", r.handler.AddAddon)
}

// GetHandler returns the underlying cart handler.
func (r *CartRoutes) GetHandler() *Handler {
	return r.handler
}
