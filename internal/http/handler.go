package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cakeshop/cart-service/internal/cart"
	"github.com/cakeshop/cart-service/internal/domain/dto"
	"github.com/cakeshop/cart-service/internal/i18n"
	"github.com/cakeshop/cart-service/internal/middleware"
	"github.com/cakeshop/cart-service/internal/service"
)

// Handler provides HTTP handlers for cart routes.
type Handler struct {
	carts service.CartService
}

// NewHandler creates a new Handler instance.
func NewHandler(carts service.CartService) *Handler {
	return &Handler{
		carts: carts,
	}
}

// audit emits an async audit log entry for a cart mutation if a logging
// service is wired into the request context.
func (h *Handler) audit(c *gin.Context, action cart.Action, message string, fields map[string]interface{}) {
	loggingService, exists := c.Get("logging_service")
	if !exists {
		return
	}
	ls, ok := loggingService.(service.LoggingService)
	if !ok {
		return
	}
	middleware.AuditLog(ls, c, action.Name(), message, fields)
}

// dispatch applies the action for the request's session and writes the
// post-transition snapshot as the response body.
func (h *Handler) dispatch(c *gin.Context, action cart.Action) {
	sessionID := middleware.GetSessionID(c)
	state := h.carts.Dispatch(c.Request.Context(), sessionID, action)
	NewResponseBuilder(c).SuccessOK(state)
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get the current cart
// @Description  Returns the cart snapshot for the caller's session, including line items, total, and item count. A session that has never written anything gets the canonical empty cart.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Session identifier (minted and echoed back when absent)"
// @Success      200 {object} dto.SuccessResponse "Current cart snapshot"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	state := h.carts.Snapshot(c.Request.Context(), sessionID)
	NewResponseBuilder(c).SuccessOK(state)
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add a cake to the cart
// @Description  Adds a line item to the cart. An item with the same product, weight, and flavor as an existing line merges into it by incrementing its quantity; the existing line's customization wins. Supports idempotency via Idempotency-Key header.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Session identifier"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddItemRequest true "Line item to add"
// @Success      200 {object} dto.SuccessResponse "Cart snapshot after the add"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	action := cart.AddItem{Item: req.LineItem()}
	h.audit(c, action, "Cart item added", map[string]interface{}{
		"product_id": req.Product.ID,
		"quantity":   req.Quantity,
		"weight":     req.Weight,
		"flavor":     req.Flavor,
	})
	h.dispatch(c, action)
}

// RemoveItem handles DELETE /api/cart/items/:id requests.
//
// @Summary      Remove a line item
// @Description  Removes the line item with the given id. Removing an id that is not in the cart leaves the cart unchanged and still returns the current snapshot.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Session identifier"
// @Param        id path string true "Line item id"
// @Success      200 {object} dto.SuccessResponse "Cart snapshot after the removal"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items/{id} [delete]
func (h *Handler) RemoveItem(c *gin.Context) {
	action := cart.RemoveItem{ID: c.Param("id")}
	h.audit(c, action, "Cart item removed", map[string]interface{}{
		"item_id": action.ID,
	})
	h.dispatch(c, action)
}

// UpdateQuantity handles PUT /api/cart/items/:id/quantity requests.
//
// @Summary      Set a line item quantity
// @Description  Sets the quantity of a line item. A quantity of zero or below removes the item from the cart.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Session identifier"
// @Param        id path string true "Line item id"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse "Cart snapshot after the update"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items/{id}/quantity [put]
func (h *Handler) UpdateQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateQuantityRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	action := cart.UpdateQuantity{ID: c.Param("id"), Quantity: *req.Quantity}
	h.audit(c, action, "Cart item quantity updated", map[string]interface{}{
		"item_id":  action.ID,
		"quantity": action.Quantity,
	})
	h.dispatch(c, action)
}

// UpdateItem handles PATCH /api/cart/items/:id requests.
//
// @Summary      Patch a line item's personalization
// @Description  Applies a shallow patch to a line item's custom message and personalization payload. Absent fields are left untouched; product, variant, price, and quantity cannot be changed through this endpoint.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Session identifier"
// @Param        id path string true "Line item id"
// @Param        request body dto.UpdateItemRequest true "Fields to patch"
// @Success      200 {object} dto.SuccessResponse "Cart snapshot after the patch"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items/{id} [patch]
func (h *Handler) UpdateItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	action := cart.UpdateItem{
		ID: c.Param("id"),
		Patch: cart.ItemPatch{
			CustomMessage:   req.CustomMessage,
			Personalization: req.Personalization,
		},
	}
	h.audit(c, action, "Cart item customized", map[string]interface{}{
		"item_id": action.ID,
	})
	h.dispatch(c, action)
}

// AddAddon handles POST /api/cart/items/:id/addons requests.
//
// @Summary      Attach an add-on to a line item
// @Description  Attaches an add-on (candles, toppers, greeting cards) to a line item. Attaching an add-on already on the item increments its quantity instead of duplicating the row.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Session identifier"
// @Param        id path string true "Line item id"
// @Param        request body dto.AddAddonRequest true "Add-on to attach"
// @Success      200 {object} dto.SuccessResponse "Cart snapshot after the add-on"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items/{id}/addons [post]
func (h *Handler) AddAddon(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddAddonRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	action := cart.AddAddon{ID: c.Param("id"), Addon: req.Addon, Quantity: req.Quantity}
	h.audit(c, action, "Cart add-on attached", map[string]interface{}{
		"item_id":  action.ID,
		"addon_id": req.Addon.ID,
		"quantity": req.Quantity,
	})
	h.dispatch(c, action)
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear the cart
// @Description  Empties the cart and removes its durable slot. Clearing an already empty cart is a no-op that still returns the empty snapshot.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Session identifier"
// @Success      200 {object} dto.SuccessResponse "Empty cart snapshot"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	action := cart.Clear{}
	h.audit(c, action, "Cart cleared", nil)
	h.dispatch(c, action)
}
