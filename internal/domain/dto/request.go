// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/cakeshop/cart-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingProduct is returned when the product snapshot is absent.
	ErrMissingProduct = &ValidationError{
		Field:   "product.id",
		Message: "must reference a catalog cake",
	}
	// ErrInvalidQuantity is returned when a quantity is not a positive integer.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrMissingVariant is returned when weight or flavor is absent.
	ErrMissingVariant = &ValidationError{
		Field:   "weight/flavor",
		Message: "variant selection is required",
	}
	// ErrInvalidUnitPrice is returned when the captured unit price is unusable.
	ErrInvalidUnitPrice = &ValidationError{
		Field:   "unit_price",
		Message: "must be a non-negative decimal string",
	}
	// ErrMissingAddon is returned when the addon reference is absent.
	ErrMissingAddon = &ValidationError{
		Field:   "addon.id",
		Message: "must reference a catalog add-on",
	}
)

// AddItemRequest represents the JSON request body for adding a line item.
//
// The product is an immutable catalog snapshot; unit_price is the price
// captured at add time as a decimal-formatted string.
//
// @Description Request to add a cake to the cart
// @Example {"product": {"id": 42, "name": "Chocolate Truffle", "price": "500.00"}, "quantity": 1, "weight": "1kg", "flavor": "vanilla", "unit_price": "500.00"}
type AddItemRequest struct {
	// Product is the catalog cake snapshot to add.
	Product model.Cake `json:"product" binding:"required"`
	// Quantity is the number of units; must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"1" minimum:"1"`
	// Weight identifies the selected size variant.
	Weight string `json:"weight" binding:"required" example:"1kg"`
	// Flavor identifies the selected flavor variant.
	Flavor string `json:"flavor" binding:"required" example:"vanilla"`
	// UnitPrice is the price snapshot as a decimal-formatted string.
	UnitPrice string `json:"unit_price" binding:"required" example:"500.00"`
	// CustomMessage is the optional message written on the cake.
	CustomMessage string `json:"custom_message,omitempty"`
	// Personalization is the optional photo/placement payload.
	Personalization *model.Personalization `json:"personalization,omitempty"`
	// Addons are optional add-ons attached at add time.
	Addons []model.AddonSelection `json:"addons,omitempty"`
} // @name AddItemRequest

// Validate performs custom validation on the request.
func (r *AddItemRequest) Validate() error {
	if r.Product.ID <= 0 {
		return ErrMissingProduct
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.Weight == "" || r.Flavor == "" {
		return ErrMissingVariant
	}
	price, err := decimal.NewFromString(r.UnitPrice)
	if err != nil || price.IsNegative() {
		return ErrInvalidUnitPrice
	}
	for _, sel := range r.Addons {
		if sel.Addon.ID <= 0 {
			return ErrMissingAddon
		}
		if sel.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// LineItem converts the request into a candidate line item (no id yet).
func (r *AddItemRequest) LineItem() model.CartLineItem {
	return model.CartLineItem{
		Product:         r.Product,
		Quantity:        r.Quantity,
		Weight:          r.Weight,
		Flavor:          r.Flavor,
		CustomMessage:   r.CustomMessage,
		Personalization: r.Personalization,
		UnitPrice:       model.ParsePrice(r.UnitPrice),
		Addons:          r.Addons,
	}
}

// UpdateQuantityRequest represents the JSON request body for setting a line
// item quantity. Zero and negative values are valid and remove the item.
//
// @Description Request to set a line item quantity; 0 or below removes it
type UpdateQuantityRequest struct {
	// Quantity is the new unit count; 0 or below removes the line item.
	Quantity *int `json:"quantity" binding:"required" example:"2"`
} // @name UpdateQuantityRequest

// Validate performs custom validation on the request.
func (r *UpdateQuantityRequest) Validate() error {
	if r.Quantity == nil {
		return ErrInvalidQuantity
	}
	return nil
}

// UpdateItemRequest represents the JSON request body for patching a line
// item's personalization fields. Absent fields are left untouched.
//
// @Description Shallow patch of a line item's personalization
type UpdateItemRequest struct {
	CustomMessage   *string                `json:"custom_message,omitempty"`
	Personalization *model.Personalization `json:"personalization,omitempty"`
} // @name UpdateItemRequest

// AddAddonRequest represents the JSON request body for attaching an add-on
// to a line item.
//
// @Description Request to attach an add-on to a line item
// @Example {"addon": {"id": 9, "name": "Birthday Candles", "price": "50.00"}, "quantity": 2}
type AddAddonRequest struct {
	// Addon is the catalog add-on snapshot to attach.
	Addon model.Addon `json:"addon" binding:"required"`
	// Quantity is the number of add-on units; must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"1" minimum:"1"`
} // @name AddAddonRequest

// Validate performs custom validation on the request.
func (r *AddAddonRequest) Validate() error {
	if r.Addon.ID <= 0 {
		return ErrMissingAddon
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
