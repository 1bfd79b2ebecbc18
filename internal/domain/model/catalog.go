package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Cake represents a catalog product as the cart sees it: an immutable
// snapshot owned by the catalog service. The cart never mutates or
// re-fetches it.
//
// @Description Catalog cake snapshot attached to a cart line item
type Cake struct {
	// ID is the catalog identifier of the cake
	ID int64 `bson:"id" json:"id" example:"42"`
	// Name is the display name of the cake
	Name string `bson:"name" json:"name" example:"Chocolate Truffle"`
	// Price is the catalog base price as a decimal-formatted string
	Price string `bson:"price" json:"price" example:"500.00"`
	// Images holds catalog image URLs
	Images []string `bson:"images,omitempty" json:"images,omitempty"`
}

// Addon represents a supplementary purchasable item (candles, card, knife)
// attached to a specific cart line item. Prices travel as decimal-formatted
// strings on the wire.
//
// @Description Add-on attached to a cart line item
type Addon struct {
	// ID is the catalog identifier of the add-on
	ID int64 `bson:"id" json:"id" example:"9"`
	// Name is the display name of the add-on
	Name string `bson:"name" json:"name" example:"Birthday Candles"`
	// Price is the add-on unit price as a decimal-formatted string
	Price string `bson:"price" json:"price" example:"50.00"`
}

// UnitPrice returns the add-on price parsed as a decimal.
// Unparseable prices contribute zero rather than poisoning totals.
func (a Addon) UnitPrice() decimal.Decimal {
	return ParsePrice(a.Price)
}

// ParsePrice parses a decimal-formatted price string.
// Malformed input yields zero.
func ParsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
