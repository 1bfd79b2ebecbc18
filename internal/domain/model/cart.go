package model

import (
	"github.com/shopspring/decimal"
)

// Personalization carries the customization payload attached to a line item
// (uploaded photo reference and its placement). The cart treats it as an
// opaque blob: stored, patched, and returned unchanged.
//
// @Description Line item personalization payload
type Personalization struct {
	ImageURL      string  `bson:"image_url,omitempty" json:"image_url,omitempty"`
	TextPosition  string  `bson:"text_position,omitempty" json:"text_position,omitempty"`
	ImagePosition string  `bson:"image_position,omitempty" json:"image_position,omitempty"`
	ImageScale    float64 `bson:"image_scale,omitempty" json:"image_scale,omitempty"`
}

// AddonSelection is one add-on entry on a line item.
// Addon identity is the addon's catalog id; re-adding the same addon
// increments Quantity instead of duplicating the entry.
type AddonSelection struct {
	Addon    Addon `bson:"addon" json:"addon"`
	Quantity int   `bson:"quantity" json:"quantity" example:"2"`
}

// CartLineItem is one distinct cart entry: a product plus its variant
// selection, personalization, and attached add-ons.
//
// The (Product.ID, Weight, Flavor) triple is the merge key: adding the same
// triple again bumps the existing entry's quantity instead of appending.
//
// @Description One cart entry with variant selection and add-ons
type CartLineItem struct {
	// ID is assigned at insertion time and is unique within the cart.
	ID string `bson:"id" json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Product is the catalog snapshot this entry was created from.
	Product Cake `bson:"product" json:"product"`
	// Quantity is always >= 1; an item driven to zero is removed.
	Quantity int    `bson:"quantity" json:"quantity" example:"1"`
	Weight   string `bson:"weight" json:"weight" example:"1kg"`
	Flavor   string `bson:"flavor" json:"flavor" example:"vanilla"`
	// CustomMessage is the optional message written on the cake.
	CustomMessage   string           `bson:"custom_message,omitempty" json:"custom_message,omitempty"`
	Personalization *Personalization `bson:"personalization,omitempty" json:"personalization,omitempty"`
	// UnitPrice is the price snapshot captured at add time; it is never
	// re-derived from the catalog.
	UnitPrice decimal.Decimal  `bson:"unit_price" json:"unit_price" swaggertype:"string" example:"500.00"`
	Addons    []AddonSelection `bson:"addons,omitempty" json:"addons,omitempty"`
}

// SameVariant reports whether other addresses the same merge key.
func (i CartLineItem) SameVariant(other CartLineItem) bool {
	return i.Product.ID == other.Product.ID &&
		i.Weight == other.Weight &&
		i.Flavor == other.Flavor
}

// LineTotal returns unit price x quantity plus the add-on subtotal for this
// entry. Add-on selections carry their own independent quantity, so the
// add-on subtotal counts once per line, not once per unit.
func (i CartLineItem) LineTotal() decimal.Decimal {
	total := i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
	for _, sel := range i.Addons {
		total = total.Add(sel.Addon.UnitPrice().Mul(decimal.NewFromInt(int64(sel.Quantity))))
	}
	return total
}

// Clone returns a deep copy of the line item, including its addon slice and
// personalization payload.
func (i CartLineItem) Clone() CartLineItem {
	out := i
	if i.Addons != nil {
		out.Addons = make([]AddonSelection, len(i.Addons))
		copy(out.Addons, i.Addons)
	}
	if i.Personalization != nil {
		p := *i.Personalization
		out.Personalization = &p
	}
	return out
}

// CartState is the authoritative cart for one session. Total and ItemCount
// are derived from Items and recomputed on every transition; they are never
// patched independently.
//
// @Description Cart snapshot: line items plus derived aggregates
type CartState struct {
	Items []CartLineItem  `bson:"items" json:"items"`
	Total decimal.Decimal `bson:"total" json:"total" swaggertype:"string" example:"1600.00"`
	// ItemCount counts units across all entries, not distinct entries.
	ItemCount int `bson:"item_count" json:"item_count" example:"3"`
}

// EmptyCart returns the canonical empty cart state.
func EmptyCart() CartState {
	return CartState{
		Items:     []CartLineItem{},
		Total:     decimal.Zero,
		ItemCount: 0,
	}
}

// ComputeTotals derives the aggregate fields from a list of line items.
// It is invoked after every mutation and on restore; aggregates are never
// incrementally patched.
func ComputeTotals(items []CartLineItem) (total decimal.Decimal, itemCount int) {
	total = decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
		itemCount += item.Quantity
	}
	return total, itemCount
}

// Recompute returns a CartState over items with freshly derived aggregates.
func Recompute(items []CartLineItem) CartState {
	if items == nil {
		items = []CartLineItem{}
	}
	total, count := ComputeTotals(items)
	return CartState{Items: items, Total: total, ItemCount: count}
}

// Clone returns a deep copy of the cart state.
func (s CartState) Clone() CartState {
	items := make([]CartLineItem, len(s.Items))
	for idx, item := range s.Items {
		items[idx] = item.Clone()
	}
	return CartState{Items: items, Total: s.Total, ItemCount: s.ItemCount}
}
