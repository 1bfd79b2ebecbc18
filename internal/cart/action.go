// Package cart implements the cart state machine: a pure reducer over
// CartState plus the serialization used for the durable per-session slot.
package cart

import (
	"github.com/cakeshop/cart-service/internal/domain/model"
)

// Action is a named cart transition. All actions are total: malformed or
// unknown item ids degrade to no-ops, never errors.
type Action interface {
	// Name identifies the action for logging and metrics.
	Name() string
}

// AddItem inserts a candidate line item (no id yet). If the cart already
// holds an entry with the same (product id, weight, flavor) merge key, only
// the quantity is summed; the candidate's add-ons and personalization are
// discarded so a quantity bump never overwrites an existing customization.
type AddItem struct {
	Item model.CartLineItem
}

// RemoveItem deletes the entry with the given id if present.
type RemoveItem struct {
	ID string
}

// UpdateQuantity sets the quantity of the entry with the given id.
// A quantity of zero or below removes the entry.
type UpdateQuantity struct {
	ID       string
	Quantity int
}

// ItemPatch is the shallow-merge payload for UpdateItem. Nil fields are
// left untouched. Merge-key and price fields are deliberately absent: a
// patch can never break line-item uniqueness or totals.
type ItemPatch struct {
	CustomMessage   *string
	Personalization *model.Personalization
}

// UpdateItem shallow-merges a patch into the entry with the given id.
type UpdateItem struct {
	ID    string
	Patch ItemPatch
}

// AddAddon attaches an add-on to the entry with the given id. An existing
// entry for the same addon id has its quantity incremented instead of being
// duplicated.
type AddAddon struct {
	ID       string
	Addon    model.Addon
	Quantity int
}

// Clear resets the cart to the canonical empty state.
type Clear struct{}

func (AddItem) Name() string        { return "add_item" }
func (RemoveItem) Name() string     { return "remove_item" }
func (UpdateQuantity) Name() string { return "update_quantity" }
func (UpdateItem) Name() string     { return "update_item" }
func (AddAddon) Name() string       { return "add_addon" }
func (Clear) Name() string          { return "clear_cart" }
