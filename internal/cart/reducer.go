package cart

import (
	"github.com/google/uuid"

	"github.com/cakeshop/cart-service/internal/domain/model"
)

// Apply runs one transition and returns the resulting state. It is pure:
// the input state is never mutated, the returned state shares no memory
// with it, and aggregates are fully recomputed on every call.
//
// Invariants after every Apply:
//   - no two entries share a (product id, weight, flavor) merge key
//   - every retained entry and addon selection has quantity >= 1
//   - Total and ItemCount equal ComputeTotals(Items)
func Apply(state model.CartState, action Action) model.CartState {
	next := state.Clone()

	switch a := action.(type) {
	case AddItem:
		next.Items = addItem(next.Items, a.Item)
	case RemoveItem:
		next.Items = removeItem(next.Items, a.ID)
	case UpdateQuantity:
		next.Items = updateQuantity(next.Items, a.ID, a.Quantity)
	case UpdateItem:
		next.Items = patchItem(next.Items, a.ID, a.Patch)
	case AddAddon:
		next.Items = addAddon(next.Items, a.ID, a.Addon, a.Quantity)
	case Clear:
		return model.EmptyCart()
	}

	return model.Recompute(next.Items)
}

// addItem merges into the first entry matching the candidate's merge key,
// or appends the candidate at the tail with a fresh id. Merge-key
// uniqueness guarantees there is at most one match.
func addItem(items []model.CartLineItem, candidate model.CartLineItem) []model.CartLineItem {
	qty := candidate.Quantity
	if qty < 1 {
		qty = 1
	}

	for idx := range items {
		if items[idx].SameVariant(candidate) {
			// Quantity bump only: the existing entry's add-ons and
			// personalization win over the candidate's.
			items[idx].Quantity += qty
			return items
		}
	}

	item := candidate.Clone()
	item.ID = uuid.New().String()
	item.Quantity = qty
	return append(items, item)
}

func removeItem(items []model.CartLineItem, id string) []model.CartLineItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// updateQuantity sets the new quantity and drops the entry when it lands
// at or below zero. Unknown ids are a no-op.
func updateQuantity(items []model.CartLineItem, id string, quantity int) []model.CartLineItem {
	out := items[:0]
	for _, item := range items {
		if item.ID == id {
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		out = append(out, item)
	}
	return out
}

func patchItem(items []model.CartLineItem, id string, patch ItemPatch) []model.CartLineItem {
	for idx := range items {
		if items[idx].ID != id {
			continue
		}
		if patch.CustomMessage != nil {
			items[idx].CustomMessage = *patch.CustomMessage
		}
		if patch.Personalization != nil {
			p := *patch.Personalization
			items[idx].Personalization = &p
		}
		break
	}
	return items
}

func addAddon(items []model.CartLineItem, id string, addon model.Addon, quantity int) []model.CartLineItem {
	if quantity < 1 {
		quantity = 1
	}

	for idx := range items {
		if items[idx].ID != id {
			continue
		}
		for a := range items[idx].Addons {
			if items[idx].Addons[a].Addon.ID == addon.ID {
				items[idx].Addons[a].Quantity += quantity
				return items
			}
		}
		items[idx].Addons = append(items[idx].Addons, model.AddonSelection{
			Addon:    addon,
			Quantity: quantity,
		})
		break
	}
	return items
}
