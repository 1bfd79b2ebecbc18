package cart

import (
	"encoding/json"

	"github.com/cakeshop/cart-service/internal/domain/model"
)

// EncodeState serializes the full cart state for the durable slot.
func EncodeState(state model.CartState) ([]byte, error) {
	return json.Marshal(state)
}

// DecodeState reconstructs a cart state from a persisted slot payload.
//
// Restores are deliberately forgiving: aggregates are recomputed from the
// items rather than trusted (defends against drift from partial writes),
// and anything unreadable or missing its items array falls back to the
// canonical empty cart. Adopted items are sanitized so a foreign writer
// cannot smuggle in states the reducer could never produce. The second
// return reports whether the payload was adopted; it never surfaces an
// error because a corrupt slot must not block startup.
func DecodeState(data []byte) (model.CartState, bool) {
	if len(data) == 0 {
		return model.EmptyCart(), false
	}

	var stored struct {
		Items []model.CartLineItem `json:"items"`
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		return model.EmptyCart(), false
	}
	if stored.Items == nil {
		return model.EmptyCart(), false
	}

	return model.Recompute(sanitizeItems(stored.Items)), true
}

// sanitizeItems enforces the state invariants on restored payloads: entries
// and addon selections with quantity below one are dropped, and entries
// sharing a merge key collapse into the first occurrence (quantity summed,
// first entry's add-ons and customization win, matching AddItem merges).
func sanitizeItems(items []model.CartLineItem) []model.CartLineItem {
	out := make([]model.CartLineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}

		if len(item.Addons) > 0 {
			addons := make([]model.AddonSelection, 0, len(item.Addons))
			for _, sel := range item.Addons {
				if sel.Quantity >= 1 {
					addons = append(addons, sel)
				}
			}
			if len(addons) == 0 {
				addons = nil
			}
			item.Addons = addons
		}

		merged := false
		for idx := range out {
			if out[idx].SameVariant(item) {
				out[idx].Quantity += item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, item)
		}
	}
	return out
}
