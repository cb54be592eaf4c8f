package orders

import (
	"encoding/json"

	"go-ordering-storefront/cart"
)

// Ingredient is an ingredient recorded on a line item: either a default
// ingredient included with the meal or a selected add-on.
type Ingredient struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// LineItem is the immutable, submission-time record derived from a cart
// line. UnitPrice is the stored inclusive price; BaseUnitPrice is the
// recovered catalog price of a meal before add-ons.
type LineItem struct {
	Kind                cart.Kind    `json:"kind"`
	ProductID           string       `json:"product_id"`
	ProductName         string       `json:"product_name"`
	Quantity            int          `json:"quantity"`
	UnitPrice           float64      `json:"unit_price"`
	BaseUnitPrice       float64      `json:"base_unit_price,omitempty"`
	TotalPrice          float64      `json:"total_price"`
	DefaultIngredients  []Ingredient `json:"default_ingredients,omitempty"`
	SelectedIngredients []Ingredient `json:"selected_ingredients,omitempty"`
}

// EncodeItems serializes the line items into the single array value stored
// inside the order record.
func EncodeItems(items []LineItem) (string, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParseStoredItems decodes a persisted item array. A malformed value
// degrades to an empty list, never an error: old or hand-edited records must
// stay readable.
func ParseStoredItems(raw string) []LineItem {
	if raw == "" {
		return []LineItem{}
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []LineItem{}
	}
	if items == nil {
		return []LineItem{}
	}
	return items
}
