package orders

import (
	"testing"

	"go-ordering-storefront/cart"
)

func TestParseStoredItems(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "empty value", raw: "", want: 0},
		{name: "malformed json", raw: "{not json", want: 0},
		{name: "wrong shape", raw: `{"kind":"meal"}`, want: 0},
		{name: "null array", raw: "null", want: 0},
		{name: "valid array", raw: `[{"kind":"drink","product_id":"d1","quantity":1,"unit_price":12.5,"total_price":12.5}]`, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := ParseStoredItems(tt.raw)
			if items == nil {
				t.Fatal("ParseStoredItems must never return nil")
			}
			if len(items) != tt.want {
				t.Errorf("got %d items, want %d", len(items), tt.want)
			}
		})
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	items := []LineItem{
		{
			Kind:                cart.KindMeal,
			ProductID:           "m1",
			ProductName:         "Roll A",
			Quantity:            2,
			UnitPrice:           45,
			BaseUnitPrice:       42,
			TotalPrice:          90,
			DefaultIngredients:  []Ingredient{{ID: "i1", Name: "Rice"}},
			SelectedIngredients: []Ingredient{{ID: "a1", Name: "Spicy Mayo", Price: 3}},
		},
	}

	raw, err := EncodeItems(items)
	if err != nil {
		t.Fatalf("EncodeItems failed: %v", err)
	}

	parsed := ParseStoredItems(raw)
	if len(parsed) != 1 {
		t.Fatalf("expected 1 item back, got %d", len(parsed))
	}
	got := parsed[0]
	if got.ProductName != "Roll A" || got.TotalPrice != 90 || got.BaseUnitPrice != 42 {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if len(got.DefaultIngredients) != 1 || len(got.SelectedIngredients) != 1 {
		t.Errorf("round trip lost ingredients: %+v", got)
	}
}
