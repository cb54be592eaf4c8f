package cart

import "testing"

func TestEffectivePrice(t *testing.T) {
	line := Line{Kind: KindMeal, BasePrice: 45, SelectedAddOns: []AddOn{{ID: "a1", Price: 3}}}
	if got := EffectivePrice(line); got != 45 {
		t.Errorf("effective price must be the stored inclusive base price, got %v", got)
	}
}

func TestIsFree(t *testing.T) {
	if !IsFree(Line{Kind: KindMeal, BasePrice: 0}) {
		t.Error("zero-priced line must be free")
	}
	if IsFree(Line{Kind: KindMeal, BasePrice: 0.01}) {
		t.Error("priced line must not be free")
	}
}

func TestFreeLabel(t *testing.T) {
	freeSalad := Line{Kind: KindMeal, ProductID: "s1", BasePrice: 0, CategorySlug: "side-salads", Quantity: 1}
	mainMeal := Line{Kind: KindMeal, ProductID: "m1", BasePrice: 42, CategorySlug: "rolls", Quantity: 1}
	otherSalad := Line{Kind: KindMeal, ProductID: "s2", BasePrice: 18, CategorySlug: "salads", Quantity: 1}
	drink := Line{Kind: KindDrink, ProductID: "d1", BasePrice: 12.50, Quantity: 1}

	tests := []struct {
		name string
		line Line
		all  []Line
		want string
	}{
		{
			name: "free salad next to a main",
			line: freeSalad,
			all:  []Line{freeSalad, mainMeal},
			want: LabelIncludedWithMain,
		},
		{
			name: "free salad among salads only",
			line: freeSalad,
			all:  []Line{freeSalad, otherSalad},
			want: LabelIncludedAmongSalads,
		},
		{
			name: "drinks do not count as mains",
			line: freeSalad,
			all:  []Line{freeSalad, drink},
			want: LabelIncludedAmongSalads,
		},
		{
			name: "paid salad gets no label",
			line: otherSalad,
			all:  []Line{otherSalad, mainMeal},
			want: "",
		},
		{
			name: "free non-salad gets no label",
			line: Line{Kind: KindMeal, ProductID: "m2", BasePrice: 0, CategorySlug: "rolls", Quantity: 1},
			all:  []Line{mainMeal},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FreeLabel(tt.line, tt.all); got != tt.want {
				t.Errorf("FreeLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
