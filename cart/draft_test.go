package cart

import "testing"

func TestDraftToggle(t *testing.T) {
	d := NewDraft(KindMeal, "m1", "Roll A", 42)
	spicy := AddOn{ID: "a1", Name: "Spicy Mayo", Price: 3}

	d.Toggle(spicy)
	if got := len(d.AddOns()); got != 1 {
		t.Fatalf("expected 1 add-on after toggle on, got %d", got)
	}

	d.Toggle(spicy)
	if got := len(d.AddOns()); got != 0 {
		t.Fatalf("expected 0 add-ons after toggle off, got %d", got)
	}
}

func TestDraftCandidateFoldsAddOnCost(t *testing.T) {
	d := NewDraft(KindMeal, "m1", "Roll A", 42)
	d.Toggle(AddOn{ID: "a1", Name: "Spicy Mayo", Price: 3})

	cand := d.Candidate()
	if cand.BasePrice != 45 {
		t.Errorf("expected inclusive base price 45, got %v", cand.BasePrice)
	}
	if len(cand.SelectedAddOns) != 1 {
		t.Errorf("expected selected add-ons on candidate, got %v", cand.SelectedAddOns)
	}
}

func TestDraftQuantityFloor(t *testing.T) {
	d := NewDraft(KindMeal, "m1", "Roll A", 42)
	d.SetQuantity(0)
	if d.Quantity() != 1 {
		t.Errorf("draft quantity must never drop below 1, got %d", d.Quantity())
	}
	d.SetQuantity(4)
	if d.Quantity() != 4 {
		t.Errorf("expected quantity 4, got %d", d.Quantity())
	}
}

func TestDrinkDraftIgnoresAddOns(t *testing.T) {
	d := NewDraft(KindDrink, "d1", "Soda", 12.50)
	d.Toggle(AddOn{ID: "a1", Price: 3})

	cand := d.Candidate()
	if cand.BasePrice != 12.50 {
		t.Errorf("drink base price must stay the product price, got %v", cand.BasePrice)
	}
	if len(cand.SelectedAddOns) != 0 {
		t.Errorf("drink candidate must carry no add-ons, got %v", cand.SelectedAddOns)
	}
}
