package orders

import (
	"context"
	"errors"
	"testing"

	"go-ordering-storefront/cart"
)

type stubCatalog struct {
	defaults map[string][]Ingredient
	err      error
	calls    int
}

func (s *stubCatalog) DefaultIngredients(ctx context.Context, productID string) ([]Ingredient, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.defaults[productID], nil
}

func testLines() []cart.Line {
	return []cart.Line{
		{
			Kind:           cart.KindMeal,
			ProductID:      "m1",
			DisplayName:    "Roll A",
			BasePrice:      45,
			Quantity:       2,
			SelectedAddOns: []cart.AddOn{{ID: "a1", Name: "Spicy Mayo", Price: 3}},
			CategorySlug:   "rolls",
		},
		{
			Kind:        cart.KindDrink,
			ProductID:   "d1",
			DisplayName: "Soda",
			BasePrice:   12.50,
			Quantity:    1,
		},
	}
}

func testDetails() CheckoutDetails {
	return CheckoutDetails{
		CustomerName:   "John Doe",
		PaymentMethod:  "cash",
		DeliveryMethod: DeliveryMethodPickup,
	}
}

func TestBuildValidation(t *testing.T) {
	b := NewBuilder(&stubCatalog{}, 5)

	tests := []struct {
		name    string
		lines   []cart.Line
		details CheckoutDetails
		wantErr error
	}{
		{
			name:    "missing customer name",
			lines:   testLines(),
			details: CheckoutDetails{CustomerName: "   ", DeliveryMethod: DeliveryMethodPickup},
			wantErr: ErrNoCustomerName,
		},
		{
			name:    "empty cart",
			lines:   nil,
			details: testDetails(),
			wantErr: ErrEmptyCart,
		},
		{
			name: "zero total",
			lines: []cart.Line{
				{Kind: cart.KindMeal, ProductID: "m1", DisplayName: "Comp", BasePrice: 0, Quantity: 1},
			},
			details: testDetails(),
			wantErr: ErrNonPositiveTotal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Build(context.Background(), tt.lines, tt.details)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if !IsValidationError(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestBuildRejectsBeforeCatalogLookup(t *testing.T) {
	catalog := &stubCatalog{}
	b := NewBuilder(catalog, 0)

	lines := []cart.Line{
		{Kind: cart.KindMeal, ProductID: "m1", DisplayName: "Comp", BasePrice: 0, Quantity: 3},
	}
	_, err := b.Build(context.Background(), lines, testDetails())
	if !errors.Is(err, ErrNonPositiveTotal) {
		t.Fatalf("Build() error = %v, want %v", err, ErrNonPositiveTotal)
	}
	if catalog.calls != 0 {
		t.Errorf("validation must complete before any catalog lookup, got %d calls", catalog.calls)
	}
}

func TestBuildPickupScenario(t *testing.T) {
	catalog := &stubCatalog{defaults: map[string][]Ingredient{
		"m1": {{ID: "i1", Name: "Rice"}, {ID: "i2", Name: "Nori"}},
	}}
	b := NewBuilder(catalog, 5)

	payload, err := b.Build(context.Background(), testLines(), testDetails())
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if payload.Subtotal != 102.50 {
		t.Errorf("expected subtotal 102.50, got %v", payload.Subtotal)
	}
	if payload.DeliveryFee != 0 {
		t.Errorf("pickup must ship free, got fee %v", payload.DeliveryFee)
	}
	if payload.Total != 102.50 {
		t.Errorf("expected total 102.50, got %v", payload.Total)
	}

	meal := payload.Items[0]
	if meal.UnitPrice != 45 || meal.TotalPrice != 90 {
		t.Errorf("meal line: unit %v total %v, want 45/90", meal.UnitPrice, meal.TotalPrice)
	}
	if meal.BaseUnitPrice != 42 {
		t.Errorf("expected recovered base price 42, got %v", meal.BaseUnitPrice)
	}
	if len(meal.DefaultIngredients) != 2 {
		t.Errorf("expected default ingredient snapshot, got %v", meal.DefaultIngredients)
	}
	if len(meal.SelectedIngredients) != 1 || meal.SelectedIngredients[0].Name != "Spicy Mayo" {
		t.Errorf("expected selected add-ons on meal line, got %v", meal.SelectedIngredients)
	}

	drink := payload.Items[1]
	if drink.Kind != cart.KindDrink || drink.UnitPrice != 12.50 || drink.TotalPrice != 12.50 {
		t.Errorf("unexpected drink line: %+v", drink)
	}
	if len(drink.DefaultIngredients) != 0 || len(drink.SelectedIngredients) != 0 {
		t.Errorf("drink lines carry no ingredients: %+v", drink)
	}
}

func TestBuildDeliveryFee(t *testing.T) {
	override := 2.5
	tests := []struct {
		name     string
		method   string
		override *float64
		wantFee  float64
	}{
		{name: "pickup is free", method: DeliveryMethodPickup, wantFee: 0},
		{name: "delivery uses configured fee", method: DeliveryMethodDelivery, wantFee: 5},
		{name: "delivery honors override", method: DeliveryMethodDelivery, override: &override, wantFee: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(&stubCatalog{}, 5)
			details := testDetails()
			details.DeliveryMethod = tt.method
			details.DeliveryFeeOverride = tt.override

			payload, err := b.Build(context.Background(), testLines(), details)
			if err != nil {
				t.Fatalf("Build() failed: %v", err)
			}
			if payload.DeliveryFee != tt.wantFee {
				t.Errorf("fee = %v, want %v", payload.DeliveryFee, tt.wantFee)
			}
			if payload.Total != payload.Subtotal+tt.wantFee {
				t.Errorf("total %v != subtotal %v + fee %v", payload.Total, payload.Subtotal, tt.wantFee)
			}
		})
	}
}

func TestBuildCatalogFailureIsNotFatal(t *testing.T) {
	b := NewBuilder(&stubCatalog{err: errors.New("catalog down")}, 5)

	payload, err := b.Build(context.Background(), testLines(), testDetails())
	if err != nil {
		t.Fatalf("catalog failure must not abort the checkout: %v", err)
	}
	if len(payload.Items[0].DefaultIngredients) != 0 {
		t.Errorf("expected no default ingredients on lookup failure, got %v", payload.Items[0].DefaultIngredients)
	}
}
