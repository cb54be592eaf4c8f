package cart

// Draft accumulates the choices made while composing a single line: the
// product under configuration, the toggled add-ons and the quantity. It is
// passed explicitly instead of living as ambient view state, so the same
// composition logic works without any rendering context.
type Draft struct {
	Kind         Kind
	ProductID    string
	DisplayName  string
	ProductPrice float64
	ImageRef     string
	CategorySlug string

	addOns   []AddOn
	quantity int
}

// NewDraft starts a draft for one product with quantity 1 and no add-ons.
func NewDraft(kind Kind, productID, displayName string, productPrice float64) *Draft {
	return &Draft{
		Kind:         kind,
		ProductID:    productID,
		DisplayName:  displayName,
		ProductPrice: productPrice,
		quantity:     1,
	}
}

// Toggle adds the add-on if absent and removes it if present, keyed by id.
// Drafts for drinks ignore add-ons entirely.
func (d *Draft) Toggle(a AddOn) {
	if d.Kind == KindDrink {
		return
	}
	for i := range d.addOns {
		if d.addOns[i].ID == a.ID {
			d.addOns = append(d.addOns[:i], d.addOns[i+1:]...)
			return
		}
	}
	d.addOns = append(d.addOns, a)
}

// SetQuantity sets the draft quantity, floored at 1.
func (d *Draft) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	d.quantity = n
}

func (d *Draft) Quantity() int {
	return d.quantity
}

func (d *Draft) AddOns() []AddOn {
	return append([]AddOn(nil), d.addOns...)
}

// Candidate folds the product price and the chosen add-on prices into the
// inclusive base price and produces the Add input.
func (d *Draft) Candidate() Candidate {
	base := d.ProductPrice
	for _, a := range d.addOns {
		base += a.Price
	}
	return Candidate{
		Kind:           d.Kind,
		ProductID:      d.ProductID,
		DisplayName:    d.DisplayName,
		BasePrice:      base,
		ImageRef:       d.ImageRef,
		SelectedAddOns: append([]AddOn(nil), d.addOns...),
		CategorySlug:   d.CategorySlug,
	}
}
