package cart

import (
	"sort"
	"strings"
)

// Kind discriminates the two cart line variants.
type Kind string

const (
	KindMeal  Kind = "meal"
	KindDrink Kind = "drink"
)

// AddOn is an optional priced ingredient attached to a meal line.
type AddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Line is one entry of the order in progress. BasePrice already includes the
// cost of the selected add-ons. Quantity is always >= 1 while the line is
// stored.
type Line struct {
	Kind           Kind    `json:"kind"`
	ProductID      string  `json:"product_id"`
	DisplayName    string  `json:"display_name"`
	BasePrice      float64 `json:"base_price"`
	Quantity       int     `json:"quantity"`
	ImageRef       string  `json:"image_ref,omitempty"`
	SelectedAddOns []AddOn `json:"selected_add_ons,omitempty"`
	CategorySlug   string  `json:"category_slug,omitempty"`
}

// Identity is what makes two lines the same entry: same kind, same product
// and the exact same add-on set. Add-on order never matters.
type Identity struct {
	Kind      Kind
	ProductID string
	AddOnKey  string
}

func addOnKey(addOns []AddOn) string {
	ids := make([]string, 0, len(addOns))
	for _, a := range addOns {
		ids = append(ids, a.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// IdentityOf computes the identity for a kind/product/add-on combination.
// Drinks never carry add-ons, so any are ignored.
func IdentityOf(kind Kind, productID string, addOns []AddOn) Identity {
	if kind == KindDrink {
		addOns = nil
	}
	return Identity{Kind: kind, ProductID: productID, AddOnKey: addOnKey(addOns)}
}

// IdentityOfIDs is IdentityOf for callers that only know the add-on ids.
func IdentityOfIDs(kind Kind, productID string, addOnIDs []string) Identity {
	if kind == KindDrink {
		addOnIDs = nil
	}
	ids := append([]string(nil), addOnIDs...)
	sort.Strings(ids)
	return Identity{Kind: kind, ProductID: productID, AddOnKey: strings.Join(ids, ",")}
}

// Identity returns the line's identity.
func (l Line) Identity() Identity {
	return IdentityOf(l.Kind, l.ProductID, l.SelectedAddOns)
}

// Candidate is the input to Add: a line without a quantity yet. BasePrice
// must already include the selected add-on cost.
type Candidate struct {
	Kind           Kind
	ProductID      string
	DisplayName    string
	BasePrice      float64
	ImageRef       string
	SelectedAddOns []AddOn
	CategorySlug   string
}

// Totals is the aggregate view of a cart.
type Totals struct {
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
}

// Cart holds the cart lines for one active session. It is a single-actor
// structure; callers serialize access to it.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add merges the candidate into an existing line when the identity matches
// exactly (quantity +1), otherwise appends a new line with quantity 1.
func (c *Cart) Add(cand Candidate) {
	if cand.Kind == KindDrink {
		cand.SelectedAddOns = nil
		cand.CategorySlug = ""
	}
	id := IdentityOf(cand.Kind, cand.ProductID, cand.SelectedAddOns)
	for i := range c.lines {
		if c.lines[i].Identity() == id {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		Kind:           cand.Kind,
		ProductID:      cand.ProductID,
		DisplayName:    cand.DisplayName,
		BasePrice:      cand.BasePrice,
		Quantity:       1,
		ImageRef:       cand.ImageRef,
		SelectedAddOns: append([]AddOn(nil), cand.SelectedAddOns...),
		CategorySlug:   cand.CategorySlug,
	})
}

// SetQuantity sets the matching line's quantity to exactly n. A value of
// zero or less removes the line. Unknown identities are a no-op.
func (c *Cart) SetQuantity(id Identity, n int) {
	if n <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].Identity() == id {
			c.lines[i].Quantity = n
			return
		}
	}
}

// Remove deletes the line whose identity matches exactly. Unknown identities
// are a no-op.
func (c *Cart) Remove(id Identity) {
	for i := range c.lines {
		if c.lines[i].Identity() == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a confirmed successful order
// submission.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a snapshot copy of the cart lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	for i := range out {
		out[i].SelectedAddOns = append([]AddOn(nil), out[i].SelectedAddOns...)
	}
	return out
}

// Totals reports the item count and the subtotal over all lines.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, l := range c.lines {
		t.ItemCount += l.Quantity
		t.Subtotal += EffectivePrice(l) * float64(l.Quantity)
	}
	return t
}
