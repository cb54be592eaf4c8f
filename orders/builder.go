package orders

import (
	"context"
	"strings"

	"go-ordering-storefront/cart"
)

// Catalog resolves the default (always included) ingredients of a meal at
// submission time.
type Catalog interface {
	DefaultIngredients(ctx context.Context, productID string) ([]Ingredient, error)
}

// CheckoutDetails carries the customer and checkout fields entered at
// submission.
type CheckoutDetails struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	PaymentMethod   string
	DeliveryMethod  string
	Notes           string
	// DeliveryFeeOverride replaces the configured delivery fee when set.
	DeliveryFeeOverride *float64
}

// DeliveryMethodDelivery selects the configured delivery fee; every other
// method (pickup) ships free.
const (
	DeliveryMethodPickup   = "pickup"
	DeliveryMethodDelivery = "delivery"
)

// Payload is the submission-ready order record, normalized across the meal
// and drink line variants.
type Payload struct {
	OrderNumber     string     `json:"order_number"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email,omitempty"`
	CustomerPhone   string     `json:"customer_phone,omitempty"`
	CustomerAddress string     `json:"customer_address,omitempty"`
	Items           []LineItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	DeliveryFee     float64    `json:"delivery_fee"`
	Total           float64    `json:"total"`
	PaymentMethod   string     `json:"payment_method"`
	DeliveryMethod  string     `json:"delivery_method"`
	Notes           string     `json:"notes,omitempty"`
}

// Builder turns a cart snapshot into a submission payload.
type Builder struct {
	catalog     Catalog
	deliveryFee float64
}

func NewBuilder(catalog Catalog, deliveryFee float64) *Builder {
	return &Builder{catalog: catalog, deliveryFee: deliveryFee}
}

// Build validates and assembles the order payload. It performs no network
// call itself; the catalog lookup is best-effort and a failed lookup leaves
// the item without default ingredients rather than aborting the checkout.
func (b *Builder) Build(ctx context.Context, lines []cart.Line, details CheckoutDetails) (*Payload, error) {
	if strings.TrimSpace(details.CustomerName) == "" {
		return nil, ErrNoCustomerName
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Validation completes on the cart lines alone, before any catalog
	// lookup runs.
	var subtotal float64
	for _, line := range lines {
		subtotal += line.BasePrice * float64(line.Quantity)
	}

	fee := 0.0
	if details.DeliveryMethod == DeliveryMethodDelivery {
		fee = b.deliveryFee
		if details.DeliveryFeeOverride != nil {
			fee = *details.DeliveryFeeOverride
		}
	}

	total := subtotal + fee
	if total <= 0 {
		return nil, ErrNonPositiveTotal
	}

	items := make([]LineItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, b.buildItem(ctx, line))
	}

	return &Payload{
		OrderNumber:     NewOrderNumber(),
		CustomerName:    details.CustomerName,
		CustomerEmail:   details.CustomerEmail,
		CustomerPhone:   details.CustomerPhone,
		CustomerAddress: details.CustomerAddress,
		Items:           items,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Total:           total,
		PaymentMethod:   details.PaymentMethod,
		DeliveryMethod:  details.DeliveryMethod,
		Notes:           details.Notes,
	}, nil
}

func (b *Builder) buildItem(ctx context.Context, line cart.Line) LineItem {
	item := LineItem{
		Kind:        line.Kind,
		ProductID:   line.ProductID,
		ProductName: line.DisplayName,
		Quantity:    line.Quantity,
		UnitPrice:   line.BasePrice,
		TotalPrice:  line.BasePrice * float64(line.Quantity),
	}
	if line.Kind != cart.KindMeal {
		return item
	}

	// Recover the catalog price of the meal by backing out the add-on cost
	// folded into the stored base price.
	base := line.BasePrice
	selected := make([]Ingredient, 0, len(line.SelectedAddOns))
	for _, a := range line.SelectedAddOns {
		base -= a.Price
		selected = append(selected, Ingredient{ID: a.ID, Name: a.Name, Price: a.Price})
	}
	item.BaseUnitPrice = base
	item.SelectedIngredients = selected

	if b.catalog != nil {
		if defaults, err := b.catalog.DefaultIngredients(ctx, line.ProductID); err == nil {
			item.DefaultIngredients = defaults
		}
	}
	return item
}
