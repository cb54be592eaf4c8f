package cart

import "strings"

// Labels attached to free salad lines on the storefront.
const (
	LabelIncludedWithMain    = "included with a main"
	LabelIncludedAmongSalads = "included among salads"
)

// EffectivePrice is the unit price of a line. BasePrice already folds in the
// selected add-on cost at the time the line was created.
func EffectivePrice(l Line) float64 {
	return l.BasePrice
}

// IsFree reports whether the line costs nothing.
func IsFree(l Line) bool {
	return EffectivePrice(l) == 0
}

// isSaladFamily matches the category slug against the literal "salad" token.
// This substring match is observed storefront behavior; do not replace it
// with a product flag without product clarification.
func isSaladFamily(l Line) bool {
	return l.Kind == KindMeal && strings.Contains(l.CategorySlug, "salad")
}

// FreeLabel returns the display label for a free salad-family meal line:
// "included with a main" when the cart holds at least one non-salad meal
// line, otherwise "included among salads". It returns "" for every other
// line.
func FreeLabel(line Line, all []Line) string {
	if !IsFree(line) || !isSaladFamily(line) {
		return ""
	}
	for _, other := range all {
		if other.Kind == KindMeal && !isSaladFamily(other) {
			return LabelIncludedWithMain
		}
	}
	return LabelIncludedAmongSalads
}
