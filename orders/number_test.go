package orders

import (
	"regexp"
	"testing"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{4}$`)

func TestOrderNumberShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := NewOrderNumber()
		if !orderNumberPattern.MatchString(n) {
			t.Fatalf("order number %q does not match ORD-<base36 ts>-<4 base36 chars>", n)
		}
	}
}

func TestOrderNumberCollisions(t *testing.T) {
	const generations = 10000
	seen := make(map[string]bool, generations)
	collisions := 0
	for i := 0; i < generations; i++ {
		n := NewOrderNumber()
		if seen[n] {
			collisions++
		}
		seen[n] = true
	}
	// A tight loop can land every generation in one millisecond, leaving
	// only the 36^4 suffix to separate them. The birthday bound puts the
	// expected collision count for such a burst near n^2/(2*36^4), about 30
	// here; allow double that so timing noise cannot fail the sweep.
	maxCollisions := generations * generations / (36 * 36 * 36 * 36)
	if collisions > maxCollisions {
		t.Errorf("%d collisions across %d generations exceeds the %d allowed by the suffix space", collisions, generations, maxCollisions)
	}
}
