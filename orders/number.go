package orders

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderNumber generates an order number of the form
// ORD-<base36 unix millis>-<4 random base36 chars>, upper-cased. Uniqueness
// is practical, not cryptographic: the timestamp prefix plus the random
// suffix make collisions negligible across tens of thousands of orders.
func NewOrderNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return "ORD-" + strings.ToUpper(ts) + "-" + strings.ToUpper(string(suffix))
}
