package orders

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCompleted      Status = "completed"

	// StatusCancelled is absorbing: reachable from any state, no outgoing
	// transitions, and it suppresses all step-progress queries.
	StatusCancelled Status = "cancelled"
)

// Progression is the strict forward order of the non-terminal states used to
// render fulfillment progress.
var Progression = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCompleted,
}

// IsValid reports whether s is a known lifecycle status.
func IsValid(s Status) bool {
	if s == StatusCancelled {
		return true
	}
	return CurrentIndex(s) >= 0
}

// CurrentIndex returns the position of s in the progression, or -1 when s is
// cancelled or unrecognized.
func CurrentIndex(s Status) int {
	if s == StatusCancelled {
		return -1
	}
	for i, st := range Progression {
		if st == s {
			return i
		}
	}
	return -1
}

// StepCompleted reports whether progression step i is done for an order in
// status s. Always false once the order is cancelled.
func StepCompleted(s Status, i int) bool {
	idx := CurrentIndex(s)
	return idx >= 0 && i <= idx
}

// StepActive reports whether progression step i is the current one. Always
// false once the order is cancelled.
func StepActive(s Status, i int) bool {
	idx := CurrentIndex(s)
	return idx >= 0 && i == idx
}

// Step is one row of the tracking display.
type Step struct {
	Status    Status `json:"status"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
}

// Steps renders the whole progression for status s. For a cancelled order
// every step reports neither completed nor active; the caller shows a single
// terminal cancelled state instead.
func Steps(s Status) []Step {
	steps := make([]Step, len(Progression))
	for i, st := range Progression {
		steps[i] = Step{
			Status:    st,
			Completed: StepCompleted(s, i),
			Active:    StepActive(s, i),
		}
	}
	return steps
}
