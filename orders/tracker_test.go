package orders

import "testing"

func TestCurrentIndex(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusPending, 0},
		{StatusConfirmed, 1},
		{StatusPreparing, 2},
		{StatusReady, 3},
		{StatusOutForDelivery, 4},
		{StatusDelivered, 5},
		{StatusCompleted, 6},
		{StatusCancelled, -1},
		{Status("bogus"), -1},
		{Status(""), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := CurrentIndex(tt.status); got != tt.want {
				t.Errorf("CurrentIndex(%q) = %d, want %d", tt.status, got, tt.want)
			}
		})
	}
}

func TestStepProgression(t *testing.T) {
	// An order that has reached "preparing" sits at index 2: steps 0..2 are
	// completed, step 2 is the active one, everything beyond is untouched.
	s := StatusPreparing
	for i := range Progression {
		wantCompleted := i <= 2
		if got := StepCompleted(s, i); got != wantCompleted {
			t.Errorf("StepCompleted(%q, %d) = %v, want %v", s, i, got, wantCompleted)
		}
		wantActive := i == 2
		if got := StepActive(s, i); got != wantActive {
			t.Errorf("StepActive(%q, %d) = %v, want %v", s, i, got, wantActive)
		}
	}
}

func TestCancelledSuppressesSteps(t *testing.T) {
	for i := range Progression {
		if StepCompleted(StatusCancelled, i) {
			t.Errorf("cancelled order must not report step %d completed", i)
		}
		if StepActive(StatusCancelled, i) {
			t.Errorf("cancelled order must not report step %d active", i)
		}
	}
	for _, step := range Steps(StatusCancelled) {
		if step.Completed || step.Active {
			t.Errorf("Steps(cancelled) leaked progress: %+v", step)
		}
	}
}

func TestStepsView(t *testing.T) {
	steps := Steps(StatusConfirmed)
	if len(steps) != len(Progression) {
		t.Fatalf("expected %d steps, got %d", len(Progression), len(steps))
	}
	if !steps[0].Completed || steps[0].Active {
		t.Errorf("pending step should be completed and inactive: %+v", steps[0])
	}
	if !steps[1].Completed || !steps[1].Active {
		t.Errorf("confirmed step should be completed and active: %+v", steps[1])
	}
	if steps[2].Completed || steps[2].Active {
		t.Errorf("preparing step should be untouched: %+v", steps[2])
	}
}

func TestIsValid(t *testing.T) {
	for _, s := range Progression {
		if !IsValid(s) {
			t.Errorf("%q should be a valid status", s)
		}
	}
	if !IsValid(StatusCancelled) {
		t.Error("cancelled should be a valid status")
	}
	if IsValid(Status("shipped")) {
		t.Error("unknown status must be invalid")
	}
}
