package models

import "testing"

// TestRPEFromRIR checks the rpe = 10 - rir conversion.
func TestRPEFromRIR(t *testing.T) {
	cases := []struct {
		rir  float64
		want float64
	}{
		{0, 10},
		{2, 8},
		{4.5, 5.5},
		{10, 0},
	}
	for _, c := range cases {
		if got := RPEFromRIR(c.rir); got != c.want {
			t.Errorf("RPEFromRIR(%v) = %v, want %v", c.rir, got, c.want)
		}
	}
}

// TestStatusTerminal checks that only completed and failed are terminal.
func TestStatusTerminal(t *testing.T) {
	if StatusActive.Terminal() || StatusProcessing.Terminal() {
		t.Error("active/processing reported terminal")
	}
	if !StatusCompleted.Terminal() || !StatusFailed.Terminal() {
		t.Error("completed/failed not reported terminal")
	}
}
