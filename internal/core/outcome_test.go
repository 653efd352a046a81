package core

import (
	"math"
	"testing"
)

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o        Outcome
		expected string
	}{
		{OutcomeContinue, "CONTINUE"},
		{OutcomeWin, "WIN"},
		{OutcomeLose, "LOSE"},
		{Outcome(42), "UNKNOWN"},
	}
	for _, tc := range tests {
		if got := tc.o.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestRoundLatchesTerminalOutcome(t *testing.T) {
	var r Round

	if got := r.Settle(OutcomeContinue); got != OutcomeContinue {
		t.Fatalf("Settle(CONTINUE) = %v, expected CONTINUE", got)
	}
	if r.Done() {
		t.Fatal("round should not be done after CONTINUE")
	}

	if got := r.Settle(OutcomeLose); got != OutcomeLose {
		t.Fatalf("Settle(LOSE) = %v, expected LOSE", got)
	}
	if got := r.Settle(OutcomeWin); got != OutcomeLose {
		t.Errorf("Settle after LOSE = %v, expected LOSE to stay latched", got)
	}

	r.Reset()
	if r.Done() || r.Outcome() != OutcomeContinue {
		t.Errorf("Reset should return to CONTINUE, got %v", r.Outcome())
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in       string
		expected Tier
	}{
		{"EASY", TierEasy},
		{"easy", TierEasy},
		{" Hard ", TierHard},
		{"NORMAL", TierNormal},
		{"", TierNormal},
		{"legendary", TierNormal},
	}
	for _, tc := range tests {
		if got := ParseTier(tc.in); got != tc.expected {
			t.Errorf("ParseTier(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if got := (Difficulty{}).Normalized(); got != TierNormal {
		t.Errorf("zero Difficulty normalizes to %v, expected NORMAL", got)
	}
}

func TestNormalizeSpeed(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"unchanged", 1.5, 1.5},
		{"zero clamps", 0, MinSpeedMultiplier},
		{"negative clamps", -3, MinSpeedMultiplier},
		{"NaN resets", math.NaN(), 1},
		{"Inf resets", math.Inf(1), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeSpeed(tc.in); got != tc.expected {
				t.Errorf("NormalizeSpeed(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestValidStep(t *testing.T) {
	for _, dt := range []float64{0, -16, math.NaN(), math.Inf(1)} {
		if ValidStep(dt) {
			t.Errorf("ValidStep(%v) = true, expected false", dt)
		}
	}
	if !ValidStep(16.67) {
		t.Error("ValidStep(16.67) = false, expected true")
	}
}
