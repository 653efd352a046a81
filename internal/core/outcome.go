package core

// Outcome is the per-frame result of a microgame Update.
type Outcome int

const (
	OutcomeContinue Outcome = iota // Round still running
	OutcomeWin                     // Goal reached
	OutcomeLose                    // Goal failed (hit, timeout without WinOnTimeout)
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "CONTINUE"
	case OutcomeWin:
		return "WIN"
	case OutcomeLose:
		return "LOSE"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the outcome ends the round.
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeLose
}

// Round latches the outcome of one round.
// Once a terminal outcome is settled every later Settle returns it unchanged,
// which makes Update after WIN/LOSE a no-op.
type Round struct {
	outcome Outcome
}

// Reset returns the round to CONTINUE. Called from Init.
func (r *Round) Reset() {
	r.outcome = OutcomeContinue
}

// Done reports whether a terminal outcome has been settled.
func (r *Round) Done() bool {
	return r.outcome.Terminal()
}

// Outcome returns the current outcome.
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// Settle records o unless the round already ended, and returns the latched outcome.
func (r *Round) Settle(o Outcome) Outcome {
	if !r.outcome.Terminal() {
		r.outcome = o
	}
	return r.outcome
}
