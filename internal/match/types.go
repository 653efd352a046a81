// Package match runs microgame rounds for a host: it owns the round timer,
// turns a timeout into the game's timeout outcome, and chains rounds into a gauntlet
// with lives, a tier schedule and a speed ramp.
package match

import (
	"fmt"
	"time"

	"github.com/vovakirdan/microarcade/internal/core"
)

// RoundID uniquely identifies a round for log correlation.
type RoundID string

// EndReason describes how a round reached its outcome.
type EndReason int

const (
	// EndResolved means the game itself returned WIN or LOSE.
	EndResolved EndReason = iota

	// EndTimeout means the round timer expired and WinOnTimeout decided the outcome.
	EndTimeout

	// EndAborted means the host stopped the round early.
	EndAborted
)

// String returns a human-readable name for the end reason.
func (r EndReason) String() string {
	switch r {
	case EndResolved:
		return "resolved"
	case EndTimeout:
		return "timeout"
	case EndAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// RoundResult records a finished round.
type RoundResult struct {
	ID      RoundID
	Index   int // position in the gauntlet, 0-based
	GameID  string
	Tier    core.Tier
	Speed   float64
	Outcome core.Outcome
	Reason  EndReason
	Elapsed time.Duration
	Score   int
	Target  int // 0 when the game has no target
}

// Won reports whether the round was won.
func (r RoundResult) Won() bool {
	return r.Outcome == core.OutcomeWin
}

// ScoreText formats the score as "n/target", "n" or "-" when there is nothing to show.
func (r RoundResult) ScoreText() string {
	switch {
	case r.Target > 0:
		return fmt.Sprintf("%d/%d", r.Score, r.Target)
	case r.Score > 0:
		return fmt.Sprintf("%d", r.Score)
	default:
		return "-"
	}
}

// String returns a one-line summary of the round.
func (r RoundResult) String() string {
	return fmt.Sprintf("#%d %s %s x%.2f %s (%s) %s %.1fs",
		r.Index+1, r.GameID, r.Tier, r.Speed, r.Outcome, r.Reason, r.ScoreText(), r.Elapsed.Seconds())
}
