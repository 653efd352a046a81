package match

import (
	"time"

	"github.com/vovakirdan/microarcade/internal/core"
)

// Event is emitted by a Gauntlet as rounds start and end.
type Event interface {
	gauntletEvent()
}

// RoundStartedEvent is sent after a round has been initialized.
type RoundStartedEvent struct {
	Index       int
	RoundID     RoundID
	GameID      string
	Title       string
	Instruction string
	Tier        core.Tier
	Speed       float64
	Duration    time.Duration
}

func (RoundStartedEvent) gauntletEvent() {}

// RoundEndedEvent is sent when a round reaches its outcome.
type RoundEndedEvent struct {
	Result RoundResult
	Lives  int // lives left after this round
}

func (RoundEndedEvent) gauntletEvent() {}

// GauntletOverEvent is sent once, after the last round.
type GauntletOverEvent struct {
	Rounds int
	Wins   int
	Lives  int
}

func (GauntletOverEvent) gauntletEvent() {}
