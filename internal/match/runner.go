package match

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/input"
	"github.com/vovakirdan/microarcade/internal/registry"
)

// Runner drives a single round of one microgame.
// It is not safe for concurrent use; hosts call it from their UI loop.
type Runner struct {
	game     registry.Microgame
	hub      *input.Hub
	logger   *log.Logger
	recorder *Recorder

	id      RoundID
	index   int
	tier    core.Tier
	speed   float64
	elapsed time.Duration
	outcome core.Outcome
	result  *RoundResult
	started bool
}

// NewRunner creates a runner for game. Logger and recorder may be nil.
func NewRunner(game registry.Microgame, hub *input.Hub, logger *log.Logger, recorder *Recorder) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:     game,
		hub:      hub,
		logger:   logger,
		recorder: recorder,
	}
}

// Start attaches the game to the input hub and initializes a new round.
func (r *Runner) Start(speedMultiplier float64, diff core.Difficulty) RoundID {
	r.id = RoundID(uuid.NewString())
	r.tier = diff.Normalized()
	r.speed = core.NormalizeSpeed(speedMultiplier)
	r.elapsed = 0
	r.outcome = core.OutcomeContinue
	r.result = nil
	r.started = true

	if r.hub != nil {
		r.game.Attach(r.hub)
	}
	r.game.Init(r.speed, diff)

	r.logger.Info("round started",
		"round", r.id,
		"game", r.game.ID(),
		"tier", r.tier,
		"speed", r.speed,
		"duration", r.game.Duration(),
	)
	r.recorder.roundStarted(r.game.ID(), string(r.tier))

	return r.id
}

// Advance steps the game by dt milliseconds and applies the round timer.
// A round still in CONTINUE when its duration has elapsed ends with WIN if the
// game wins on timeout, LOSE otherwise. After the round ends Advance keeps
// returning the final outcome.
func (r *Runner) Advance(dtMS float64) core.Outcome {
	if !r.started || r.result != nil {
		return r.outcome
	}

	out := r.game.Update(dtMS)
	if core.ValidStep(dtMS) {
		r.elapsed += time.Duration(dtMS * float64(time.Millisecond))
	}

	switch {
	case out.Terminal():
		r.finish(out, EndResolved)
	case r.game.Duration() > 0 && r.elapsed >= r.game.Duration():
		if r.game.WinOnTimeout() {
			r.finish(core.OutcomeWin, EndTimeout)
		} else {
			r.finish(core.OutcomeLose, EndTimeout)
		}
	}
	return r.outcome
}

// Stop detaches the game. A round still running is recorded as an aborted loss.
func (r *Runner) Stop() {
	if r.started && r.result == nil {
		r.finish(core.OutcomeLose, EndAborted)
	}
	r.game.Detach()
}

func (r *Runner) finish(out core.Outcome, reason EndReason) {
	r.outcome = out
	r.game.Detach()

	res := RoundResult{
		ID:      r.id,
		Index:   r.index,
		GameID:  r.game.ID(),
		Tier:    r.tier,
		Speed:   r.speed,
		Outcome: out,
		Reason:  reason,
		Elapsed: r.elapsed,
	}
	res.Score, res.Target = r.Score()
	r.result = &res

	r.logger.Info("round ended",
		"round", r.id,
		"game", res.GameID,
		"outcome", out,
		"reason", reason,
		"elapsed", r.elapsed,
	)
	r.recorder.roundEnded(res)
}

// Render draws the game.
func (r *Runner) Render(dst core.Painter) {
	r.game.Render(dst)
}

// Game returns the microgame being run.
func (r *Runner) Game() registry.Microgame {
	return r.game
}

// ID returns the current round ID.
func (r *Runner) ID() RoundID {
	return r.id
}

// Outcome returns the current outcome.
func (r *Runner) Outcome() core.Outcome {
	return r.outcome
}

// Done reports whether the round has ended.
func (r *Runner) Done() bool {
	return r.result != nil
}

// Result returns the round result once the round has ended.
func (r *Runner) Result() (RoundResult, bool) {
	if r.result == nil {
		return RoundResult{}, false
	}
	return *r.result, true
}

// Elapsed returns the simulated time of the round.
func (r *Runner) Elapsed() time.Duration {
	return r.elapsed
}

// Remaining returns the time left on the round timer, never negative.
func (r *Runner) Remaining() time.Duration {
	left := r.game.Duration() - r.elapsed
	if left < 0 {
		return 0
	}
	return left
}

// Score returns the game's progress if it reports one.
func (r *Runner) Score() (int, int) {
	if s, ok := r.game.(registry.Scorer); ok {
		return s.Score()
	}
	return 0, 0
}
