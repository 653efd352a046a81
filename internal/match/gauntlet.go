package match

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/microarcade/internal/config"
	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/input"
	"github.com/vovakirdan/microarcade/internal/registry"
)

// ErrGauntletOver is returned by Next after the last round.
var ErrGauntletOver = errors.New("match: gauntlet is over")

// Options configures a Gauntlet.
type Options struct {
	Seed     int64
	Logger   *log.Logger
	Recorder *Recorder
}

// Gauntlet chains rounds over a playlist of games.
// Losing a round costs a life; the run ends when lives run out or the configured
// number of rounds has been played.
type Gauntlet struct {
	cfg      config.GauntletConfig
	ramp     *config.SpeedRamp
	surface  core.Surface
	hub      *input.Hub
	logger   *log.Logger
	recorder *Recorder

	seed     int64
	rng      *rand.Rand
	playlist []string
	order    []string

	round   int // rounds started
	lives   int
	wins    int
	current *Runner
	history []RoundResult
	over    bool

	listeners []func(Event)
}

// NewGauntlet creates a gauntlet. An empty playlist means every registered game.
func NewGauntlet(cfg config.GauntletConfig, surface core.Surface, hub *input.Hub, opts Options) (*Gauntlet, error) {
	playlist := cfg.Playlist
	if len(playlist) == 0 {
		playlist = registry.IDs()
	}
	if len(playlist) == 0 {
		return nil, errors.New("match: no games registered")
	}
	for _, id := range playlist {
		if !registry.Exists(id) {
			return nil, fmt.Errorf("match: unknown game %q in playlist", id)
		}
	}

	lives := cfg.Lives
	if lives <= 0 {
		lives = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Gauntlet{
		cfg:      cfg,
		ramp:     config.NewSpeedRamp(cfg.Speed),
		surface:  surface,
		hub:      hub,
		logger:   logger,
		recorder: opts.Recorder,
		seed:     opts.Seed,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		playlist: append([]string(nil), playlist...),
		lives:    lives,
	}, nil
}

// Subscribe registers fn to receive gauntlet events.
func (g *Gauntlet) Subscribe(fn func(Event)) {
	g.listeners = append(g.listeners, fn)
}

func (g *Gauntlet) emit(e Event) {
	for _, fn := range g.listeners {
		fn(e)
	}
}

// nextGameID returns the game for the upcoming round, reshuffling at the start of each pass.
func (g *Gauntlet) nextGameID() string {
	i := g.round % len(g.playlist)
	if i == 0 {
		g.order = append(g.order[:0], g.playlist...)
		if g.cfg.Shuffle {
			g.rng.Shuffle(len(g.order), func(a, b int) {
				g.order[a], g.order[b] = g.order[b], g.order[a]
			})
		}
	}
	return g.order[i]
}

// Next starts the next round and returns its runner.
// The previous round, if still running, is stopped first.
func (g *Gauntlet) Next() (*Runner, error) {
	if g.over {
		return nil, ErrGauntletOver
	}
	if g.current != nil && !g.current.Done() {
		g.current.Stop()
		g.record()
		if g.over {
			return nil, ErrGauntletOver
		}
	}

	id := g.nextGameID()
	game, err := registry.Create(id, g.surface, g.seed+int64(g.round))
	if err != nil {
		return nil, fmt.Errorf("match: start round %d: %w", g.round, err)
	}

	tier := g.cfg.TierFor(g.round)
	speed := g.ramp.Multiplier(g.round, g.wins)

	r := NewRunner(game, g.hub, g.logger, g.recorder)
	r.index = g.round
	roundID := r.Start(speed, core.DifficultyOf(tier))

	g.current = r
	g.round++

	g.emit(RoundStartedEvent{
		Index:       r.index,
		RoundID:     roundID,
		GameID:      id,
		Title:       game.Title(),
		Instruction: game.Instruction(),
		Tier:        tier,
		Speed:       r.speed,
		Duration:    game.Duration(),
	})

	return r, nil
}

// Advance steps the current round. When it ends, the result is recorded,
// lives are updated and events are emitted.
func (g *Gauntlet) Advance(dtMS float64) core.Outcome {
	if g.current == nil {
		return core.OutcomeContinue
	}
	if g.current.Done() {
		return g.current.Outcome()
	}

	out := g.current.Advance(dtMS)
	if g.current.Done() {
		g.record()
	}
	return out
}

// record books the current round's result.
func (g *Gauntlet) record() {
	res, ok := g.current.Result()
	if !ok {
		return
	}
	g.history = append(g.history, res)

	if res.Won() {
		g.wins++
	} else {
		g.lives--
	}

	g.emit(RoundEndedEvent{Result: res, Lives: g.lives})

	if g.lives <= 0 || (g.cfg.Rounds > 0 && g.round >= g.cfg.Rounds) {
		g.over = true
		g.current.game.Detach()
		g.logger.Info("gauntlet over", "rounds", g.round, "wins", g.wins, "lives", g.lives)
		g.emit(GauntletOverEvent{Rounds: g.round, Wins: g.wins, Lives: g.lives})
	}
}

// Stop ends the gauntlet. A round still running is recorded as aborted.
func (g *Gauntlet) Stop() {
	if g.over {
		return
	}
	if g.current != nil && !g.current.Done() {
		g.current.Stop()
		g.record()
	}
	if !g.over {
		g.over = true
		g.emit(GauntletOverEvent{Rounds: g.round, Wins: g.wins, Lives: g.lives})
	}
}

// Render draws the current round.
func (g *Gauntlet) Render(dst core.Painter) {
	if g.current != nil {
		g.current.Render(dst)
	}
}

// Current returns the runner of the latest round, or nil before the first.
func (g *Gauntlet) Current() *Runner { return g.current }

// Over reports whether the gauntlet has ended.
func (g *Gauntlet) Over() bool { return g.over }

// Round returns the number of rounds started.
func (g *Gauntlet) Round() int { return g.round }

// Lives returns the remaining lives.
func (g *Gauntlet) Lives() int { return g.lives }

// Wins returns the number of rounds won.
func (g *Gauntlet) Wins() int { return g.wins }

// History returns the results of finished rounds in order.
func (g *Gauntlet) History() []RoundResult {
	return append([]RoundResult(nil), g.history...)
}
