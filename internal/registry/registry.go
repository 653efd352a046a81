// Package registry provides a global registry for microgame factories.
// Games register themselves in init() functions, allowing hosts
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/microarcade/internal/core"
	"github.com/vovakirdan/microarcade/internal/input"
)

// Microgame is the lifecycle contract every microgame implements.
// Games contain pure logic with no host dependencies (no Bubble Tea, no Ebitengine).
// The host handles input delivery, timing, rendering and the round timeout.
type Microgame interface {
	// ID returns a unique identifier for this game (e.g., "dodge", "water").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Instruction is the short imperative shown to the player at round start.
	Instruction() string

	// WinOnTimeout reports whether surviving until the round timer expires counts as a win.
	// The game never consults it; the host does.
	WinOnTimeout() bool

	// Init resets entities, counters and timers for a new round.
	// Calling it twice in a row yields the same state as calling it once.
	Init(speedMultiplier float64, diff core.Difficulty)

	// Update advances the simulation by dtMS milliseconds of wall time.
	Update(dtMS float64) core.Outcome

	// Render draws the current state. It never mutates simulation state.
	Render(dst core.Painter)

	// Duration is the suggested round length for the current tier.
	Duration() time.Duration

	// Attach subscribes the game to pointer events from hub.
	Attach(hub *input.Hub)

	// Detach removes the subscription made by Attach.
	Detach()
}

// Scorer is implemented by games that expose round progress for the HUD and results.
type Scorer interface {
	// Score returns the progress counter and the target; target is 0 when there is none.
	Score() (current, target int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Instruction string
}

// Factory creates a new microgame bound to a drawing surface.
// The seed feeds the game's random source.
type Factory func(surface core.Surface, seed int64) Microgame

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f(core.NewCanvas(800, 600), 0)
	infos[id] = GameInfo{
		ID:          id,
		Title:       g.Title(),
		Instruction: g.Instruction(),
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the sorted IDs of all registered games.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, surface core.Surface, seed int64) (Microgame, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(surface, seed), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
