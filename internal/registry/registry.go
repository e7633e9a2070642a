// Package registry keeps the factories of the playable variants.
// Variants register themselves in init() so the CLI, the menu and the SSH
// server can list and create them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/gridcraft/internal/core"
)

// Game is what the platform drives. Implementations hold no terminal or
// Bubble Tea state; the platform maps keys to actions, runs the fixed-rate
// tick loop and paints the screen buffer.
type Game interface {
	// ID is the stable identifier used on the command line, in config file
	// names and as the score key (e.g. "gridcraft").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new round. Called once before the first Step and again
	// on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick with the actions pressed
	// since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. It may be called more often
	// than Step.
	Render(dst *core.Screen)

	// State returns the HUD-level state (score, game over, paused).
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// IDs returns the registered IDs sorted.
func IDs() []string {
	games := List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (available: %s)", id, strings.Join(IDs(), ", "))
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
