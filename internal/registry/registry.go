// Package registry maps mode ids to game factories. Modes register
// themselves in init() so the front ends can list and create them without
// importing every mode directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/uncolored-squares/internal/core"
)

// Game is what the front ends drive. Implementations hold no terminal state;
// the platform owns timing, key mapping and drawing.
type Game interface {
	// ID returns the mode id used on the command line and in the score table.
	ID() string

	// Title returns a display name.
	Title() string

	// Reset starts a fresh game. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score and game-over status.
	State() core.GameState
}

// Closer is implemented by games that run background work and must be
// released when the front end is done with them.
type Closer interface {
	Close()
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a mode. Panics if the id is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{factory: f, info: info}
}

// List returns all registered modes, sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata of a registered mode.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a mode by id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Release closes g if it holds background resources.
func Release(g Game) {
	if c, ok := g.(Closer); ok {
		c.Close()
	}
}
