// Package registry provides a global registry of grid topologies.
// Grid shapes register themselves in init() functions, allowing the engine
// and the CLI to look shapes up by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wirelight/internal/core"
)

// Topology describes the geometry of a grid shape.
// Implementations hold no per-grid state; the engine owns cells and wiring.
type Topology interface {
	// ID returns a unique identifier for this shape (e.g., "square", "hex").
	// Used for CLI flags, config files and run records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Directions returns the number of stub directions per cell.
	// Direction indices run clockwise from 0 to Directions()-1.
	Directions() int

	// DirName returns the lowercase name of a direction.
	DirName(d core.Dir) string

	// ParseDir maps a direction name back to its index.
	ParseDir(name string) (core.Dir, bool)

	// Neighbor returns the coordinate one step from c in direction d.
	// The result may lie outside the grid; callers check bounds.
	Neighbor(c core.Coord, d core.Dir) core.Coord

	// Axis classifies a direction as horizontal or vertical for edge-weight bias.
	Axis(d core.Dir) core.Axis

	// DefaultWeight returns the unbiased maximum edge weight for a grid
	// with the given number of cells.
	DefaultWeight(cells int) int
}

// TopologyInfo contains metadata about a registered topology.
type TopologyInfo struct {
	ID         string
	Title      string
	Directions int
}

// Factory is a function that creates a topology.
type Factory func() Topology

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]TopologyInfo)
	mu        sync.RWMutex
)

// Register adds a topology factory to the registry.
// Typically called from a topology's init() function.
// Panics if a topology with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: topology %q already registered", id))
	}

	factories[id] = f

	t := f()
	infos[id] = TopologyInfo{ID: id, Title: t.Title(), Directions: t.Directions()}
}

// List returns information about all registered topologies, sorted by ID.
func List() []TopologyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TopologyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a topology by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Topology, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown topology %q", id)
	}

	return f(), nil
}

// Exists checks if a topology with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
