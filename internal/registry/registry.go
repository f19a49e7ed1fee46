// Package registry provides a global registry of playable game variants.
// Variants register themselves in init() functions, allowing the CLI and
// menus to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant describes a playable ruleset and its seating.
type Variant struct {
	// ID is a unique identifier (e.g., "yatzy", "yatzy_hotseat").
	// Used for CLI commands and results storage.
	ID string

	// Title is a human-readable name for display.
	Title string

	// MinPlayers and MaxPlayers bound the roster size.
	MinPlayers int
	MaxPlayers int

	// DefaultPlayers is the roster used when none is given.
	DefaultPlayers []string
}

// ResolvePlayers returns names, or the variant's defaults when names is empty,
// after checking the roster size.
func (v Variant) ResolvePlayers(names []string) ([]string, error) {
	if len(names) == 0 {
		names = v.DefaultPlayers
	}
	if len(names) < v.MinPlayers || (v.MaxPlayers > 0 && len(names) > v.MaxPlayers) {
		return nil, fmt.Errorf("registry: %s needs %d-%d players, got %d",
			v.ID, v.MinPlayers, v.MaxPlayers, len(names))
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant ID must not be empty")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant with the given ID.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
