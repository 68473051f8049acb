package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps calendar days to their puzzles.
type Registry struct {
	puzzles map[Day]Puzzle
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		puzzles: make(map[Day]Puzzle),
	}
}

// Register adds a puzzle.
// Subsequent registrations for the same day overwrite the previous puzzle.
func (r *Registry) Register(p Puzzle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.puzzles[p.Day()] = p
}

// Puzzle returns the puzzle for a day.
// Returns ErrUnknownDay if nothing is registered.
func (r *Registry) Puzzle(day Day) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.puzzles[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %s", ErrUnknownDay, day)
	}
	return p, nil
}

// Has checks if a puzzle is registered for the day.
func (r *Registry) Has(day Day) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.puzzles[day]
	return ok
}

// Days returns all registered days in ascending order.
func (r *Registry) Days() []Day {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]Day, 0, len(r.puzzles))
	for d := range r.puzzles {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Latest returns the highest registered day.
func (r *Registry) Latest() (Day, bool) {
	days := r.Days()
	if len(days) == 0 {
		return 0, false
	}
	return days[len(days)-1], true
}
