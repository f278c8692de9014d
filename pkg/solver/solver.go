// Package solver computes the expected optimal Yahtzee score for every
// reachable game state by backward induction, and exposes a query
// interface over the resulting value table.
//
// Solver is built via BuildSolver(Options): an immutable-after-build
// object wrapping the precomputed tables, with an options struct
// controlling which of those tables are constructed eagerly.
package solver

import (
	"fmt"
	"sync"

	"github.com/yourusername/yahtzeesolver/internal/gamestate"
	"github.com/yourusername/yahtzeesolver/internal/kernel"
	"github.com/yourusername/yahtzeesolver/internal/scoring"
)

// Options controls which immutable tables BuildSolver constructs and
// whether the full dynamic program runs immediately.
type Options struct {
	// BuildRollTable constructs the category score tables (S, U) eagerly.
	BuildRollTable bool
	// BuildTensors constructs the reroll transition tensor and initial
	// throw weights eagerly.
	BuildTensors bool
	// Evaluate runs the full backward-induction DP immediately, filling V
	// for every state.
	Evaluate bool
}

// DefaultOptions returns sensible defaults: roll table and tensors built
// eagerly, full evaluation deferred.
func DefaultOptions() Options {
	return Options{
		BuildRollTable: true,
		BuildTensors:   true,
		Evaluate:       false,
	}
}

// Solver is an immutable-after-build Yahtzee value-function solver. The
// precomputed tables (category scores, transition tensor) are built at
// most once; the value table V is filled either eagerly via Run, or
// lazily and memoized via Value.
type Solver struct {
	tableOnce  sync.Once
	table      *scoring.Table
	tensorOnce sync.Once
	tensor     *kernel.Tensor

	mu       sync.RWMutex
	v        []float64
	computed []bool
	built    bool
}

// BuildSolver constructs a Solver per opts. It never fails on its own; the
// error return leaves room for an allocation failure to surface as an
// error rather than a panic.
func BuildSolver(opts Options) (*Solver, error) {
	s := &Solver{
		v:        make([]float64, gamestate.NumStates),
		computed: make([]bool, gamestate.NumStates),
	}
	if opts.BuildRollTable {
		s.Table()
	}
	if opts.BuildTensors {
		s.Tensor()
	}
	if opts.Evaluate {
		if err := s.Run(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Table returns the category score tables, building them on first use.
func (s *Solver) Table() *scoring.Table {
	s.tableOnce.Do(func() {
		s.table = scoring.BuildTable()
	})
	return s.table
}

// Tensor returns the reroll transition tensor and initial-throw weights,
// building them on first use.
func (s *Solver) Tensor() *kernel.Tensor {
	s.tensorOnce.Do(func() {
		s.tensor = kernel.Build()
	})
	return s.tensor
}

// validateState checks that state only has bits 0..18 set.
func validateState(state uint32) error {
	if state&^uint32(gamestate.NumStates-1) != 0 {
		return fmt.Errorf("solver: state %d has bits set above bit 18", state)
	}
	return nil
}

// Value returns V[state]: the expected optimal future score from state
// onward. If the full DP has not been run, the state (and any states its
// computation depends on) is evaluated on demand and memoized.
func (s *Solver) Value(state uint32) (float64, error) {
	if err := validateState(state); err != nil {
		return 0, err
	}
	return s.valueOf(gamestate.State(state)), nil
}

// ExpectedScore returns V[8191]: the expected score of a fresh game
// played optimally from the very first throw.
func (s *Solver) ExpectedScore() float64 {
	return s.valueOf(gamestate.Fresh)
}

// valueOf returns V[st], computing and memoizing it (and its dependency
// chain) if necessary.
func (s *Solver) valueOf(st gamestate.State) float64 {
	idx := uint32(st)

	s.mu.RLock()
	if s.computed[idx] {
		val := s.v[idx]
		s.mu.RUnlock()
		return val
	}
	s.mu.RUnlock()

	val := s.computeValue(st)

	s.mu.Lock()
	s.v[idx] = val
	s.computed[idx] = true
	s.mu.Unlock()

	return val
}
