package solver

import (
	"log"
	"runtime"
	"sync"

	"github.com/yourusername/yahtzeesolver/internal/gamestate"
)

// DriverOptions controls the parallelism of the bulk DP driver (module I).
type DriverOptions struct {
	// Workers is the number of goroutines computing states within a single
	// popcount level concurrently. Zero means GOMAXPROCS.
	Workers int
	// LogProgress enables a per-level progress line via the stdlib log
	// package.
	LogProgress bool
	// OnLevelDone, if set, is called after each popcount level finishes,
	// useful for streaming progress to a caller (e.g. an SSE or WebSocket
	// handler).
	OnLevelDone func(level, levelTotal, states int)
}

// DefaultDriverOptions uses every available core and stays quiet by
// default.
func DefaultDriverOptions() DriverOptions {
	return DriverOptions{
		Workers:     runtime.GOMAXPROCS(0),
		LogProgress: false,
	}
}

// Run fills V for every one of the 2^19 encodable states, processing
// popcount-of-open levels 0..13 in ascending order (the DP's topological
// order) and parallelizing the states within a level across a bounded pool
// of worker goroutines, since every level is independent of its siblings
// and depends only on strictly lower levels.
func (s *Solver) Run() error {
	return s.RunWith(DefaultDriverOptions())
}

// RunWith is Run with explicit DriverOptions.
func (s *Solver) RunWith(opts DriverOptions) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	s.Table()
	s.Tensor()

	levels := gamestate.LevelsByPopcount()

	for p, states := range levels {
		s.computeLevel(states, workers)
		if opts.LogProgress {
			log.Printf("yahtzeesolver: level %d/%d done (%d states)", p, len(levels)-1, len(states))
		}
		if opts.OnLevelDone != nil {
			opts.OnLevelDone(p, len(levels)-1, len(states))
		}
	}

	s.mu.Lock()
	s.built = true
	s.mu.Unlock()

	return nil
}

// computeLevel fills V for every state in states. Every read performed
// while computing these states touches only strictly lower popcount
// levels, which are already written and never mutated again — so workers
// need no synchronization against each other, only the level boundary
// below.
func (s *Solver) computeLevel(states []gamestate.State, workers int) {
	if len(states) == 0 {
		return
	}
	if workers > len(states) {
		workers = len(states)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan gamestate.State, len(states))
	for _, st := range states {
		jobs <- st
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for st := range jobs {
				s.v[uint32(st)] = s.computeValueWith(st, s.readComputed)
				s.computed[uint32(st)] = true
			}
		}()
	}
	wg.Wait()
}

// readComputed is a lock-free V lookup used only by the bulk driver, where
// the caller has already established (via the popcount-level barrier)
// that the state being read was written by a prior, completed level.
func (s *Solver) readComputed(st gamestate.State) float64 {
	return s.v[uint32(st)]
}
