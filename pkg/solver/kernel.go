package solver

import (
	"gonum.org/v1/gonum/floats"

	"github.com/yourusername/yahtzeesolver/internal/gamestate"
	"github.com/yourusername/yahtzeesolver/internal/handset"
	"github.com/yourusername/yahtzeesolver/internal/scoring"
)

// bestScore implements module G: over every open category, the value of
// scoring hand handIdx in that category now plus the (already-computed or
// lazily-recursed) downstream value. vAt supplies V for any state whose
// popcount-of-open is strictly lower than st's.
func (s *Solver) bestScore(handIdx int, st gamestate.State, vAt func(gamestate.State) float64) float64 {
	table := s.Table()
	open := st.Open()
	oldUpper := st.Upper()

	best := 0.0
	first := true
	for c := 0; c < scoring.NumCategories; c++ {
		if open&(1<<uint(c)) == 0 {
			continue
		}
		newUpper := oldUpper + table.U[handIdx][c]
		if newUpper > gamestate.MaxUpper {
			newUpper = gamestate.MaxUpper
		}
		next := st.Fill(c, newUpper)
		// The 35-point upper bonus is not added at the crossing: a state whose
		// capped upper total is 63 carries it through to its terminal value
		// (V = 35), so it is credited exactly once.
		val := float64(table.S[handIdx][c]) + vAt(next)
		if first || val > best {
			best = val
			first = false
		}
	}
	return best
}

// computeValue implements module H: the three-phase backward contraction
// for a single non-terminal state, reading V at strictly lower-popcount
// states through the memoizing valueOf. Terminal states are handled
// directly.
func (s *Solver) computeValue(st gamestate.State) float64 {
	return s.computeValueWith(st, s.valueOf)
}

// computeValueWith is computeValue parameterized over the downstream value
// lookup, so the bulk DP driver (module I) can supply a direct, lock-free
// array read instead of the memoizing recursive valueOf used for on-demand
// single-state evaluation.
func (s *Solver) computeValueWith(st gamestate.State, vAt func(gamestate.State) float64) float64 {
	if st.Terminal() {
		if st.Upper() == gamestate.MaxUpper {
			return 35
		}
		return 0
	}

	tensor := s.Tensor()

	var b [handset.NumHands]float64
	for r := 0; r < handset.NumHands; r++ {
		b[r] = s.bestScore(r, st, vAt)
	}

	c := tensor.Contract(b[:])
	d := tensor.Contract(c[:])

	return floats.Dot(tensor.W[:], d[:])
}
