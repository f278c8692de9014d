package solver

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/yourusername/yahtzeesolver/internal/gamestate"
	"github.com/yourusername/yahtzeesolver/internal/handset"
	"github.com/yourusername/yahtzeesolver/internal/kernel"
	"github.com/yourusername/yahtzeesolver/internal/scoring"
)

// Action is the result of the best-action oracle: either a hold mask (when
// rerolls remain) or a scoring category code (when none do). Exactly one
// of the two is meaningful, indicated by IsHold.
//
// It is a thin function layered over the bulk evaluation kernel that
// re-derives the argmax on demand rather than storing it during the bulk
// pass, so the dense value table stays at one float64 per state.
type Action struct {
	IsHold   bool
	HoldMask uint8 // valid when IsHold
	Category int   // valid when !IsHold
	Value    float64
}

// BestAction returns the optimal action from state, having just observed
// hand, with rerollsRemaining rerolls still available (0, 1, or 2).
//
// rerollsRemaining == 0 selects the scoring category maximising immediate
// score plus downstream value, which includes the upper bonus once the
// capped upper total reaches 63 (module G); ties are broken
// by ascending category code. rerollsRemaining in {1, 2} selects the hold
// mask maximising the expected value after the corresponding number of
// further rerolls; ties are broken by ascending hold mask.
func (s *Solver) BestAction(state uint32, hand [5]int8, rerollsRemaining int) (Action, error) {
	if err := validateState(state); err != nil {
		return Action{}, err
	}
	if rerollsRemaining < 0 || rerollsRemaining > 2 {
		return Action{}, fmt.Errorf("solver: rerollsRemaining must be 0, 1, or 2, got %d", rerollsRemaining)
	}
	for _, p := range hand {
		if p < 1 || p > 6 {
			return Action{}, fmt.Errorf("solver: hand pip %d out of range [1,6]", p)
		}
	}

	st := gamestate.State(state)
	handIdx := handset.IndexOfHand(hand)

	if rerollsRemaining == 0 {
		return s.bestCategoryAction(handIdx, st), nil
	}

	tensor := s.Tensor()

	var b [handset.NumHands]float64
	for r := 0; r < handset.NumHands; r++ {
		b[r] = s.bestScore(r, st, s.valueOf)
	}

	target := b[:]
	if rerollsRemaining == 2 {
		c := tensor.Contract(b[:])
		target = c[:]
	}

	return bestHoldAction(tensor, handIdx, target), nil
}

func (s *Solver) bestCategoryAction(handIdx int, st gamestate.State) Action {
	table := s.Table()
	open := st.Open()
	oldUpper := st.Upper()

	best := Action{Category: -1}
	for c := 0; c < scoring.NumCategories; c++ {
		if open&(1<<uint(c)) == 0 {
			continue
		}
		newUpper := oldUpper + table.U[handIdx][c]
		if newUpper > gamestate.MaxUpper {
			newUpper = gamestate.MaxUpper
		}
		next := st.Fill(c, newUpper)
		// As in bestScore, the upper bonus reaches val through the downstream
		// value of a state whose capped upper total is 63, not at the crossing.
		val := float64(table.S[handIdx][c]) + s.valueOf(next)
		if best.Category == -1 || val > best.Value {
			best = Action{IsHold: false, Category: c, Value: val}
		}
	}
	return best
}

func bestHoldAction(tensor *kernel.Tensor, handIdx int, target []float64) Action {
	best := Action{IsHold: true, HoldMask: 0, Value: floats.Dot(tensor.P[0][handIdx][:], target)}
	for h := 1; h < kernel.NumHoldMasks; h++ {
		val := floats.Dot(tensor.P[h][handIdx][:], target)
		if val > best.Value {
			best = Action{IsHold: true, HoldMask: uint8(h), Value: val}
		}
	}
	return best
}
