package solver

import (
	"fmt"
	"math"

	"github.com/yourusername/yahtzeesolver/internal/gamestate"
	"github.com/yourusername/yahtzeesolver/internal/handset"
)

// Validate runs consistency invariants against a fully evaluated solver
// and returns the first violation found, or nil. It is exposed so both the
// test suite and the "validate" CLI subcommand can exercise the same
// checks from a standalone diagnostic binary rather than duplicating
// assertions.
func (s *Solver) Validate() error {
	if err := s.validateTerminal(); err != nil {
		return err
	}
	if err := s.validateTensorRows(); err != nil {
		return err
	}
	if err := s.validateMonotonicity(); err != nil {
		return err
	}
	if err := s.validateHoldKeepsByPosition(); err != nil {
		return err
	}
	return nil
}

func (s *Solver) validateTerminal() error {
	for upper := 0; upper <= gamestate.MaxUpper; upper++ {
		st := gamestate.Pack(upper, 0)
		v, err := s.Value(uint32(st))
		if err != nil {
			return err
		}
		want := 0.0
		if upper == gamestate.MaxUpper {
			want = 35
		}
		if v != want {
			return fmt.Errorf("solver: V[upper=%d,open=0] = %v, want %v", upper, v, want)
		}
	}
	return nil
}

func (s *Solver) validateTensorRows() error {
	tensor := s.Tensor()
	for h := 0; h < 32; h++ {
		for r := 0; r < len(tensor.P[h]); r++ {
			if sum := tensor.RowSum(h, r); math.Abs(sum-1.0) >= 1e-12 {
				return fmt.Errorf("solver: P[%d][%d] sums to %v, want 1", h, r, sum)
			}
		}
	}
	if sum := tensor.WeightSum(); math.Abs(sum-1.0) >= 1e-12 {
		return fmt.Errorf("solver: weight vector sums to %v, want 1", sum)
	}
	return nil
}

// validateMonotonicity checks, for one fixed test vector v (v[i] = i), that
// the max-over-holds contraction is never below v itself: the best hold is
// never worse than keeping all dice, confirming that exercising zero
// effective rerolls is always representable.
func (s *Solver) validateMonotonicity() error {
	tensor := s.Tensor()
	v := make([]float64, len(tensor.W))
	for i := range v {
		v[i] = float64(i)
	}
	out := tensor.Contract(v)
	for r := range v {
		if out[r] < v[r]-1e-9 {
			return fmt.Errorf("solver: Contract(v)[%d] = %v < v[%d] = %v", r, out[r], r, v[r])
		}
	}
	return nil
}

// validateHoldKeepsByPosition guards against a tensor built from hold-mask
// popcount alone (keep-the-K-lowest-pips) instead of the mask's actual bit
// positions: holding the middle triple of (1,3,3,3,6) and rerolling the
// flanking 1 and 6 must give a 1/36 chance of completing a Yahtzee of
// threes, while a same-popcount hold that keeps the low triple (and so
// keeps the 1) can never reach it. A popcount-only tensor collapses both
// masks to the same row and fails the first check below.
func (s *Solver) validateHoldKeepsByPosition() error {
	tensor := s.Tensor()
	r := handset.IndexOfHand([5]int8{1, 3, 3, 3, 6})
	yahtzeeThrees := handset.IndexOfHand([5]int8{3, 3, 3, 3, 3})

	const (
		holdMiddleTriple = 0b01110
		holdLowTriple    = 0b00111
	)

	if got, want := tensor.P[holdMiddleTriple][r][yahtzeeThrees], 1.0/36.0; math.Abs(got-want) > 1e-12 {
		return fmt.Errorf("solver: P[hold=%05b][(1,3,3,3,6)][Yahtzee-of-3s] = %v, want %v", holdMiddleTriple, got, want)
	}
	if got := tensor.P[holdLowTriple][r][yahtzeeThrees]; got != 0 {
		return fmt.Errorf("solver: P[hold=%05b][(1,3,3,3,6)][Yahtzee-of-3s] = %v, want 0", holdLowTriple, got)
	}
	return nil
}
