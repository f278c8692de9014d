package kernel

import (
	"math"
	"testing"

	"github.com/yourusername/yahtzeesolver/internal/handset"
)

func TestRowsSumToOne(t *testing.T) {
	tn := Build()
	for h := 0; h < NumHoldMasks; h++ {
		for r := 0; r < handset.NumHands; r++ {
			sum := tn.RowSum(h, r)
			if math.Abs(sum-1.0) >= 1e-12 {
				t.Fatalf("P[%d][%d] sums to %v, want 1", h, r, sum)
			}
		}
	}
}

func TestWeightsSumToOne(t *testing.T) {
	tn := Build()
	if sum := tn.WeightSum(); math.Abs(sum-1.0) >= 1e-12 {
		t.Fatalf("weights sum to %v, want 1", sum)
	}
}

func TestHoldNoneIndependentOfHand(t *testing.T) {
	tn := Build()
	for r := 0; r < handset.NumHands; r++ {
		for s := 0; s < handset.NumHands; s++ {
			if tn.P[0][r][s] != tn.W[s] {
				t.Fatalf("P[0][%d][%d] = %v, want W[%d] = %v", r, s, tn.P[0][r][s], s, tn.W[s])
			}
		}
	}
}

func TestHoldAllIsIdentity(t *testing.T) {
	tn := Build()
	allHeld := NumHoldMasks - 1
	for r := 0; r < handset.NumHands; r++ {
		if tn.P[allHeld][r][r] != 1.0 {
			t.Errorf("P[31][%d][%d] = %v, want 1", r, r, tn.P[allHeld][r][r])
		}
	}
}

func TestMonotonicityUnderContraction(t *testing.T) {
	tn := Build()
	v := make([]float64, handset.NumHands)
	for i := range v {
		v[i] = float64(i)
	}
	out := tn.Contract(v)
	for r := 0; r < handset.NumHands; r++ {
		if out[r] < v[r]-1e-9 {
			t.Errorf("Contract(v)[%d] = %v < v[%d] = %v", r, out[r], r, v[r])
		}
	}
}

func TestHoldKeepsByPositionNotByCount(t *testing.T) {
	// (1,3,3,3,6) sorted is r[0]=1, r[1]=3, r[2]=3, r[3]=3, r[4]=6. Holding
	// the middle triple (positions 1,2,3) and rerolling the flanking 1 and 6
	// needs both rerolled dice to land on 3 to complete a Yahtzee of threes:
	// probability 1/36. A different hold with the same popcount (3) that
	// keeps the low triple (positions 0,1,2: pips 1,3,3) can never reach a
	// Yahtzee of threes, since the kept 1 can never be rerolled away — its
	// probability for the same target must be 0. If rows were built from
	// popcount alone (keep-the-K-lowest-pips), both masks would collapse to
	// the same row and this test would fail.
	tn := Build()
	r := handset.IndexOfHand([5]int8{1, 3, 3, 3, 6})
	yahtzeeThrees := handset.IndexOfHand([5]int8{3, 3, 3, 3, 3})

	holdMiddleTriple := 0b01110 // positions 1,2,3 kept
	holdLowTriple := 0b00111    // positions 0,1,2 kept

	if got, want := tn.P[holdMiddleTriple][r][yahtzeeThrees], 1.0/36.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("P[hold=%05b][(1,3,3,3,6)][Yahtzee-of-3s] = %v, want %v", holdMiddleTriple, got, want)
	}
	if got := tn.P[holdLowTriple][r][yahtzeeThrees]; got != 0 {
		t.Errorf("P[hold=%05b][(1,3,3,3,6)][Yahtzee-of-3s] = %v, want 0 (kept 1 can never reroll away)", holdLowTriple, got)
	}
}

func TestContractImprovesLargeStraightChance(t *testing.T) {
	// With v all zero except a spike on the (1,2,3,4,5) large straight,
	// swapping a non-fitting die should strictly improve the (1,2,3,4,6) row
	// over its own zero value once a reroll is available.
	tn := Build()
	v := make([]float64, handset.NumHands)
	straight := handset.IndexOfHand([5]int8{1, 2, 3, 4, 5})
	v[straight] = 1.0
	out := tn.Contract(v)
	r := handset.IndexOfHand([5]int8{1, 2, 3, 4, 6})
	if out[r] <= v[r] {
		t.Fatalf("Contract(v)[%d] = %v, want > %v", r, out[r], v[r])
	}
}
