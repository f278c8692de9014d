// Package kernel builds the dense probability kernels the solver consumes:
// the 32x252x252 reroll transition tensor and the length-252 initial-throw
// weight vector. Both are built once from a closed-form multinomial
// formula and are immutable and read-only thereafter.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yourusername/yahtzeesolver/internal/handset"
)

// NumHoldMasks is the number of 5-bit hold patterns (2^5).
const NumHoldMasks = 32

// Tensor holds the reroll transition probabilities and the initial-throw
// weights derived from the hold-none row.
type Tensor struct {
	// P[h][r] is a length-252 row: P[h][r][s] is the probability that hand r,
	// rerolling the dice positions not set in hold mask h, becomes hand s.
	P [NumHoldMasks][handset.NumHands][handset.NumHands]float64

	// W[s] is the probability of rolling hand s from five fresh dice.
	W [handset.NumHands]float64
}

// Build constructs the transition tensor and initial-throw weight vector.
func Build() *Tensor {
	t := &Tensor{}
	for h := 0; h < NumHoldMasks; h++ {
		for r := 0; r < handset.NumHands; r++ {
			hand := handset.HandOfIndex(r)
			t.P[h][r] = rerollRow(hand, h)
		}
	}
	// w[s] = P[0, r, s] for any r; row 0 (hold nothing) is independent of r.
	copy(t.W[:], t.P[0][0][:])
	return t
}

// rerollRow computes, for a hand r and hold mask h, the probability
// distribution over resulting hands s after rerolling the dice positions not
// set in h. Position i of r's canonical (sorted) form is kept iff bit i of h
// is set: which specific positions a mask keeps determines which sub-multiset
// survives, not merely how many positions it keeps — two masks with the same
// popcount but different bits keep different pips whenever r has repeated
// values at mixed ranks (e.g. a triple flanked by lower and higher singles).
func rerollRow(r handset.Hand, h int) [handset.NumHands]float64 {
	var row [handset.NumHands]float64
	var keptCounts [handset.NumFaces + 1]int8
	keptCount := 0
	for i := 0; i < 5; i++ {
		if h&(1<<i) != 0 {
			keptCounts[r[i]]++
			keptCount++
		}
	}
	k := 5 - keptCount

	for s := 0; s < handset.NumHands; s++ {
		hand := handset.HandOfIndex(s)
		counts := hand.Counts()
		var need [handset.NumFaces + 1]int
		feasible := true
		total := 0
		for v := 1; v <= handset.NumFaces; v++ {
			n := int(counts[v]) - int(keptCounts[v])
			if n < 0 {
				feasible = false
				break
			}
			need[v] = n
			total += n
		}
		if !feasible || total != k {
			continue
		}
		row[s] = multinomial(need, k) / math.Pow(handset.NumFaces, float64(k))
	}
	return row
}

// multinomial computes k! / Prod(need[v]!).
func multinomial(need [handset.NumFaces + 1]int, k int) float64 {
	result := factorial(k)
	for v := 1; v <= handset.NumFaces; v++ {
		result /= factorial(need[v])
	}
	return result
}

var factTable = [6]float64{1, 1, 2, 6, 24, 120}

func factorial(n int) float64 {
	if n < len(factTable) {
		return factTable[n]
	}
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// RowSum returns Sum_s P[h][r][s], used to validate row normalization.
// Uses gonum's floats.Sum for the reduction over the float64 buffer.
func (t *Tensor) RowSum(h, r int) float64 {
	return floats.Sum(t.P[h][r][:])
}

// WeightSum returns Sum_s W[s].
func (t *Tensor) WeightSum() float64 {
	return floats.Sum(t.W[:])
}

// Contract computes, for every hand r, max_h Σ_s P[h,r,s]·v[s] — the
// max-over-holds contraction operator applied twice per state to absorb
// both reroll decisions. Each row's dot product uses gonum's floats.Dot.
func (t *Tensor) Contract(v []float64) [handset.NumHands]float64 {
	var out [handset.NumHands]float64
	for r := 0; r < handset.NumHands; r++ {
		best := math.Inf(-1)
		for h := 0; h < NumHoldMasks; h++ {
			val := floats.Dot(t.P[h][r][:], v)
			if val > best {
				best = val
			}
		}
		out[r] = best
	}
	return out
}
