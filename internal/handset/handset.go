// Package handset provides canonical enumeration and indexing of the 252
// distinct 5-dice pip multisets over {1..6}.
//
// A Hand is stored as a non-decreasing [5]int8 sequence of pip values. Hands
// are assigned a fixed index in [0, NumHands) in lexicographic order of
// their sorted sequence.
package handset

import "sort"

// NumHands is the number of distinct non-decreasing 5-sequences over {1..6}:
// C(6+5-1, 5) = 252.
const NumHands = 252

// NumFaces is the number of pip values on a single die.
const NumFaces = 6

// Hand is a canonical (non-decreasing) sequence of 5 pip values, each in
// [1, 6].
type Hand [5]int8

// Counts returns, for v in [1,6], the number of dice in the hand showing v.
// Index 0 of the returned array is unused (faces are 1-based).
func (h Hand) Counts() [NumFaces + 1]int8 {
	var c [NumFaces + 1]int8
	for _, p := range h {
		c[p]++
	}
	return c
}

// Sum returns the sum of all five pips.
func (h Hand) Sum() int {
	s := 0
	for _, p := range h {
		s += int(p)
	}
	return s
}

// index holds every canonical hand in lexicographic order; indexOf maps a
// hand back to its position in that order. Both are built once at package
// init and are immutable thereafter.
var (
	index   [NumHands]Hand
	indexOf map[Hand]int
)

func init() {
	indexOf = make(map[Hand]int, NumHands)
	n := 0
	var h [5]int8
	var gen func(start int, pos int)
	gen = func(start int, pos int) {
		if pos == 5 {
			var hand Hand
			copy(hand[:], h[:])
			index[n] = hand
			indexOf[hand] = n
			n++
			return
		}
		for v := start; v <= NumFaces; v++ {
			h[pos] = int8(v)
			gen(v, pos+1)
		}
	}
	gen(1, 0)
	if n != NumHands {
		panic("handset: enumeration produced wrong hand count")
	}
}

// HandOfIndex returns the canonical hand at index i. i must be in
// [0, NumHands).
func HandOfIndex(i int) Hand {
	return index[i]
}

// IndexOfSortedHand returns the index of an already-sorted hand h.
// h must be a valid canonical (non-decreasing) hand; behavior is undefined
// otherwise (see IndexOfHand for arbitrary ordered tuples).
func IndexOfSortedHand(h Hand) int {
	idx, ok := indexOf[h]
	if !ok {
		panic("handset: hand is not in canonical non-decreasing form")
	}
	return idx
}

// IndexOfHand sorts an arbitrary ordered 5-tuple and returns its canonical
// index. Every entry of pips must be in [1, 6].
func IndexOfHand(pips [5]int8) int {
	h := pips
	sort.Slice(h[:], func(i, j int) bool { return h[i] < h[j] })
	return IndexOfSortedHand(h)
}

// All returns every canonical hand in index order. The returned slice must
// not be mutated by callers.
func All() []Hand {
	return index[:]
}
