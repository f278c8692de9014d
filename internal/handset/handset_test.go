package handset

import "testing"

func TestEnumerationCount(t *testing.T) {
	seen := make(map[Hand]bool)
	for i := 0; i < NumHands; i++ {
		h := HandOfIndex(i)
		if seen[h] {
			t.Fatalf("duplicate hand at index %d: %v", i, h)
		}
		seen[h] = true
	}
	if len(seen) != NumHands {
		t.Fatalf("expected %d distinct hands, got %d", NumHands, len(seen))
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumHands; i++ {
		h := HandOfIndex(i)
		if got := IndexOfSortedHand(h); got != i {
			t.Errorf("IndexOfSortedHand(%v) = %d, want %d", h, got, i)
		}
	}
}

func TestIndexOfHandAllOrderedTuples(t *testing.T) {
	count := 0
	var pips [5]int8
	var rec func(pos int)
	rec = func(pos int) {
		if pos == 5 {
			count++
			idx := IndexOfHand(pips)
			h := HandOfIndex(idx)
			counts := h.Counts()
			var want [NumFaces + 1]int8
			for _, p := range pips {
				want[p]++
			}
			if counts != want {
				t.Fatalf("IndexOfHand(%v) -> hand %v with wrong multiset", pips, h)
			}
			return
		}
		for v := int8(1); v <= NumFaces; v++ {
			pips[pos] = v
			rec(pos + 1)
		}
	}
	rec(0)
	if count != 7776 {
		t.Fatalf("expected 7776 ordered 5-tuples, tested %d", count)
	}
}

func TestCountsSumToFive(t *testing.T) {
	for i := 0; i < NumHands; i++ {
		h := HandOfIndex(i)
		counts := h.Counts()
		total := int8(0)
		for _, c := range counts {
			total += c
		}
		if total != 5 {
			t.Errorf("hand %v counts sum to %d, want 5", h, total)
		}
	}
}
