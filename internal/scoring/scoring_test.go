package scoring

import (
	"testing"

	"github.com/yourusername/yahtzeesolver/internal/handset"
)

func hand(pips ...int8) handset.Hand {
	var a [5]int8
	copy(a[:], pips)
	return handset.HandOfIndex(handset.IndexOfHand(a))
}

func TestKnownHands(t *testing.T) {
	cases := []struct {
		name string
		h    handset.Hand
		cat  int
		want int
	}{
		{"three of a kind", hand(1, 1, 1, 2, 3), ThreeOfAKind, 8},
		{"full house", hand(2, 2, 3, 3, 3), FullHouse, 25},
		{"large straight", hand(1, 2, 3, 4, 5), LargeStraight, 40},
		{"small straight", hand(2, 3, 4, 5, 5), SmallStraight, 30},
		{"yahtzee sixes", hand(6, 6, 6, 6, 6), Yahtzee, 50},
		{"yahtzee sixes upper", hand(6, 6, 6, 6, 6), Sixes, 30},
		{"yahtzee chance", hand(6, 6, 6, 6, 6), Chance, 30},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Score(c.h, c.cat); got != c.want {
				t.Errorf("Score(%v, %d) = %d, want %d", c.h, c.cat, got, c.want)
			}
		})
	}
}

func TestAllNonUpperZero(t *testing.T) {
	h := hand(1, 2, 4, 5, 6)
	for _, cat := range []int{ThreeOfAKind, FourOfAKind, FullHouse, SmallStraight, LargeStraight, Yahtzee} {
		if got := Score(h, cat); got != 0 {
			t.Errorf("Score(%v, %d) = %d, want 0", h, cat, got)
		}
	}
}

func TestSmallVsLargeStraightDistinct(t *testing.T) {
	// Regression guard for the original source's bug where both straight
	// categories returned 30: they must differ (30 vs 40).
	small := hand(2, 3, 4, 5, 5)
	large := hand(1, 2, 3, 4, 5)
	if Score(small, SmallStraight) != 30 || Score(small, LargeStraight) != 0 {
		t.Fatalf("small straight hand scored incorrectly: small=%d large=%d",
			Score(small, SmallStraight), Score(small, LargeStraight))
	}
	if Score(large, LargeStraight) != 40 {
		t.Fatalf("large straight hand scored %d, want 40", Score(large, LargeStraight))
	}
}

func TestUpperContrib(t *testing.T) {
	h := hand(6, 6, 6, 6, 6)
	if got := UpperContrib(h, Sixes); got != 30 {
		t.Errorf("UpperContrib(Sixes) = %d, want 30", got)
	}
	if got := UpperContrib(h, Chance); got != 0 {
		t.Errorf("UpperContrib(Chance) = %d, want 0", got)
	}
}

func TestBuildTableMatchesScore(t *testing.T) {
	tbl := BuildTable()
	for r := 0; r < handset.NumHands; r++ {
		h := handset.HandOfIndex(r)
		for c := 0; c < NumCategories; c++ {
			if tbl.S[r][c] != Score(h, c) {
				t.Fatalf("table S[%d][%d] mismatch", r, c)
			}
			if tbl.U[r][c] != UpperContrib(h, c) {
				t.Fatalf("table U[%d][%d] mismatch", r, c)
			}
		}
	}
}
