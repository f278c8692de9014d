// Package scoring implements the deterministic Yahtzee category scorer and
// the dense roll-score tables built from it.
//
// Categories are addressed by a compact integer code in
// [0, NumCategories) rather than by name.
package scoring

import "github.com/yourusername/yahtzeesolver/internal/handset"

// Category codes.
const (
	Ones = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance
	NumCategories
)

// NumUpperCategories is the count of upper-section slots (Ones..Sixes).
const NumUpperCategories = 6

// upperFace maps an upper-section category code to its pip face value.
var upperFace = [NumUpperCategories]int8{1, 2, 3, 4, 5, 6}

// Score returns the score awarded to hand in category cat.
func Score(h handset.Hand, cat int) int {
	if cat < NumUpperCategories {
		return upperScore(h, cat)
	}
	counts := h.Counts()
	switch cat {
	case ThreeOfAKind:
		if maxCount(counts) >= 3 {
			return h.Sum()
		}
		return 0
	case FourOfAKind:
		if maxCount(counts) >= 4 {
			return h.Sum()
		}
		return 0
	case FullHouse:
		if isFullHouse(counts) {
			return 25
		}
		return 0
	case SmallStraight:
		if hasStraight(counts, 4) {
			return 30
		}
		return 0
	case LargeStraight:
		if hasStraight(counts, 5) {
			return 40
		}
		return 0
	case Yahtzee:
		if maxCount(counts) == 5 {
			return 50
		}
		return 0
	case Chance:
		return h.Sum()
	default:
		panic("scoring: invalid category code")
	}
}

// UpperContrib returns the amount Score(h, cat) adds to the capped upper
// total: Score(h, cat) when cat is an upper category, else 0.
func UpperContrib(h handset.Hand, cat int) int {
	if cat < NumUpperCategories {
		return upperScore(h, cat)
	}
	return 0
}

func upperScore(h handset.Hand, cat int) int {
	face := upperFace[cat]
	total := 0
	for _, p := range h {
		if p == face {
			total += int(p)
		}
	}
	return total
}

func maxCount(counts [handset.NumFaces + 1]int8) int8 {
	var m int8
	for _, c := range counts[1:] {
		if c > m {
			m = c
		}
	}
	return m
}

// isFullHouse reports whether the multiplicities, sorted, are exactly
// (2, 3) — one pair and one triple. A Yahtzee (5 of a kind) is not a full
// house under this rule.
func isFullHouse(counts [handset.NumFaces + 1]int8) bool {
	hasPair, hasTriple := false, false
	for _, c := range counts[1:] {
		switch c {
		case 2:
			hasPair = true
		case 3:
			hasTriple = true
		}
	}
	return hasPair && hasTriple
}

// hasStraight reports whether the hand contains a run of `length`
// consecutive distinct faces.
func hasStraight(counts [handset.NumFaces + 1]int8, length int) bool {
	run := 0
	for face := 1; face <= handset.NumFaces; face++ {
		if counts[face] > 0 {
			run++
			if run >= length {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}
