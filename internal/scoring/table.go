package scoring

import "github.com/yourusername/yahtzeesolver/internal/handset"

// Table holds the dense 252x13 score and upper-contribution matrices,
// built once and read-only thereafter.
type Table struct {
	S [handset.NumHands][NumCategories]int
	U [handset.NumHands][NumCategories]int
}

// BuildTable constructs S[r,c] = Score(hand_of_index(r), c) and
// U[r,c] = UpperContrib(hand_of_index(r), c) for every hand and category.
func BuildTable() *Table {
	t := &Table{}
	for r := 0; r < handset.NumHands; r++ {
		h := handset.HandOfIndex(r)
		for c := 0; c < NumCategories; c++ {
			t.S[r][c] = Score(h, c)
			t.U[r][c] = UpperContrib(h, c)
		}
	}
	return t
}
