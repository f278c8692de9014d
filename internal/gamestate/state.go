// Package gamestate packs and iterates the 19-bit Yahtzee game state:
// which scoring categories remain open, and the capped upper-section
// running total, condensed into a fixed-width integer key for dense table
// indexing rather than a struct with separate fields.
package gamestate

import "math/bits"

// OpenBits is the width of the open-categories mask (13 scoring categories).
const OpenBits = 13

// OpenMask selects the low 13 bits of a state.
const OpenMask = 1<<OpenBits - 1

// MaxUpper is the saturating cap on the upper-section running total. The
// 35-point bonus threshold (63) is itself the cap, since nothing above it
// changes whether the bonus has been earned.
const MaxUpper = 63

// NumStates is the number of distinct 19-bit encodings (not all reachable).
const NumStates = 1 << 19

// State is a packed (capped_upper << 13) | open_mask integer.
type State uint32

// Pack builds a State from a capped upper total (0..63) and an open-category
// bitmask (bit i set iff category i is still available).
func Pack(cappedUpper int, openMask uint32) State {
	return State(uint32(cappedUpper)<<OpenBits | (openMask & OpenMask))
}

// Open returns the open-categories bitmask.
func (s State) Open() uint32 {
	return uint32(s) & OpenMask
}

// Upper returns the capped upper-section total.
func (s State) Upper() int {
	return int(uint32(s) >> OpenBits)
}

// IsOpen reports whether category cat is still available.
func (s State) IsOpen(cat int) bool {
	return s.Open()&(1<<uint(cat)) != 0
}

// Fill returns the state after category cat is scored: its bit cleared from
// the open mask and the upper total advanced to newUpper (already clamped
// to MaxUpper by the caller). Clearing the bit (not setting it) is what
// makes the category unavailable on subsequent turns.
func (s State) Fill(cat int, newUpper int) State {
	return Pack(newUpper, s.Open()&^(1<<uint(cat)))
}

// PopcountOpen returns the number of categories still open in s — the
// strict topological level the DP advances through.
func (s State) PopcountOpen() int {
	return bits.OnesCount32(s.Open())
}

// Terminal reports whether no categories remain open.
func (s State) Terminal() bool {
	return s.Open() == 0
}

// Fresh is the starting state of a game: all 13 categories open, no upper
// score yet accrued.
const Fresh State = State(OpenMask)

// LevelsByPopcount partitions every encodable state (popcount(open) in
// [0,13], upper in [0,63]; reachable or not) into 14 levels ordered by ascending popcount of
// the open mask. The DP driver must process level i only after every level
// < i has been written, since a single category fill strictly decreases
// popcount by exactly one.
func LevelsByPopcount() [14][]State {
	var levels [14][]State
	for upper := 0; upper <= MaxUpper; upper++ {
		for open := uint32(0); open <= OpenMask; open++ {
			s := Pack(upper, open)
			p := s.PopcountOpen()
			levels[p] = append(levels[p], s)
		}
	}
	return levels
}
