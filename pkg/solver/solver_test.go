package solver

import (
	"testing"

	"github.com/yourusername/yahtzeesolver/internal/gamestate"
)

func TestTerminalValues(t *testing.T) {
	s, err := BuildSolver(DefaultOptions())
	if err != nil {
		t.Fatalf("BuildSolver: %v", err)
	}

	v, err := s.Value(uint32(gamestate.Pack(gamestate.MaxUpper, 0)))
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 35 {
		t.Errorf("V[upper=63,open=0] = %v, want 35", v)
	}

	v, err = s.Value(0)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 0 {
		t.Errorf("V[0] = %v, want 0", v)
	}

	v, err = s.Value(uint32(gamestate.Pack(40, 0)))
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 0 {
		t.Errorf("V[upper=40,open=0] = %v, want 0 (bonus not earned)", v)
	}
}

func TestValueRejectsOutOfRangeState(t *testing.T) {
	s, err := BuildSolver(DefaultOptions())
	if err != nil {
		t.Fatalf("BuildSolver: %v", err)
	}
	if _, err := s.Value(1 << 19); err == nil {
		t.Error("expected error for state with bit 19 set")
	}
}

func TestBestScoreYahtzeeAloneAtLeast50(t *testing.T) {
	s, err := BuildSolver(DefaultOptions())
	if err != nil {
		t.Fatalf("BuildSolver: %v", err)
	}
	hand := [5]int8{1, 1, 1, 1, 1}
	action, err := s.BestAction(uint32(gamestate.Fresh), hand, 0)
	if err != nil {
		t.Fatalf("BestAction: %v", err)
	}
	if action.Value < 50 {
		t.Errorf("best immediate score for Yahtzee hand = %v, want >= 50", action.Value)
	}
}

// TestExpectedScoreBand is a slow end-to-end check of the full DP; skipped
// under -short since it runs the entire ~2^19-state backward induction.
func TestExpectedScoreBand(t *testing.T) {
	if testing.Short() {
		t.Skip("full DP is expensive; skipped with -short")
	}
	s, err := BuildSolver(Options{BuildRollTable: true, BuildTensors: true, Evaluate: true})
	if err != nil {
		t.Fatalf("BuildSolver: %v", err)
	}
	got := s.ExpectedScore()
	if got < 254.58 || got > 254.60 {
		t.Errorf("ExpectedScore() = %v, want in [254.58, 254.60]", got)
	}
}

func TestRunAndLazyValueAgree(t *testing.T) {
	if testing.Short() {
		t.Skip("full DP is expensive; skipped with -short")
	}
	lazy, err := BuildSolver(DefaultOptions())
	if err != nil {
		t.Fatalf("BuildSolver: %v", err)
	}
	eager, err := BuildSolver(Options{BuildRollTable: true, BuildTensors: true, Evaluate: true})
	if err != nil {
		t.Fatalf("BuildSolver: %v", err)
	}

	states := []uint32{
		0,
		uint32(gamestate.Fresh),
		uint32(gamestate.Pack(63, 0)),
		uint32(gamestate.Pack(0, 1<<11)), // only Yahtzee open
	}
	for _, st := range states {
		lv, err := lazy.Value(st)
		if err != nil {
			t.Fatalf("lazy Value(%d): %v", st, err)
		}
		ev, err := eager.Value(st)
		if err != nil {
			t.Fatalf("eager Value(%d): %v", st, err)
		}
		if diff := lv - ev; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("state %d: lazy=%v eager=%v disagree", st, lv, ev)
		}
	}
}
