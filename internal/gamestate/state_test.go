package gamestate

import "testing"

func TestPackUnpack(t *testing.T) {
	s := Pack(42, 0x1ABC&OpenMask)
	if s.Upper() != 42 {
		t.Errorf("Upper() = %d, want 42", s.Upper())
	}
	if s.Open() != 0x1ABC&OpenMask {
		t.Errorf("Open() = %x, want %x", s.Open(), 0x1ABC&OpenMask)
	}
}

func TestFreshState(t *testing.T) {
	if Fresh.Upper() != 0 {
		t.Errorf("Fresh.Upper() = %d, want 0", Fresh.Upper())
	}
	if Fresh.Open() != OpenMask {
		t.Errorf("Fresh.Open() = %x, want %x", Fresh.Open(), OpenMask)
	}
	if Fresh.PopcountOpen() != 13 {
		t.Errorf("Fresh.PopcountOpen() = %d, want 13", Fresh.PopcountOpen())
	}
	if uint32(Fresh) != 8191 {
		t.Errorf("Fresh = %d, want 8191", uint32(Fresh))
	}
}

func TestFillClearsBitAndSetsUpper(t *testing.T) {
	s := Fresh
	next := s.Fill(3, 12)
	if next.IsOpen(3) {
		t.Error("Fill did not clear the filled category bit")
	}
	if next.Upper() != 12 {
		t.Errorf("Fill set Upper() = %d, want 12", next.Upper())
	}
	if next.PopcountOpen() != s.PopcountOpen()-1 {
		t.Errorf("Fill changed popcount by %d, want -1", next.PopcountOpen()-s.PopcountOpen())
	}
}

func TestTerminal(t *testing.T) {
	term := Pack(63, 0)
	if !term.Terminal() {
		t.Error("state with open mask 0 should be Terminal")
	}
	if Fresh.Terminal() {
		t.Error("Fresh should not be Terminal")
	}
}

func TestLevelsByPopcountOrdering(t *testing.T) {
	levels := LevelsByPopcount()
	total := 0
	for p, states := range levels {
		total += len(states)
		for _, s := range states {
			if s.PopcountOpen() != p {
				t.Fatalf("level %d contains state with popcount %d", p, s.PopcountOpen())
			}
		}
	}
	if total != NumStates {
		t.Errorf("levels cover %d states, want %d", total, NumStates)
	}
}
