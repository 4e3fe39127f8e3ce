package position

import "testing"

func TestSeats(t *testing.T) {
	tests := []struct {
		size     int
		expected []Position
	}{
		{2, []Position{BTN, BB}},
		{3, []Position{BTN, SB, BB}},
		{6, []Position{LJ, HJ, CO, BTN, SB, BB}},
		{9, []Position{UTG, UTG1, UTG2, LJ, HJ, CO, BTN, SB, BB}},
	}

	for _, tt := range tests {
		seats := Seats(tt.size)
		if len(seats) != len(tt.expected) {
			t.Fatalf("Seats(%d) = %v, want %v", tt.size, seats, tt.expected)
		}
		for i := range seats {
			if seats[i] != tt.expected[i] {
				t.Errorf("Seats(%d)[%d] = %v, want %v", tt.size, i, seats[i], tt.expected[i])
			}
		}
	}
}

// Every table size selects a subsequence of the canonical order, and
// sizes >= 3 always end BTN, SB, BB.
func TestSeatsPreserveCanonicalOrder(t *testing.T) {
	for size := 2; size <= 9; size++ {
		seats := Seats(size)
		if len(seats) != size {
			t.Fatalf("Seats(%d) has %d seats", size, len(seats))
		}

		prev := -1
		for _, p := range seats {
			idx := Index(p)
			if idx <= prev {
				t.Errorf("Seats(%d): %v out of canonical order", size, seats)
			}
			prev = idx
		}

		if size >= 3 {
			tail := seats[len(seats)-3:]
			if tail[0] != BTN || tail[1] != SB || tail[2] != BB {
				t.Errorf("Seats(%d) does not end BTN,SB,BB: %v", size, seats)
			}
		}
	}
}

func TestSeatsOutOfRange(t *testing.T) {
	if Seats(1) != nil || Seats(10) != nil {
		t.Error("out-of-range table sizes should return nil")
	}
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		pos  Position
		tier Tier
	}{
		{UTG, Early},
		{UTG1, Early},
		{UTG2, Early},
		{LJ, Middle},
		{HJ, Middle},
		{CO, Late},
		{BTN, Late},
		{SB, Blinds},
		{BB, Blinds},
	}

	for _, tt := range tests {
		if got := TierOf(tt.pos); got != tt.tier {
			t.Errorf("TierOf(%v) = %v, want %v", tt.pos, got, tt.tier)
		}
	}
}

func TestValid(t *testing.T) {
	for _, p := range All {
		if !Valid(p) {
			t.Errorf("canonical position %v should be valid", p)
		}
	}
	if Valid("MP") || Valid("") {
		t.Error("non-canonical labels should be invalid")
	}
}
