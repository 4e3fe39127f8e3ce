package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal cards",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Spades},
				{Rank: Queen, Suit: Spades},
				{Rank: Jack, Suit: Spades},
				{Rank: Ten, Suit: Spades},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Rank: Ace, Suit: Hearts},
				{Rank: King, Suit: Diamonds},
				{Rank: Queen, Suit: Clubs},
				{Rank: Jack, Suit: Spades},
				{Rank: Nine, Suit: Spades},
			},
		},
		{
			name:  "low cards",
			input: "5h4d3c2s",
			expected: []Card{
				{Rank: Five, Suit: Hearts},
				{Rank: Four, Suit: Diamonds},
				{Rank: Three, Suit: Clubs},
				{Rank: Two, Suit: Spades},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Hearts},
				{Rank: Queen, Suit: Diamonds},
				{Rank: Jack, Suit: Clubs},
			},
		},
		{
			name:  "spaces ignored",
			input: "Ah Ks",
			expected: []Card{
				{Rank: Ace, Suit: Hearts},
				{Rank: King, Suit: Spades},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AxKs",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AhK",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCards(%q) expected error, got %v", tt.input, cards)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCards(%q) unexpected error: %v", tt.input, err)
			}
			if len(cards) != len(tt.expected) {
				t.Fatalf("ParseCards(%q) = %v, want %v", tt.input, cards, tt.expected)
			}
			for i := range cards {
				if cards[i] != tt.expected[i] {
					t.Errorf("card %d = %v, want %v", i, cards[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		str      string
		notation string
	}{
		{Card{Rank: Ace, Suit: Spades}, "A♠", "As"},
		{Card{Rank: Ten, Suit: Hearts}, "T♥", "Th"},
		{Card{Rank: Two, Suit: Diamonds}, "2♦", "2d"},
		{Card{Rank: Nine, Suit: Clubs}, "9♣", "9c"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.card.Notation(); got != tt.notation {
			t.Errorf("Notation() = %q, want %q", got, tt.notation)
		}
	}
}

func TestCardEquality(t *testing.T) {
	a := Card{Rank: Queen, Suit: Hearts}
	b := Card{Rank: Queen, Suit: Hearts}
	c := Card{Rank: Queen, Suit: Spades}

	if a != b {
		t.Error("identical cards should be equal")
	}
	if a == c {
		t.Error("cards with different suits should not be equal")
	}
}

func TestSuitIsRed(t *testing.T) {
	if !Hearts.IsRed() || !Diamonds.IsRed() {
		t.Error("hearts and diamonds are red")
	}
	if Spades.IsRed() || Clubs.IsRed() {
		t.Error("spades and clubs are black")
	}
}
