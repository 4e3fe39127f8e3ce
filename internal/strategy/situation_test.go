package strategy

import (
	"testing"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/position"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		actions  []game.PlayerAction
		expected Situation
	}{
		{
			name:     "no actions is RFI",
			actions:  nil,
			expected: RFI,
		},
		{
			name: "folds only is RFI",
			actions: []game.PlayerAction{
				{Position: position.UTG, Action: game.Fold},
				{Position: position.HJ, Action: game.Fold},
			},
			expected: RFI,
		},
		{
			name: "limper",
			actions: []game.PlayerAction{
				{Position: position.UTG, Action: game.Call},
			},
			expected: VsLimp,
		},
		{
			name: "single raise",
			actions: []game.PlayerAction{
				{Position: position.CO, Action: game.Raise, Amount: 3},
			},
			expected: VsRaise,
		},
		{
			name: "bet counts as a raise",
			actions: []game.PlayerAction{
				{Position: position.CO, Action: game.Bet, Amount: 3},
			},
			expected: VsRaise,
		},
		{
			name: "limp then raise is vs_raise",
			actions: []game.PlayerAction{
				{Position: position.UTG, Action: game.Call},
				{Position: position.CO, Action: game.Raise, Amount: 4},
			},
			expected: VsRaise,
		},
		{
			name: "two raises is vs_3bet",
			actions: []game.PlayerAction{
				{Position: position.CO, Action: game.Raise, Amount: 3},
				{Position: position.BTN, Action: game.Raise, Amount: 9},
			},
			expected: Vs3Bet,
		},
		{
			name: "three raises is vs_4bet",
			actions: []game.PlayerAction{
				{Position: position.HJ, Action: game.Raise, Amount: 3},
				{Position: position.CO, Action: game.Raise, Amount: 9},
				{Position: position.BTN, Action: game.Raise, Amount: 22},
			},
			expected: Vs4Bet,
		},
		{
			name: "last write wins per position",
			actions: []game.PlayerAction{
				{Position: position.CO, Action: game.Raise, Amount: 3},
				{Position: position.CO, Action: game.Call},
			},
			expected: VsLimp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Infer(tt.actions); got != tt.expected {
				t.Errorf("Infer() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPostflopSituation(t *testing.T) {
	hole := deck.MustParseCards("AhKs")

	tests := []struct {
		name     string
		state    game.State
		expected Situation
	}{
		{
			name: "hero was aggressor, unopened flop",
			state: game.State{
				Position:  position.CO,
				HoleCards: hole,
				Street:    game.Flop,
				Actions: []game.PlayerAction{
					{Position: position.CO, Action: game.Raise, Amount: 3},
					{Position: position.BB, Action: game.Call},
				},
			},
			expected: CBet,
		},
		{
			name: "villain bets the flop",
			state: game.State{
				Position:  position.CO,
				HoleCards: hole,
				Street:    game.Flop,
				Actions: []game.PlayerAction{
					{Position: position.BB, Action: game.Raise, Amount: 3},
					{Position: position.CO, Action: game.Call},
					{Position: position.BB, Action: game.Bet, Amount: 4, Street: game.Flop},
				},
			},
			expected: FacingCBet,
		},
		{
			name: "caller on an unopened flop is neither",
			state: game.State{
				Position:  position.BB,
				HoleCards: hole,
				Street:    game.Flop,
				Actions: []game.PlayerAction{
					{Position: position.CO, Action: game.Raise, Amount: 3},
					{Position: position.BB, Action: game.Call},
				},
			},
			expected: None,
		},
		{
			name: "hero's own flop bet does not count as facing one",
			state: game.State{
				Position:  position.CO,
				HoleCards: hole,
				Street:    game.Turn,
				Actions: []game.PlayerAction{
					{Position: position.CO, Action: game.Raise, Amount: 3},
					{Position: position.BB, Action: game.Call},
					{Position: position.CO, Action: game.Bet, Amount: 4, Street: game.Turn},
				},
			},
			expected: CBet,
		},
		{
			name: "preflop street is never a cbet spot",
			state: game.State{
				Position:  position.CO,
				HoleCards: hole,
				Street:    game.Preflop,
				Actions: []game.PlayerAction{
					{Position: position.CO, Action: game.Raise, Amount: 3},
				},
			},
			expected: None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PostflopSituation(tt.state); got != tt.expected {
				t.Errorf("PostflopSituation() = %q, want %q", got, tt.expected)
			}
		})
	}
}
