package main

import (
	"testing"

	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/position"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected game.PlayerAction
		wantErr  bool
	}{
		{"UTG:raise:3", game.PlayerAction{Position: position.UTG, Action: game.Raise, Amount: 3}, false},
		{"bb:call", game.PlayerAction{Position: position.BB, Action: game.Call}, false},
		{"flop/BB:bet:5", game.PlayerAction{Position: position.BB, Action: game.Bet, Amount: 5, Street: game.Flop}, false},
		{"turn/CO:check", game.PlayerAction{Position: position.CO, Action: game.Check, Street: game.Turn}, false},
		{"MP:raise:3", game.PlayerAction{}, true},
		{"UTG:shove", game.PlayerAction{}, true},
		{"UTG:raise:big", game.PlayerAction{}, true},
		{"river/UTG", game.PlayerAction{}, true},
		{"later/UTG:bet:5", game.PlayerAction{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAction(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseAction(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAction(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseAction(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSpotFlagsState(t *testing.T) {
	flags := SpotFlags{
		Hand:     "AsKh",
		Board:    "Kd7h2c",
		Position: "co",
		Stack:    40,
		Action:   []string{"UTG:raise:3", "flop/UTG:check"},
	}

	state, err := flags.State()
	if err != nil {
		t.Fatal(err)
	}
	if state.Street != game.Flop {
		t.Errorf("Street = %v, want flop (3 board cards)", state.Street)
	}
	if state.Position != position.CO {
		t.Errorf("Position = %v, want CO", state.Position)
	}
	if len(state.Actions) != 2 {
		t.Errorf("Actions = %d, want 2", len(state.Actions))
	}
}

func TestSpotFlagsStateErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags SpotFlags
	}{
		{"one card", SpotFlags{Hand: "As", Position: "BTN"}},
		{"bad board size", SpotFlags{Hand: "AsKh", Board: "Kd7h", Position: "BTN"}},
		{"bad position", SpotFlags{Hand: "AsKh", Position: "MP"}},
		{"unparseable hand", SpotFlags{Hand: "XX", Position: "BTN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.flags.State(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
