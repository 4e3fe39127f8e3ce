package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokercoach/cmd/pokercoach/shared"
	"github.com/lox/pokercoach/internal/config"
	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/lessons"
	"github.com/lox/pokercoach/internal/position"
	"github.com/lox/pokercoach/internal/store"
)

// setup loads configuration and builds the logger every command needs.
func setup(cli *CLI) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, nil, err
	}
	if cli.Log != "" {
		cfg.LogLevel = cli.Log
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, shared.SetupLogger(cfg.LogLevel), nil
}

// openStore picks Postgres when a DSN is configured, the JSON file
// otherwise. The returned closer is safe to call on either.
func openStore(cfg *config.Config) (store.LessonStore, func(), error) {
	if cfg.Storage.PostgresDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pg, err := store.OpenPostgres(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	}

	fs, err := store.NewFileStore(cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() {}, nil
}

// buildLearner wires the transcript and extraction clients. Returns
// nil when OPENAI_API_KEY is not set.
func buildLearner(cfg *config.Config, logger *log.Logger) *lessons.Learner {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}

	transcripts := lessons.NewTranscriptClient(cfg.Transcript.BaseURL, quartz.NewReal(), logger)
	transcripts.SetRetries(cfg.Transcript.Retries)

	extractor := lessons.NewExtractor(lessons.ExtractorConfig{
		APIKey:  apiKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	}, logger)

	return lessons.NewLearner(transcripts, extractor, logger)
}

// SpotFlags describes one decision point on the command line.
type SpotFlags struct {
	Hand     string   `arg:"" help:"Hole cards, e.g. AsKh"`
	Board    string   `help:"Board cards, e.g. Kd7h2c"`
	Position string   `short:"p" help:"Hero position" default:"BTN"`
	Stack    float64  `help:"Effective stack in big blinds" default:"100"`
	Pot      float64  `help:"Pot size in big blinds"`
	Action   []string `short:"a" help:"Prior action as [street/]position:action[:amount], e.g. UTG:raise:3 or flop/BB:bet:5"`
}

// State builds the game state from the flags.
func (f *SpotFlags) State() (game.State, error) {
	hole, err := deck.ParseCards(f.Hand)
	if err != nil {
		return game.State{}, fmt.Errorf("parsing hand: %w", err)
	}
	if len(hole) != 2 {
		return game.State{}, fmt.Errorf("expected 2 hole cards, got %d", len(hole))
	}

	var board []deck.Card
	if f.Board != "" {
		board, err = deck.ParseCards(f.Board)
		if err != nil {
			return game.State{}, fmt.Errorf("parsing board: %w", err)
		}
	}

	pos := position.Position(strings.ToUpper(f.Position))
	if !position.Valid(pos) {
		return game.State{}, fmt.Errorf("unknown position %q", f.Position)
	}

	street := game.Preflop
	switch len(board) {
	case 0:
	case 3:
		street = game.Flop
	case 4:
		street = game.Turn
	case 5:
		street = game.River
	default:
		return game.State{}, fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", len(board))
	}

	actions := make([]game.PlayerAction, 0, len(f.Action))
	for _, raw := range f.Action {
		action, err := parseAction(raw)
		if err != nil {
			return game.State{}, err
		}
		actions = append(actions, action)
	}

	return game.State{
		Position:       pos,
		HoleCards:      hole,
		Street:         street,
		Board:          board,
		PotSize:        f.Pot,
		EffectiveStack: f.Stack,
		Actions:        actions,
	}, nil
}

func parseAction(raw string) (game.PlayerAction, error) {
	var action game.PlayerAction

	rest := raw
	if street, tail, found := strings.Cut(raw, "/"); found {
		s := game.Street(strings.ToLower(street))
		if !game.ValidStreet(s) {
			return action, fmt.Errorf("unknown street %q in action %q", street, raw)
		}
		action.Street = s
		rest = tail
	}

	parts := strings.Split(rest, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return action, fmt.Errorf("action %q must be [street/]position:action[:amount]", raw)
	}

	pos := position.Position(strings.ToUpper(parts[0]))
	if !position.Valid(pos) {
		return action, fmt.Errorf("unknown position %q in action %q", parts[0], raw)
	}
	action.Position = pos

	kind := game.ActionType(strings.ToLower(parts[1]))
	switch kind {
	case game.Fold, game.Check, game.Call, game.Bet, game.Raise, game.AllIn:
		action.Action = kind
	default:
		return action, fmt.Errorf("unknown action %q in %q", parts[1], raw)
	}

	if len(parts) == 3 {
		amount, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return action, fmt.Errorf("bad amount in action %q: %w", raw, err)
		}
		action.Amount = amount
	}

	return action, nil
}
