package main

import (
	"context"
	"fmt"
	"time"

	rand "math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/pokercoach/internal/display"
	"github.com/lox/pokercoach/internal/strategy"
)

// PlayCmd samples an action from the advice and spins it up on screen.
type PlayCmd struct {
	SpotFlags
	Seed *uint64 `help:"Deterministic RNG seed (optional)"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, _, err := setup(cli)
	if err != nil {
		return err
	}

	state, err := c.State()
	if err != nil {
		return err
	}

	lessonStore, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	stored, err := lessonStore.List(context.Background())
	if err != nil {
		return err
	}
	adjustments := make([]strategy.Adjustment, 0, len(stored))
	for _, l := range stored {
		adjustments = append(adjustments, l.Adjustment)
	}

	advice := strategy.Advise(state, adjustments)

	seed := uint64(time.Now().UnixNano())
	if c.Seed != nil {
		seed = *c.Seed
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	result := strategy.Sample(advice.Adjusted, rng)

	renderer := display.NewRenderer()
	fmt.Println(renderer.Advice(state.HoleCards, state.Board, advice))

	model := display.NewRouletteModel(advice.Adjusted, result, len(state.Board) > 0)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("running roulette: %w", err)
	}

	return nil
}
