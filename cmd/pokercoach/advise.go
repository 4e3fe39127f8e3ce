package main

import (
	"context"
	"fmt"

	"github.com/lox/pokercoach/internal/display"
	"github.com/lox/pokercoach/internal/strategy"
)

// AdviseCmd prints advice for a single spot.
type AdviseCmd struct {
	SpotFlags
}

func (c *AdviseCmd) Run(cli *CLI) error {
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

	fmt.Println(display.NewRenderer().Advice(state.HoleCards, state.Board, advice))
	return nil
}
