package main

import (
	"context"
	"fmt"
)

// LearnCmd fetches a strategy video transcript, extracts adjustments
// and stores them as lessons.
type LearnCmd struct {
	URL string `arg:"" help:"Video URL or ID"`
}

func (c *LearnCmd) Run(cli *CLI) error {
	cfg, logger, err := setup(cli)
	if err != nil {
		return err
	}

	learner := buildLearner(cfg, logger)
	if learner == nil {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}

	lessonStore, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	learned, err := learner.Learn(ctx, c.URL)
	if err != nil {
		return err
	}
	if len(learned) == 0 {
		fmt.Println("No actionable adjustments found in this video.")
		return nil
	}

	if err := lessonStore.Put(ctx, learned...); err != nil {
		return err
	}

	fmt.Printf("Learned %d adjustment(s):\n", len(learned))
	if learned[0].Summary != "" {
		fmt.Printf("  %s\n\n", learned[0].Summary)
	}
	for _, l := range learned {
		fmt.Printf("  [%s] %s\n", l.ID, describeLesson(l))
	}
	return nil
}
