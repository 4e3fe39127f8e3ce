package main

import (
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokercoach/cmd/pokercoach/shared"
	"github.com/lox/pokercoach/internal/lessons"
	"github.com/lox/pokercoach/internal/server"
)

// ServeCmd runs the coach API server.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

func (c *ServeCmd) Run(cli *CLI) error {
	cfg, logger, err := setup(cli)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Addr = c.Addr
	}

	lessonStore, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	learner := buildLearner(cfg, logger)
	if learner == nil {
		logger.Warn("OPENAI_API_KEY not set, lesson ingestion disabled")
	}

	srv := server.New(cfg.Server.Addr, lessonStore, learnerOrNil(learner), logger)

	ctx := shared.SetupSignalHandler(logger)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(ctx)
	})
	return g.Wait()
}

// learnerOrNil avoids handing the server a typed nil.
func learnerOrNil(l *lessons.Learner) server.Learner {
	if l == nil {
		return nil
	}
	return l
}
