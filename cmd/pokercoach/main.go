package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to config file" default:"~/.pokercoach/coach.hcl" type:"path"`
	Log     string           `help:"Log level (debug, info, warn, error)" default:""`

	Advise  AdviseCmd  `cmd:"" help:"Print advice for one spot"`
	Play    PlayCmd    `cmd:"" help:"Sample an action from the advice with a spin"`
	Learn   LearnCmd   `cmd:"" help:"Extract lessons from a strategy video"`
	Lessons LessonsCmd `cmd:"" help:"Manage stored lessons"`
	Serve   ServeCmd   `cmd:"" help:"Run the coach API server"`
}

func main() {
	// Optional .env for OPENAI_API_KEY and friends
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokercoach"),
		kong.Description("Table-driven poker decision advice, adjustable by lessons learned from strategy videos"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
