package main

import (
	"context"
	"os"

	"github.com/desertthunder/wvclb/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// newApp builds the root command. The config is loaded once in Before so every
// subcommand sees the same settings.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "wvclb",
		Usage:   "Share tracks and paint on a tiny canvas",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error); overrides log.level",
			},
		},
		Before:   r.Before,
		Commands: r.register(),
	}
}
