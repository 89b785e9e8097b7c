// guidecal exports the WildHacks 2026 schedule to calendar apps.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
)

const (
	appName    = "guidecal"
	appVersion = "2026.4.0"
)

func main() {
	app := cli.App{
		Name:    appName,
		Usage:   "Add the WildHacks 2026 schedule to your calendar",
		Version: appVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config file (default: ~/.config/wildhacks-guide/config.yaml)",
			},
			&cli.StringFlag{
				Name:  "schedule",
				Usage: "path to a schedule file (default: the built-in WildHacks 2026 schedule)",
			},
			&cli.BoolFlag{
				Name:  "verbose, v",
				Usage: "verbose logging",
			},
		},
		Before: setupLogging,
		Commands: []cli.Command{
			EventsCmd,
			SaveCmd,
			OpenCmd,
			LinkCmd,
			InspectCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func setupLogging(c *cli.Context) error {
	level := slog.LevelInfo
	if c.GlobalBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
