package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"notesapp/internal/config"
	"notesapp/internal/logs"
	"notesapp/internal/tui"
)

// Populated at build-time via -ldflags.
var version = "dev"

func main() {
	flags := config.CLIFlags{}

	app := &cli.Command{
		Name:    "notesapp",
		Usage:   "Keep notes with reminders and colors for the length of a session",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("NOTES_CONFIG"),
				Value:       config.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error, disabled)",
				Sources:     cli.EnvVars("NOTES_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("NOTES_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "initial note color as #rrggbb",
				Sources:     cli.EnvVars("NOTES_COLOR"),
				Destination: &flags.Color,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unexpected argument %q. Run 'notesapp --help' for usage", c.Args().First())
			}
			return run(ctx, flags)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, flags config.CLIFlags) error {
	cfg, err := config.Load(flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logs.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer logs.Close()

	log.Info().Str("version", version).Str("color", cfg.DefaultColor).Msg("starting")

	p := tea.NewProgram(tui.NewAppModel(cfg, time.Now), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}

	if app, ok := final.(tui.AppModel); ok && app.Err() != nil {
		return app.Err()
	}

	log.Info().Msg("exiting")
	return nil
}
