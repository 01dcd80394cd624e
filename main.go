package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/boardgame-engine/internal"
	"github.com/rocketscienceinc/boardgame-engine/internal/config"
)

const defaultListLimit = 10

var errMissingGameID = errors.New("game id is required")

// main - is the entry point of the application. It parses the command line and runs the selected command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "boardgame",
		Usage: "play turn-based board games in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yml",
				Usage:   "path to the yaml config file",
			},
		},
		Action: play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "start a new game",
				Action: play,
			},
			{
				Name:      "replay",
				Usage:     "replay an archived game",
				ArgsUsage: "<game-id>",
				Action:    replay,
			},
			{
				Name:  "list",
				Usage: "list the newest archived games",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Value:   defaultListLimit,
						Usage:   "maximum number of games to list",
					},
				},
				Action: list,
			},
			{
				Name:      "delete",
				Usage:     "delete an archived game",
				ArgsUsage: "<game-id>",
				Action:    remove,
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	conf := config.MustLoad(cmd.String("config"))
	logger := initLogger(conf)

	if _, err := app.RunGame(ctx, logger, conf, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func replay(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errMissingGameID
	}

	conf := config.MustLoad(cmd.String("config"))
	logger := initLogger(conf)

	if err := app.RunReplay(ctx, logger, conf, cmd.Args().First(), os.Stdout); err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	return nil
}

func list(ctx context.Context, cmd *cli.Command) error {
	conf := config.MustLoad(cmd.String("config"))
	logger := initLogger(conf)

	if err := app.RunList(ctx, logger, conf, int64(cmd.Int("limit")), os.Stdout); err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	return nil
}

func remove(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errMissingGameID
	}

	conf := config.MustLoad(cmd.String("config"))
	logger := initLogger(conf)

	if err := app.RunDelete(ctx, logger, conf, cmd.Args().First()); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	return nil
}

// initialize logger. Logs go to stderr so they stay out of the game screen.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
