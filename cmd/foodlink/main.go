// Command foodlink connects people looking for food, and people with food to
// give, to resources and partner organizations around Los Angeles.
//
// Usage:
//
//	foodlink                       open the landing menu
//	foodlink chat [--urgent]       chat with the food assistant
//	foodlink donate                chat with the donation assistant
//	foodlink resources [flags]     list nearby food resources
//	foodlink resource <id>         show one resource
//	foodlink health                check the backend
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/foodlink-la/foodlink/config"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}
	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

// tuiCommands take over the terminal; their logs are held back until exit.
var tuiCommands = []string{"", "chat", "donate"}

func main() {
	if err := setupLogger("info", "", nil); err != nil {
		panic(err)
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Warn().Err(err).Msg("ignoring .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		flags        = &Flags{}
		deferredLogs *DeferredWriter
	)

	app := &cli.Command{
		Name:      "foodlink",
		Usage:     "Find food and donate food around Los Angeles",
		UsageText: "foodlink [global options] command [command options]",
		Description: `FoodLink LA connects food-insecure people and donors to food resources
and partner organizations through a conversational assistant.

Run 'foodlink' with no arguments to open the landing menu.`,
		Version: build(),
		Flags:   flags.Global(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var deferred io.Writer
			if slices.Contains(tuiCommands, c.Args().First()) {
				deferredLogs = &DeferredWriter{}
				deferred = deferredLogs
			}
			if err := flags.Resolve(c); err != nil {
				return ctx, err
			}
			if err := setupLogger(flags.Config.LogLevel, flags.LogFile, deferred); err != nil {
				return ctx, err
			}
			flags.Connect()
			log.Debug().Str("api_url", flags.Config.APIURL).Msg("configured backend")
			return ctx, nil
		},
	}

	chat := NewChatCmd(flags)
	app = chat.Register(app)
	app = NewDonateCmd(flags).Register(app)
	app = NewResourcesCmd(flags).Register(app)
	app = NewResourceCmd(flags).Register(app)
	app = NewHealthCmd(flags).Register(app)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'foodlink --help' for usage", c.Args().First())
		}
		return runLanding(ctx, flags)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "foodlink: %v\n", err)
		exitCode = 1
	}

	if deferredLogs != nil {
		if err := deferredLogs.Flush(zerolog.ConsoleWriter{Out: os.Stderr}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", err)
		}
	}

	stop()
	os.Exit(exitCode)
}

func setupLogger(level string, logFile string, deferred io.Writer) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		if deferred != nil {
			output = io.MultiWriter(file, deferred)
		} else {
			output = io.MultiWriter(zerolog.ConsoleWriter{Out: os.Stderr}, file)
		}
	} else if deferred != nil {
		output = deferred
	}

	log.Logger = log.Output(output).Level(parsedLevel)
	return nil
}
