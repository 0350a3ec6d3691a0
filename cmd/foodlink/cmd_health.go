package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/foodlink-la/foodlink"
)

type HealthCmd struct {
	flags *Flags
	json  bool
}

// NewHealthCmd creates a new health command
func NewHealthCmd(flags *Flags) *HealthCmd {
	return &HealthCmd{flags: flags}
}

// Register adds the health command to the application
func (cmd *HealthCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "health",
		Usage:       "Check that the backend is reachable",
		UsageText:   "foodlink health [--json]",
		Description: "Prints the backend's diagnostic payload. Exits non-zero when the backend cannot be reached.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the raw payload", Destination: &cmd.json},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *HealthCmd) run(ctx context.Context, c *cli.Command) error {
	status, err := cmd.flags.Backend.Health(ctx)
	if err != nil {
		return fmt.Errorf("backend at %s is unreachable: %w", cmd.flags.Config.APIURL, err)
	}
	out := c.Root().Writer
	if cmd.json {
		return writeJSON(out, status)
	}
	writeHealth(out, cmd.flags.Config.APIURL, status)
	return nil
}

var (
	healthOK  = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)).Bold(true)
	healthKey = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))
)

// writeHealth prints status keys in sorted order. Nested values are shown as
// compact JSON.
func writeHealth(out io.Writer, url string, status foodlink.HealthStatus) {
	_, _ = fmt.Fprintf(out, "%s %s\n", healthOK.Render("●"), url)
	keys := slices.Sorted(maps.Keys(status))
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	for _, k := range keys {
		_, _ = fmt.Fprintf(out, "  %s  %s\n", healthKey.Render(fmt.Sprintf("%-*s", width, k)), healthValue(status[k]))
	}
}

func healthValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case nil:
		return "null"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
