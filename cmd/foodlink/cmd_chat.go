package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/foodlink-la/foodlink"
	bt "github.com/foodlink-la/foodlink/bubbletea"
)

type ChatCmd struct {
	flags    *Flags
	urgent   bool
	location string
}

// NewChatCmd creates a new chat command
func NewChatCmd(flags *Flags) *ChatCmd {
	return &ChatCmd{flags: flags}
}

// Register adds the chat command to the application
func (cmd *ChatCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "chat",
		Usage:     "Chat with the food assistant",
		UsageText: "foodlink chat [--urgent] [--location <place>]",
		Description: `Opens the food assistant. Tell it where you are and what you need and it
will suggest food pantries, meal services, and other resources nearby.

With --urgent the assistant is told right away that you need food now.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "urgent",
				Aliases:     []string{"u"},
				Usage:       "ask for help immediately",
				Destination: &cmd.urgent,
			},
			&cli.StringFlag{
				Name:        "location",
				Aliases:     []string{"l"},
				Usage:       "where you are (defaults to the configured location)",
				Destination: &cmd.location,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return cmd.Run(ctx, cmd.urgent)
		},
	})
	return app
}

// Run opens the visitor surface.
func (cmd *ChatCmd) Run(ctx context.Context, urgent bool) error {
	location := cmd.location
	if location == "" {
		location = cmd.flags.Config.Location
	}
	return runSurface(ctx, cmd.flags, bt.Visitor(), location, urgent)
}

type DonateCmd struct {
	flags *Flags
}

// NewDonateCmd creates a new donate command
func NewDonateCmd(flags *Flags) *DonateCmd {
	return &DonateCmd{flags: flags}
}

// Register adds the donate command to the application
func (cmd *DonateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "donate",
		Usage:       "Chat with the donation assistant",
		UsageText:   "foodlink donate",
		Description: "Describe what you can give and get matched with organizations that accept it.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return cmd.Run(ctx)
		},
	})
	return app
}

// Run opens the donor surface.
func (cmd *DonateCmd) Run(ctx context.Context) error {
	return runSurface(ctx, cmd.flags, bt.Donor(), "", false)
}

func runSurface(ctx context.Context, flags *Flags, surface bt.Surface, location string, urgent bool) error {
	exchange := surface.NewExchange(flags.Backend,
		foodlink.WithLogger(log.With().Str("component", "exchange").Logger()))
	exchange.SetLocation(location)

	log.Info().
		Str("session_id", exchange.Session().ID).
		Str("agent_type", string(surface.Agent)).
		Bool("urgent", urgent).
		Msg("chat session started")

	m := bt.New(exchange, surface, foodlink.DefaultTheme(), bt.WithUrgent(urgent))
	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
