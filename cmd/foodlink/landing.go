package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

const (
	choiceUrgent = "urgent"
	choiceFind   = "find"
	choiceDonate = "donate"
	choiceQuit   = "quit"
)

// runLanding asks which surface to open and opens it.
func runLanding(ctx context.Context, flags *Flags) error {
	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("FoodLink LA").
				Description("Connecting food to people who need it").
				Options(
					huh.NewOption("I need food now (urgent)", choiceUrgent),
					huh.NewOption("Find food near me", choiceFind),
					huh.NewOption("Donate food", choiceDonate),
					huh.NewOption("Quit", choiceQuit),
				).
				Value(&choice),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("landing menu: %w", err)
	}
	return openChoice(ctx, flags, choice)
}

func openChoice(ctx context.Context, flags *Flags, choice string) error {
	switch choice {
	case choiceUrgent:
		return NewChatCmd(flags).Run(ctx, true)
	case choiceFind:
		return NewChatCmd(flags).Run(ctx, false)
	case choiceDonate:
		return NewDonateCmd(flags).Run(ctx)
	case choiceQuit, "":
		return nil
	default:
		return fmt.Errorf("unknown choice %q", choice)
	}
}
