package bubbletea_test

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/foodlink-la/foodlink"
	bt "github.com/foodlink-la/foodlink/bubbletea"
	"github.com/stretchr/testify/assert"
)

var friday = time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func renderResource(r foodlink.Resource) string {
	return squash(plain(bt.ResourceCard(r, friday, 100, bt.NewStyles(foodlink.DefaultTheme()))))
}

func TestResourceCard(t *testing.T) {
	t.Parallel()

	t.Run("full resource", func(t *testing.T) {
		t.Parallel()
		got := renderResource(foodlink.Resource{
			Name:          "Westside Food Bank",
			Address:       "1710 22nd St, Santa Monica, CA",
			Phone:         "(310) 828-6016",
			DistanceMiles: ptr(0.8),
			IsOpenNow:     ptr(true),
			Hours: map[string]foodlink.DayHours{
				"friday": {Status: "open", Open: "9:00 AM", Close: "5:00 PM"},
			},
			DietaryOptions: []string{"vegetarian", "halal"},
			Requirements:   "Photo ID required",
		})

		assert.Contains(t, got, "Westside Food Bank")
		assert.Contains(t, got, "1710 22nd St, Santa Monica, CA")
		assert.Contains(t, got, "OPEN NOW")
		assert.Contains(t, got, "0.8 miles away")
		assert.Contains(t, got, "Walking distance!")
		assert.Contains(t, got, "Today: 9:00 AM - 5:00 PM")
		assert.Contains(t, got, "vegetarian · halal")
		assert.Contains(t, got, "Requirements: Photo ID required")
		assert.Contains(t, got, "Call: (310) 828-6016")
		assert.Contains(t, got, "https://www.google.com/maps/dir/?api=1&destination=")
	})

	t.Run("closed badge and far distance", func(t *testing.T) {
		t.Parallel()
		got := renderResource(foodlink.Resource{Name: "Pantry", DistanceMiles: ptr(2.5), IsOpenNow: ptr(false)})

		assert.Contains(t, got, "Closed")
		assert.NotContains(t, got, "OPEN NOW")
		assert.Contains(t, got, "2.5 miles away")
		assert.NotContains(t, got, "Walking distance!")
	})

	t.Run("exactly one mile is walking distance", func(t *testing.T) {
		t.Parallel()
		got := renderResource(foodlink.Resource{Name: "Pantry", DistanceMiles: ptr(1.0)})
		assert.Contains(t, got, "1 miles away")
		assert.Contains(t, got, "Walking distance!")
	})

	t.Run("unknown status and distance are omitted", func(t *testing.T) {
		t.Parallel()
		got := renderResource(foodlink.Resource{Name: "Pantry"})
		assert.NotContains(t, got, "OPEN NOW")
		assert.NotContains(t, got, "Closed")
		assert.NotContains(t, got, "miles away")
		assert.NotContains(t, got, "Call:")
	})

	t.Run("hours only when open today", func(t *testing.T) {
		t.Parallel()
		got := renderResource(foodlink.Resource{
			Name: "Pantry",
			Hours: map[string]foodlink.DayHours{
				"friday":   {Status: "closed"},
				"saturday": {Status: "open", Open: "8:00 AM", Close: "noon"},
			},
		})
		assert.NotContains(t, got, "Today:")
	})

	t.Run("offerings capped at four with dashes as spaces", func(t *testing.T) {
		t.Parallel()
		got := renderResource(foodlink.Resource{
			Name:      "Pantry",
			Offerings: []string{"fresh-produce", "canned-goods", "bread", "dairy", "hot-meals", "baby-formula"},
		})
		assert.Contains(t, got, "fresh produce · canned goods · bread · dairy · +2 more")
		assert.NotContains(t, got, "hot meals")
	})

	t.Run("no restrictions is hidden", func(t *testing.T) {
		t.Parallel()
		got := renderResource(foodlink.Resource{Name: "Pantry", Requirements: "No Restrictions"})
		assert.NotContains(t, got, "Requirements")
	})

	t.Run("long notes are truncated", func(t *testing.T) {
		t.Parallel()
		card := bt.ResourceCard(foodlink.Resource{Name: "Pantry", Notes: strings.Repeat("a", 200)},
			friday, 240, bt.NewStyles(foodlink.DefaultTheme()))
		got := plain(card)
		assert.Contains(t, got, strings.Repeat("a", 150)+"...")
		assert.NotContains(t, got, strings.Repeat("a", 151))
	})

	t.Run("lines fit the requested width", func(t *testing.T) {
		t.Parallel()
		card := bt.ResourceCard(foodlink.Resource{
			Name:      strings.Repeat("Very Long Pantry Name ", 5),
			IsOpenNow: ptr(true),
			Notes:     strings.Repeat("word ", 40),
		}, friday, 60, bt.NewStyles(foodlink.DefaultTheme()))

		for _, line := range strings.Split(card, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), 60)
		}
		assert.Contains(t, plain(card), "…")
		assert.Contains(t, plain(card), "OPEN NOW")
	})
}

func TestOrganizationCard(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(foodlink.DefaultTheme())

	t.Run("full organization", func(t *testing.T) {
		t.Parallel()
		got := squash(plain(bt.OrganizationCard(foodlink.Organization{
			Name:                "St. Joseph Center",
			Area:                "Venice",
			Address:             "204 Hampton Dr",
			Phone:               "(310) 396-6468",
			Email:               "info@stjosephctr.org",
			Website:             "https://stjosephctr.org",
			CommonDistributions: []string{"hot meals", "groceries"},
			PickupAvailable:     true,
			Notes:               "Accepts produce on weekdays.",
			Contact:             "Call the kitchen manager",
		}, 100, styles)))

		assert.Contains(t, got, "St. Joseph Center")
		assert.Contains(t, got, "Pickup Available")
		assert.Contains(t, got, "@ Venice")
		assert.Contains(t, got, "204 Hampton Dr")
		assert.Contains(t, got, "They distribute: hot meals · groceries")
		assert.Contains(t, got, "Accepts produce on weekdays.")
		assert.Contains(t, got, "Contact to coordinate:")
		assert.Contains(t, got, "Phone: (310) 396-6468")
		assert.Contains(t, got, "Email: info@stjosephctr.org")
		assert.Contains(t, got, "Website: https://stjosephctr.org")
		assert.Contains(t, got, "Next step: Call the kitchen manager")
	})

	t.Run("minimal organization", func(t *testing.T) {
		t.Parallel()
		got := plain(bt.OrganizationCard(foodlink.Organization{Name: "Food Forward"}, 100, styles))
		assert.Contains(t, got, "Food Forward")
		assert.NotContains(t, got, "Pickup Available")
		assert.NotContains(t, got, "Contact to coordinate:")
	})
}

func TestTruncateNote(t *testing.T) {
	t.Parallel()

	t.Run("short notes are unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Bring a bag.", bt.TruncateNote("Bring a bag."))
		exact := strings.Repeat("x", 150)
		assert.Equal(t, exact, bt.TruncateNote(exact))
	})

	t.Run("counts grapheme clusters", func(t *testing.T) {
		t.Parallel()
		note := strings.Repeat("e\u0301", 151)
		got := bt.TruncateNote(note)
		assert.Equal(t, strings.Repeat("e\u0301", 150)+"...", got)
	})
}

func TestMessageBlocks(t *testing.T) {
	t.Parallel()

	theme := foodlink.DefaultTheme()
	styles := bt.NewStyles(theme)

	t.Run("user block has a prompt prefix", func(t *testing.T) {
		t.Parallel()
		view := plain(bt.NewUserMessageBlock("I need food", styles).View(40))
		assert.Equal(t, "> I need food", strings.TrimRight(view, " "))
	})

	t.Run("assistant block renders markdown", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAssistantMessageBlock("Try **Westside Food Bank**.\n\n- produce\n- bread", theme, styles)
		view := squash(plain(block.View(60)))
		assert.Equal(t, "Try Westside Food Bank. • produce • bread", view)
	})

	t.Run("assistant block wraps to width", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAssistantMessageBlock(strings.Repeat("pantry ", 20), theme, styles)
		for _, line := range strings.Split(block.View(30), "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), 30)
		}
		assert.Empty(t, block.View(0))
	})
}
