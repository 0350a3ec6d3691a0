package bubbletea

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/foodlink-la/foodlink"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	maxOfferings   = 4
	maxNoteLength  = 150
	walkingMiles   = 1.0
	noRestrictions = "no restrictions"
	minCardWidth   = 24
)

// ResourceCard renders a food resource as a bordered card. now selects which
// day's hours are shown.
func ResourceCard(r foodlink.Resource, now time.Time, width int, styles Styles) string {
	inner := cardInnerWidth(width, styles)
	var lines []string

	badge := ""
	if r.IsOpenNow != nil {
		if *r.IsOpenNow {
			badge = styles.Success.Render("● OPEN NOW")
		} else {
			badge = styles.Error.Render("● Closed")
		}
	}
	lines = append(lines, titleLine(r.Name, badge, inner, styles))
	if r.Address != "" {
		lines = append(lines, styles.Muted.Render(r.Address))
	}

	if r.DistanceMiles != nil {
		d := *r.DistanceMiles
		line := strconv.FormatFloat(d, 'f', -1, 64) + " miles away"
		if d <= walkingMiles {
			line += " " + styles.Success.Render("• Walking distance!")
		}
		lines = append(lines, line)
	}

	if h, ok := r.HoursOn(now); ok && h.Status == "open" {
		lines = append(lines, fmt.Sprintf("Today: %s - %s", h.Open, h.Close))
	}

	if len(r.Offerings) > 0 {
		shown := r.Offerings[:min(len(r.Offerings), maxOfferings)]
		tags := make([]string, 0, len(shown)+1)
		for _, o := range shown {
			tags = append(tags, styles.Tag.Render(strings.ReplaceAll(o, "-", " ")))
		}
		if extra := len(r.Offerings) - len(shown); extra > 0 {
			tags = append(tags, styles.Muted.Render(fmt.Sprintf("+%d more", extra)))
		}
		lines = append(lines, label("Offerings", styles)+strings.Join(tags, " · "))
	}

	if len(r.DietaryOptions) > 0 {
		opts := make([]string, len(r.DietaryOptions))
		for i, o := range r.DietaryOptions {
			opts[i] = styles.Success.UnsetBold().Render(o)
		}
		lines = append(lines, label("Dietary options", styles)+strings.Join(opts, " · "))
	}

	if req := strings.TrimSpace(r.Requirements); req != "" && !strings.EqualFold(req, noRestrictions) {
		lines = append(lines, styles.Warning.Render("Requirements: "+req))
	}

	if r.Notes != "" {
		lines = append(lines, label("Note", styles)+TruncateNote(r.Notes))
	}

	lines = append(lines, label("Directions", styles)+styles.Accent.Render(r.DirectionsURL()))
	if r.Phone != "" {
		lines = append(lines, label("Call", styles)+r.Phone)
	}

	return styles.Card.Width(inner + styles.Card.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

// OrganizationCard renders a donation partner as a bordered card.
func OrganizationCard(o foodlink.Organization, width int, styles Styles) string {
	inner := cardInnerWidth(width, styles)
	var lines []string

	badge := ""
	if o.PickupAvailable {
		badge = styles.Success.Render("Pickup Available")
	}
	lines = append(lines, titleLine(o.Name, badge, inner, styles))
	if o.Area != "" {
		lines = append(lines, styles.Tag.Render("@ "+o.Area))
	}
	if o.Address != "" {
		lines = append(lines, styles.Muted.Render(o.Address))
	}

	if len(o.CommonDistributions) > 0 {
		tags := make([]string, len(o.CommonDistributions))
		for i, d := range o.CommonDistributions {
			tags[i] = styles.Tag.Render(d)
		}
		lines = append(lines, label("They distribute", styles)+strings.Join(tags, " · "))
	}

	if o.Notes != "" {
		lines = append(lines, o.Notes)
	}

	var contact []string
	if o.Phone != "" {
		contact = append(contact, "  Phone: "+o.Phone)
	}
	if o.Email != "" {
		contact = append(contact, "  Email: "+o.Email)
	}
	if o.Website != "" {
		contact = append(contact, "  Website: "+styles.Accent.Render(o.Website))
	}
	if len(contact) > 0 || o.Contact != "" {
		lines = append(lines, styles.Muted.Render("Contact to coordinate:"))
		lines = append(lines, contact...)
	}
	if o.Contact != "" {
		lines = append(lines, styles.Accent.Bold(true).Render("Next step:")+" "+o.Contact)
	}

	return styles.Card.Width(inner + styles.Card.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

// TruncateNote shortens notes longer than 150 characters to their first 150
// characters followed by "...". Characters are grapheme clusters.
func TruncateNote(s string) string {
	if uniseg.GraphemeClusterCount(s) <= maxNoteLength {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for n := 0; n < maxNoteLength && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	return b.String() + "..."
}

// titleLine puts name on the left and badge on the right, truncating the
// name when both do not fit.
func titleLine(name, badge string, width int, styles Styles) string {
	avail := width
	if badge != "" {
		avail -= lipgloss.Width(badge) + 1
	}
	if avail < 1 {
		avail = 1
	}
	name = runewidth.Truncate(name, avail, "…")
	title := styles.Title.Render(name)
	if badge == "" {
		return title
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(badge)
	return title + strings.Repeat(" ", max(gap, 1)) + badge
}

func label(name string, styles Styles) string {
	return styles.Muted.Render(name+":") + " "
}

// cardInnerWidth is the text width left inside a card of the given outer
// width.
func cardInnerWidth(width int, styles Styles) int {
	w := width - styles.Card.GetHorizontalFrameSize()
	return max(w, minCardWidth)
}
