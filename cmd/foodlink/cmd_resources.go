package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/foodlink-la/foodlink"
	bt "github.com/foodlink-la/foodlink/bubbletea"
	"github.com/foodlink-la/foodlink/config"
	"github.com/foodlink-la/foodlink/geo"
)

// searchOptions are the resource search flags that were set explicitly.
// Nil pointers mean "use the config".
type searchOptions struct {
	Lat, Lon    *float64
	Location    string
	MaxDistance *float64
	Dietary     []string
	OpenNow     *bool
	Limit       *int
}

type ResourcesCmd struct {
	flags *Flags

	lat, lon    float64
	location    string
	maxDistance float64
	dietary     []string
	openNow     bool
	limit       int
	json        bool
}

// NewResourcesCmd creates a new resources command
func NewResourcesCmd(flags *Flags) *ResourcesCmd {
	return &ResourcesCmd{flags: flags}
}

// Register adds the resources command to the application
func (cmd *ResourcesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "resources",
		Usage:     "List food resources near a place",
		UsageText: "foodlink resources [--lat <lat> --lon <lon> | --location <place>] [options]",
		Description: `Lists food resources from the backend.

The search is centered on --lat/--lon when given, otherwise on --location.
With neither, the coordinates from the config file are used, then its
location.

Example:
  foodlink resources --location "Santa Monica" --open-now
  foodlink resources --lat 34.0 --lon -118.4 --dietary vegetarian,halal`,
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "lat", Usage: "latitude in decimal degrees", Destination: &cmd.lat},
			&cli.FloatFlag{Name: "lon", Usage: "longitude in decimal degrees", Destination: &cmd.lon},
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Usage: "free-text place, e.g. a neighborhood", Destination: &cmd.location},
			&cli.FloatFlag{Name: "max-distance", Usage: "search radius in miles", Destination: &cmd.maxDistance},
			&cli.StringSliceFlag{Name: "dietary", Usage: "dietary needs (repeat or comma-separate)", Destination: &cmd.dietary},
			&cli.BoolFlag{Name: "open-now", Usage: "only places open right now", Destination: &cmd.openNow},
			&cli.IntFlag{Name: "limit", Usage: "maximum number of results", Destination: &cmd.limit},
			&cli.BoolFlag{Name: "json", Usage: "print JSON instead of a table", Destination: &cmd.json},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ResourcesCmd) run(ctx context.Context, c *cli.Command) error {
	opts := searchOptions{Location: cmd.location, Dietary: splitList(cmd.dietary)}
	if c.IsSet("lat") {
		opts.Lat = &cmd.lat
	}
	if c.IsSet("lon") {
		opts.Lon = &cmd.lon
	}
	if c.IsSet("max-distance") {
		opts.MaxDistance = &cmd.maxDistance
	}
	if c.IsSet("open-now") {
		opts.OpenNow = &cmd.openNow
	}
	if c.IsSet("limit") {
		opts.Limit = &cmd.limit
	}

	cfg := cmd.flags.Config
	filter, err := buildFilter(ctx, cfg, opts, geo.New(cfg.Coordinates))
	if err != nil {
		return err
	}

	resources, err := cmd.flags.Backend.Resources(ctx, filter)
	if err != nil {
		return fmt.Errorf("list resources: %w", err)
	}

	out := c.Root().Writer
	if cmd.json {
		return writeJSON(out, resources)
	}
	writeResourceTable(out, resources)
	return nil
}

// buildFilter resolves the search from explicit flags, then the configured
// position via loc, then the configured location text.
func buildFilter(ctx context.Context, cfg *config.Config, opts searchOptions, loc foodlink.Locator) (foodlink.ResourceFilter, error) {
	filter := cfg.Filter()
	filter.Coordinates = nil

	if opts.MaxDistance != nil {
		filter.MaxDistanceMiles = *opts.MaxDistance
	}
	if len(opts.Dietary) > 0 {
		filter.DietaryNeeds = opts.Dietary
	}
	if opts.OpenNow != nil {
		filter.OpenNow = *opts.OpenNow
	}
	if opts.Limit != nil {
		filter.Limit = *opts.Limit
	}

	switch {
	case opts.Lat != nil && opts.Lon != nil:
		filter.Coordinates = &foodlink.Coordinates{Lat: *opts.Lat, Lon: *opts.Lon}
		filter.LocationText = ""
	case opts.Lat != nil || opts.Lon != nil:
		return filter, fmt.Errorf("--lat and --lon must be given together: %w", foodlink.ErrValidation)
	case strings.TrimSpace(opts.Location) != "":
		filter.LocationText = opts.Location
	default:
		near, err := geo.NearMe(ctx, loc, filter)
		switch {
		case err == nil:
			filter = near
			filter.LocationText = ""
		case errors.Is(err, foodlink.ErrGeolocationUnsupported) && filter.LocationText != "":
		case errors.Is(err, foodlink.ErrGeolocationUnsupported):
			return filter, fmt.Errorf("no location: pass --lat/--lon or --location, or set coordinates or location in the config: %w", err)
		default:
			return filter, err
		}
	}

	if err := filter.Validate(); err != nil {
		return filter, err
	}
	return filter, nil
}

// splitList flattens repeated and comma-separated values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func writeResourceTable(out io.Writer, resources []foodlink.Resource) {
	if len(resources) == 0 {
		_, _ = fmt.Fprintln(out, "No resources found")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tDISTANCE\tOPEN\tADDRESS")
	for _, r := range resources {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, distance(r.DistanceMiles), openStatus(r.IsOpenNow), r.Address)
	}
	_ = w.Flush()
}

func distance(d *float64) string {
	if d == nil {
		return "-"
	}
	return strconv.FormatFloat(*d, 'f', 1, 64) + " mi"
}

func openStatus(open *bool) string {
	switch {
	case open == nil:
		return "?"
	case *open:
		return "yes"
	default:
		return "no"
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type ResourceCmd struct {
	flags *Flags
	json  bool
}

// NewResourceCmd creates a new resource command
func NewResourceCmd(flags *Flags) *ResourceCmd {
	return &ResourceCmd{flags: flags}
}

// Register adds the resource command to the application
func (cmd *ResourceCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "resource",
		Usage:       "Show one food resource",
		UsageText:   "foodlink resource <id> [--json]",
		Description: "Fetches a single resource by id and prints its card.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print JSON instead of a card", Destination: &cmd.json},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ResourceCmd) run(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("resource id required\n\nUsage: foodlink resource <id>")
	}

	r, err := cmd.flags.Backend.Resource(ctx, id)
	if errors.Is(err, foodlink.ErrNotFound) {
		return fmt.Errorf("no resource with id %q", id)
	}
	if err != nil {
		return fmt.Errorf("get resource: %w", err)
	}

	out := c.Root().Writer
	if cmd.json {
		return writeJSON(out, r)
	}
	_, err = fmt.Fprintln(out, bt.ResourceCard(r, time.Now(), cardWidth, bt.NewStyles(foodlink.DefaultTheme())))
	return err
}

const cardWidth = 80
