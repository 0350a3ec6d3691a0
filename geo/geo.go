// Package geo provides [foodlink.Locator] implementations for finding
// resources near the user.
package geo

import (
	"context"
	"fmt"

	"github.com/foodlink-la/foodlink"
)

// Interface compliance checks.
var (
	_ foodlink.Locator = Static{}
	_ foodlink.Locator = Unsupported{}
)

// Static reports a fixed position, typically configured by the user.
type Static struct {
	Coordinates foodlink.Coordinates
}

// Locate returns the configured coordinates.
func (s Static) Locate(ctx context.Context) (foodlink.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return foodlink.Coordinates{}, err
	}
	return s.Coordinates, nil
}

// Unsupported is the locator used when no position source exists.
type Unsupported struct{}

// Locate always fails with [foodlink.ErrGeolocationUnsupported].
func (Unsupported) Locate(context.Context) (foodlink.Coordinates, error) {
	return foodlink.Coordinates{}, foodlink.ErrGeolocationUnsupported
}

// New returns a Static locator when coords is set and Unsupported otherwise.
func New(coords *foodlink.Coordinates) foodlink.Locator {
	if coords == nil {
		return Unsupported{}
	}
	return Static{Coordinates: *coords}
}

// NearMe fills filter's coordinates from loc.
func NearMe(ctx context.Context, loc foodlink.Locator, filter foodlink.ResourceFilter) (foodlink.ResourceFilter, error) {
	coords, err := loc.Locate(ctx)
	if err != nil {
		return filter, fmt.Errorf("locate: %w", err)
	}
	filter.Coordinates = &coords
	return filter, nil
}
