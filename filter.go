package foodlink

import (
	"fmt"
	"strings"
)

// Defaults applied by the backend contract when a filter field is zero.
const (
	DefaultMaxDistanceMiles = 5.0
	DefaultResourceLimit    = 10
)

// ResourceFilter narrows a resource listing. Coordinates take precedence over
// LocationText when both are set.
type ResourceFilter struct {
	Coordinates      *Coordinates
	LocationText     string
	MaxDistanceMiles float64 // 0 = DefaultMaxDistanceMiles
	DietaryNeeds     []string
	OpenNow          bool
	Limit            int // 0 = DefaultResourceLimit
}

// WithDefaults returns a copy of f with zero-valued fields replaced by the
// contract defaults and blank dietary tags dropped.
func (f ResourceFilter) WithDefaults() ResourceFilter {
	if f.MaxDistanceMiles == 0 {
		f.MaxDistanceMiles = DefaultMaxDistanceMiles
	}
	if f.Limit == 0 {
		f.Limit = DefaultResourceLimit
	}
	var needs []string
	for _, n := range f.DietaryNeeds {
		if n = strings.TrimSpace(n); n != "" {
			needs = append(needs, n)
		}
	}
	f.DietaryNeeds = needs
	f.LocationText = strings.TrimSpace(f.LocationText)
	return f
}

// Validate checks the filter's numeric constraints.
func (f ResourceFilter) Validate() error {
	if f.MaxDistanceMiles < 0 {
		return fmt.Errorf("max distance must be non-negative, got %g: %w", f.MaxDistanceMiles, ErrValidation)
	}
	if f.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d: %w", f.Limit, ErrValidation)
	}
	if c := f.Coordinates; c != nil {
		if c.Lat < -90 || c.Lat > 90 {
			return fmt.Errorf("latitude must be in [-90, 90], got %g: %w", c.Lat, ErrValidation)
		}
		if c.Lon < -180 || c.Lon > 180 {
			return fmt.Errorf("longitude must be in [-180, 180], got %g: %w", c.Lon, ErrValidation)
		}
	}
	return nil
}
