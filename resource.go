package foodlink

import (
	"net/url"
	"strings"
	"time"
)

const mapsDirectionsURL = "https://www.google.com/maps/dir/?api=1&destination="

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DayHours describes opening hours for one weekday.
type DayHours struct {
	Status string `json:"status"` // "open" or "closed"
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// Resource is a place where food can be obtained. The backend owns the
// schema; fields not listed here are ignored.
type Resource struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Address        string              `json:"address"`
	Phone          string              `json:"phone,omitempty"`
	DistanceMiles  *float64            `json:"distance_miles,omitempty"`
	IsOpenNow      *bool               `json:"is_open_now,omitempty"`
	Hours          map[string]DayHours `json:"hours,omitempty"`
	Offerings      []string            `json:"offerings,omitempty"`
	DietaryOptions []string            `json:"dietary_options,omitempty"`
	Requirements   string              `json:"requirements,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	Latitude       *float64            `json:"latitude,omitempty"`
	Longitude      *float64            `json:"longitude,omitempty"`
}

// HoursOn returns the hours for the weekday of t, if the resource lists any.
func (r Resource) HoursOn(t time.Time) (DayHours, bool) {
	h, ok := r.Hours[strings.ToLower(t.Weekday().String())]
	return h, ok
}

// DirectionsURL returns a Google Maps directions link to the resource.
func (r Resource) DirectionsURL() string {
	return mapsDirectionsURL + url.QueryEscape(r.Address)
}

// PhoneDigits returns the phone number with everything but digits removed,
// suitable for a tel: link.
func (r Resource) PhoneDigits() string {
	return digitsOnly(r.Phone)
}

// Organization is a partner that accepts donations.
type Organization struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Address             string   `json:"address,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	Email               string   `json:"email,omitempty"`
	Website             string   `json:"website,omitempty"`
	CommonDistributions []string `json:"commonDistributions,omitempty"`
	PickupAvailable     bool     `json:"pickupAvailable,omitempty"`
	Notes               string   `json:"notes,omitempty"`
	Contact             string   `json:"contact,omitempty"`
	Area                string   `json:"area,omitempty"`
}

// PhoneDigits returns the phone number with everything but digits removed.
func (o Organization) PhoneDigits() string {
	return digitsOnly(o.Phone)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
