package foodlink_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/foodlink-la/foodlink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_JSON(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"id": "wsfb-001",
		"name": "Westside Food Bank",
		"address": "1710 22nd St, Santa Monica, CA 90404",
		"phone": "(310) 828-6016",
		"distance_miles": 0.8,
		"is_open_now": true,
		"hours": {"monday": {"status": "open", "open": "9:00 AM", "close": "5:00 PM"}},
		"offerings": ["canned-goods", "fresh-produce"],
		"dietary_options": ["vegetarian"],
		"requirements": "No restrictions",
		"notes": "Bring a bag.",
		"rating": 4.8
	}`)

	var r foodlink.Resource
	require.NoError(t, json.Unmarshal(data, &r))

	assert.Equal(t, "wsfb-001", r.ID)
	require.NotNil(t, r.DistanceMiles)
	assert.Equal(t, 0.8, *r.DistanceMiles)
	require.NotNil(t, r.IsOpenNow)
	assert.True(t, *r.IsOpenNow)
	assert.Equal(t, []string{"canned-goods", "fresh-produce"}, r.Offerings)
	assert.Equal(t, "9:00 AM", r.Hours["monday"].Open)
}

func TestResource_NullOpenSignal(t *testing.T) {
	t.Parallel()
	var r foodlink.Resource
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","is_open_now":null,"distance_miles":null}`), &r))
	assert.Nil(t, r.IsOpenNow)
	assert.Nil(t, r.DistanceMiles)
}

func TestResource_HoursOn(t *testing.T) {
	t.Parallel()
	r := foodlink.Resource{Hours: map[string]foodlink.DayHours{
		"tuesday": {Status: "open", Open: "10:00", Close: "14:00"},
	}}
	tuesday := time.Date(2026, time.October, 13, 12, 0, 0, 0, time.UTC)
	wednesday := tuesday.AddDate(0, 0, 1)

	h, ok := r.HoursOn(tuesday)
	assert.True(t, ok)
	assert.Equal(t, "10:00", h.Open)

	_, ok = r.HoursOn(wednesday)
	assert.False(t, ok)
}

func TestResource_Links(t *testing.T) {
	t.Parallel()
	r := foodlink.Resource{Address: "204 Hampton Drive, Venice, CA 90291", Phone: "(310) 396-6468"}
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=204+Hampton+Drive%2C+Venice%2C+CA+90291", r.DirectionsURL())
	assert.Equal(t, "3103966468", r.PhoneDigits())
}

func TestOrganization_JSON(t *testing.T) {
	t.Parallel()
	data := []byte(`{"id":"o1","name":"St. Joseph Center","commonDistributions":["canned goods"],"pickupAvailable":true,"area":"Venice","phone":"310-396-6468"}`)

	var o foodlink.Organization
	require.NoError(t, json.Unmarshal(data, &o))

	assert.Equal(t, []string{"canned goods"}, o.CommonDistributions)
	assert.True(t, o.PickupAvailable)
	assert.Equal(t, "Venice", o.Area)
	assert.Equal(t, "3103966468", o.PhoneDigits())
}
