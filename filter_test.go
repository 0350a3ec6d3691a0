package foodlink_test

import (
	"testing"

	"github.com/foodlink-la/foodlink"
	"github.com/stretchr/testify/assert"
)

func TestResourceFilter_WithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills zero values", func(t *testing.T) {
		t.Parallel()
		f := foodlink.ResourceFilter{}.WithDefaults()
		assert.Equal(t, 5.0, f.MaxDistanceMiles)
		assert.Equal(t, 10, f.Limit)
		assert.False(t, f.OpenNow)
		assert.Nil(t, f.Coordinates)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()
		f := foodlink.ResourceFilter{MaxDistanceMiles: 2.5, Limit: 3, OpenNow: true}.WithDefaults()
		assert.Equal(t, 2.5, f.MaxDistanceMiles)
		assert.Equal(t, 3, f.Limit)
		assert.True(t, f.OpenNow)
	})

	t.Run("drops blank dietary tags and trims location", func(t *testing.T) {
		t.Parallel()
		f := foodlink.ResourceFilter{
			LocationText: "  Venice ",
			DietaryNeeds: []string{"vegan", " ", "halal "},
		}.WithDefaults()
		assert.Equal(t, "Venice", f.LocationText)
		assert.Equal(t, []string{"vegan", "halal"}, f.DietaryNeeds)
	})
}

func TestResourceFilter_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filter  foodlink.ResourceFilter
		wantErr bool
	}{
		{name: "zero value", filter: foodlink.ResourceFilter{}},
		{name: "coordinates", filter: foodlink.ResourceFilter{Coordinates: &foodlink.Coordinates{Lat: 34.0, Lon: -118.4}}},
		{name: "negative distance", filter: foodlink.ResourceFilter{MaxDistanceMiles: -1}, wantErr: true},
		{name: "negative limit", filter: foodlink.ResourceFilter{Limit: -5}, wantErr: true},
		{name: "latitude out of range", filter: foodlink.ResourceFilter{Coordinates: &foodlink.Coordinates{Lat: 91}}, wantErr: true},
		{name: "longitude out of range", filter: foodlink.ResourceFilter{Coordinates: &foodlink.Coordinates{Lon: -181}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, foodlink.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
