package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"postcode-api/internal/models"
)

var (
	london    = models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	edinburgh = models.Coordinates{Latitude: 55.9533, Longitude: -3.1883}
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Unit
		wantErr bool
	}{
		{name: "empty defaults to kilometers", input: "", want: Kilometers},
		{name: "km", input: "km", want: Kilometers},
		{name: "uppercase", input: "KM", want: Kilometers},
		{name: "meters short", input: "m", want: Meters},
		{name: "meters long", input: "meters", want: Meters},
		{name: "miles", input: "miles", want: Miles},
		{name: "unknown", input: "furlongs", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistance(t *testing.T) {
	origin := models.Coordinates{}
	oneDegreeEast := models.Coordinates{Longitude: 1}

	// One degree of longitude on the equator is about 111.195 km.
	assert.InDelta(t, 111.195, Distance(origin, oneDegreeEast, Kilometers), 0.01)
	assert.InDelta(t, 111194.9, Distance(origin, oneDegreeEast, Meters), 10)
	assert.InDelta(t, 69.093, Distance(origin, oneDegreeEast, Miles), 0.01)
}

func TestDistance_LondonToEdinburgh(t *testing.T) {
	d := Distance(london, edinburgh, Kilometers)

	assert.InDelta(t, 533.7, d, 1)
	assert.InDelta(t, d, Distance(edinburgh, london, Kilometers), 1e-9)
}

func TestDistance_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(london, london, Kilometers))
}

func TestBearing(t *testing.T) {
	origin := models.Coordinates{}

	tests := []struct {
		name string
		to   models.Coordinates
		want float64
	}{
		{name: "due north", to: models.Coordinates{Latitude: 1}, want: 0},
		{name: "due east", to: models.Coordinates{Longitude: 1}, want: 90},
		{name: "due south", to: models.Coordinates{Latitude: -1}, want: 180},
		{name: "due west", to: models.Coordinates{Longitude: -1}, want: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Bearing(origin, tt.to), 1e-6)
		})
	}
}

func TestBearing_LondonToEdinburgh(t *testing.T) {
	b := Bearing(london, edinburgh)

	assert.InDelta(t, 339, b, 1)
	assert.Equal(t, "NNW", CompassPoint(b))
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		name    string
		bearing float64
		want    string
	}{
		{name: "zero", bearing: 0, want: "N"},
		{name: "just inside north from below", bearing: 358, want: "N"},
		{name: "just inside north from above", bearing: 2, want: "N"},
		{name: "north sector lower edge", bearing: 348.75, want: "N"},
		{name: "north sector upper edge excluded", bearing: 11.25, want: "NNE"},
		{name: "east", bearing: 90, want: "E"},
		{name: "south west", bearing: 225, want: "SW"},
		{name: "west north west", bearing: 292.5, want: "WNW"},
		{name: "wraps past a full turn", bearing: 361, want: "N"},
		{name: "negative wraps backwards", bearing: -11, want: "N"},
		{name: "negative quarter turn", bearing: -90, want: "W"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompassPoint(tt.bearing))
		})
	}
}
