// Package geo computes great-circle distances and bearings between
// coordinate pairs.
package geo

import (
	"fmt"
	"math"
	"strings"

	"postcode-api/internal/models"
)

// Unit is a distance unit.
type Unit string

const (
	Kilometers Unit = "km"
	Meters     Unit = "m"
	Miles      Unit = "miles"
)

const (
	earthRadiusKm = 6371.0
	kmPerMile     = 1.609344
)

// ParseUnit maps a query-string unit to a Unit. The empty string selects
// kilometers.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "km", "kilometers":
		return Kilometers, nil
	case "m", "meters":
		return Meters, nil
	case "miles":
		return Miles, nil
	default:
		return "", fmt.Errorf("geo: unknown unit %q", s)
	}
}

// Distance returns the haversine distance between two points in the given
// unit.
func Distance(from, to models.Coordinates, unit Unit) float64 {
	lat1 := radians(from.Latitude)
	lat2 := radians(to.Latitude)
	dLat := radians(to.Latitude - from.Latitude)
	dLon := radians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	km := earthRadiusKm * c

	switch unit {
	case Meters:
		return km * 1000
	case Miles:
		return km / kmPerMile
	default:
		return km
	}
}

// Bearing returns the initial great-circle bearing from one point to the
// other, in degrees clockwise from north, in [0, 360).
func Bearing(from, to models.Coordinates) float64 {
	lat1 := radians(from.Latitude)
	lat2 := radians(to.Latitude)
	dLon := radians(to.Longitude - from.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(degrees(math.Atan2(y, x))+360, 360)
}

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassPoint buckets a bearing into one of the sixteen compass points.
// Sectors are 22.5 degrees wide and centered on each point, so N covers
// [348.75, 11.25). Out-of-range input is wrapped first.
func CompassPoint(bearing float64) string {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	return compassPoints[int(math.Floor(b/22.5+0.5))%16]
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
