package models

// Coordinates is a geographic centroid in WGS 84 decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolution labels for the lookup fallback cascade, most to least specific.
const (
	ResolutionUnit     = "unit"
	ResolutionSector   = "sector"
	ResolutionDistrict = "district"
	ResolutionArea     = "area"
)

// Location represents a resolved postcode: the canonical form that was queried,
// the lookup key that answered it, the resolution that key corresponds to, and
// the coordinates stored for it.
type Location struct {
	Postcode   string  `json:"postcode"`
	MatchedKey string  `json:"matched_key"`
	Resolution string  `json:"resolution"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// Coordinates returns the location's coordinate pair.
func (l *Location) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}
