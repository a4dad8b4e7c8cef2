package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"postcode-api/internal/geo"
	"postcode-api/internal/models"
	"postcode-api/internal/postcode"
)

// ErrNoLocation is returned by Distance and Bearing when an endpoint
// postcode cannot be resolved at any fallback resolution.
var ErrNoLocation = errors.New("no location found for postcode")

var lookupResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "postcode_lookup_resolutions_total",
	Help: "Successful coordinate lookups by the resolution of the matched key.",
}, []string{"resolution"})

// LocationProvider is the lookup backend the service reads coordinates
// from. A nil result with a nil error means the key is not mapped.
type LocationProvider interface {
	FindCoordinates(ctx context.Context, key string) (*models.Coordinates, error)
}

// LocationService resolves postcodes to coordinates and derives distances
// and bearings between them.
type LocationService struct {
	provider LocationProvider
}

// NewLocationService creates a location service backed by the given
// provider.
func NewLocationService(provider LocationProvider) *LocationService {
	return &LocationService{provider: provider}
}

// Coordinates resolves raw to a location. The lookup starts at the full
// unit key and falls back through sector, district and area, returning the
// first match; bundled datasets often resolve only to district level. A
// postcode unmapped at every resolution yields (nil, nil).
func (s *LocationService) Coordinates(ctx context.Context, raw string) (*models.Location, error) {
	p := postcode.New(raw)

	for _, k := range lookupKeys(p) {
		coords, err := s.provider.FindCoordinates(ctx, k.key)
		if err != nil {
			return nil, fmt.Errorf("service: failed to look up %q: %w", k.key, err)
		}
		if coords == nil {
			continue
		}

		lookupResolutions.WithLabelValues(k.resolution).Inc()
		return &models.Location{
			Postcode:   p.String(),
			MatchedKey: k.key,
			Resolution: k.resolution,
			Latitude:   coords.Latitude,
			Longitude:  coords.Longitude,
		}, nil
	}

	return nil, nil
}

// Distance resolves both postcodes and returns the distance between them in
// the given unit. Either endpoint failing to resolve is reported via
// ErrNoLocation.
func (s *LocationService) Distance(ctx context.Context, from, to string, unit geo.Unit) (*models.Distance, error) {
	a, b, err := s.resolvePair(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &models.Distance{
		From:     *a,
		To:       *b,
		Unit:     string(unit),
		Distance: geo.Distance(a.Coordinates(), b.Coordinates(), unit),
	}, nil
}

// Bearing resolves both postcodes and returns the initial bearing from the
// first to the second, with its compass label.
func (s *LocationService) Bearing(ctx context.Context, from, to string) (*models.Bearing, error) {
	a, b, err := s.resolvePair(ctx, from, to)
	if err != nil {
		return nil, err
	}

	degrees := geo.Bearing(a.Coordinates(), b.Coordinates())
	return &models.Bearing{
		From:    *a,
		To:      *b,
		Degrees: degrees,
		Compass: geo.CompassPoint(degrees),
	}, nil
}

func (s *LocationService) resolvePair(ctx context.Context, from, to string) (*models.Location, *models.Location, error) {
	a, err := s.Coordinates(ctx, from)
	if err != nil {
		return nil, nil, err
	}
	if a == nil {
		return nil, nil, fmt.Errorf("service: %q: %w", from, ErrNoLocation)
	}

	b, err := s.Coordinates(ctx, to)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, fmt.Errorf("service: %q: %w", to, ErrNoLocation)
	}

	return a, b, nil
}

type lookupKey struct {
	key        string
	resolution string
}

// lookupKeys lists the forms to try, most specific first, tagged with the
// resolution each one represents.
func lookupKeys(p *postcode.Postcode) []lookupKey {
	var keys []lookupKey
	if f, ok := p.Unit(); ok {
		keys = append(keys, lookupKey{f, models.ResolutionUnit})
	}
	if f, ok := p.Sector(); ok {
		keys = append(keys, lookupKey{f, models.ResolutionSector})
	}
	if f, ok := p.District(); ok {
		keys = append(keys, lookupKey{f, models.ResolutionDistrict})
	}
	if f, ok := p.Area(); ok {
		keys = append(keys, lookupKey{f, models.ResolutionArea})
	}
	return keys
}
