package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"postcode-api/internal/models"
)

// GeoSetKey is the sorted set the importer writes postcode positions into.
const GeoSetKey = "postcodes:geo"

// Redis looks coordinates up in a Redis geo set via GEOPOS.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed provider.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// FindCoordinates returns the position stored under key, or (nil, nil) when
// the key is not a member of the geo set.
func (r *Redis) FindCoordinates(ctx context.Context, key string) (*models.Coordinates, error) {
	positions, err := r.client.GeoPos(ctx, GeoSetKey, normalizeKey(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query geo position: %w", err)
	}
	if len(positions) == 0 || positions[0] == nil {
		return nil, nil
	}

	return &models.Coordinates{
		Latitude:  positions[0].Latitude,
		Longitude: positions[0].Longitude,
	}, nil
}
