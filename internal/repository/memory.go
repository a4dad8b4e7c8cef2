package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"postcode-api/internal/models"
)

// Memory holds the lookup table in a plain map. The map is populated once at
// construction and never written again, so reads need no locking and the
// provider is safe for concurrent use.
type Memory struct {
	coords map[string]models.Coordinates
}

// NewMemory builds an in-memory provider from the given entries. Keys are
// normalized, so callers may pass them in any case.
func NewMemory(entries map[string]models.Coordinates) *Memory {
	coords := make(map[string]models.Coordinates, len(entries))
	for key, c := range entries {
		coords[normalizeKey(key)] = c
	}
	return &Memory{coords: coords}
}

// NewMemoryFromCSV builds an in-memory provider from CSV data. The first
// record is a header and must name postcode, latitude and longitude columns;
// extra columns are ignored. A malformed row aborts the load.
func NewMemoryFromCSV(r io.Reader) (*Memory, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read CSV header: %w", err)
	}

	postcodeCol, err := columnIndex(header, "postcode")
	if err != nil {
		return nil, err
	}
	latCol, err := columnIndex(header, "latitude")
	if err != nil {
		return nil, err
	}
	lonCol, err := columnIndex(header, "longitude")
	if err != nil {
		return nil, err
	}

	coords := make(map[string]models.Coordinates)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("repository: failed to read CSV record: %w", err)
		}

		lat, err := strconv.ParseFloat(record[latCol], 64)
		if err != nil {
			return nil, fmt.Errorf("repository: bad latitude for %q: %w", record[postcodeCol], err)
		}
		lon, err := strconv.ParseFloat(record[lonCol], 64)
		if err != nil {
			return nil, fmt.Errorf("repository: bad longitude for %q: %w", record[postcodeCol], err)
		}

		coords[normalizeKey(record[postcodeCol])] = models.Coordinates{
			Latitude:  lat,
			Longitude: lon,
		}
	}

	return &Memory{coords: coords}, nil
}

// columnIndex finds a header column by case-insensitive name.
func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if normalizeKey(col) == normalizeKey(name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("repository: CSV header has no %q column", name)
}

// FindCoordinates returns the coordinates stored under key, or (nil, nil)
// when the key is not present. It never fails.
func (m *Memory) FindCoordinates(_ context.Context, key string) (*models.Coordinates, error) {
	coords, ok := m.coords[normalizeKey(key)]
	if !ok {
		return nil, nil
	}
	return &coords, nil
}

// Len reports how many keys are loaded.
func (m *Memory) Len() int {
	return len(m.coords)
}
