// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"weathervane/internal/domain"
)

// DB implements an in-memory observation store.
type DB struct {
	mu           sync.Mutex
	observations []domain.WeatherObservation

	idCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.ObservationRepository = (*DB)(nil)

// Insert stores a new observation and returns it with the generated ID.
func (db *DB) Insert(ctx context.Context, obs domain.WeatherObservation) (domain.WeatherObservation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.idCounter++
	obs.ID = db.idCounter
	obs.CollectionTime = obs.CollectionTime.UTC()
	db.observations = append(db.observations, obs)
	return obs, nil
}

// FindByID returns the observation with the given ID, or nil if absent.
func (db *DB) FindByID(ctx context.Context, id int64) (*domain.WeatherObservation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.observations {
		if db.observations[i].ID == id {
			// return a copy so callers can't mutate the stored row
			obs := db.observations[i]
			return &obs, nil
		}
	}
	return nil, nil
}

// FindPage returns observations ordered by collection time descending,
// sliced to [offset, offset+limit).
func (db *DB) FindPage(ctx context.Context, offset, limit int) ([]domain.WeatherObservation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeatherObservation, len(db.observations))
	copy(result, db.observations)

	sort.Slice(result, func(i, j int) bool {
		return result[i].CollectionTime.After(result[j].CollectionTime)
	})

	if offset >= len(result) {
		return []domain.WeatherObservation{}, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Replace overwrites every column of the row except id and create_date.
// Returns the stored row, or nil if no row had the given ID.
func (db *DB) Replace(ctx context.Context, id int64, obs domain.WeatherObservation) (*domain.WeatherObservation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.observations {
		if db.observations[i].ID == id {
			obs.ID = id
			obs.CollectionTime = obs.CollectionTime.UTC()
			obs.CreateDate = db.observations[i].CreateDate
			db.observations[i] = obs
			updated := obs
			return &updated, nil
		}
	}
	return nil, nil
}

// Delete removes the row. Returns false if no row had the given ID.
func (db *DB) Delete(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.observations {
		if db.observations[i].ID == id {
			db.observations = append(db.observations[:i], db.observations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
