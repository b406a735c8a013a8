// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// WeatherObservation represents a single persisted weather observation.
// Rows are addressed externally by the surrogate ID; CollectionTime is the
// declared domain key and is unique per row. Nullable columns are pointers
// so an unset value serializes as JSON null.
type WeatherObservation struct {
	ID             int64     `json:"id"`
	CollectionTime time.Time `json:"collection_time"`
	Temperature    *int      `json:"temperature"`
	TemperatureMin *int      `json:"temperature_min"`
	TemperatureMax *int      `json:"temperature_max"`
	Humidity       *int      `json:"humidity"`
	Description    *string   `json:"description"`
	FeelsLike      *int      `json:"feels_like"`
	WindSpeed      *float64  `json:"wind_speed"`
	WindDirection  *int      `json:"wind_direction"`
	CreateDate     time.Time `json:"create_date"`
	UpdateDate     time.Time `json:"update_date"`
}

// ObservationInput is the request body schema shared by create and both
// update operations. Every field is a pointer so a merge update can tell an
// absent field from an explicitly supplied one.
type ObservationInput struct {
	CollectionTime *time.Time `json:"collection_time" validate:"required"`
	Temperature    *int       `json:"temperature"`
	TemperatureMin *int       `json:"temperature_min"`
	TemperatureMax *int       `json:"temperature_max"`
	Humidity       *int       `json:"humidity"`
	Description    *string    `json:"description" validate:"omitempty,max=200"`
	FeelsLike      *int       `json:"feels_like"`
	WindSpeed      *float64   `json:"wind_speed"`
	WindDirection  *int       `json:"wind_direction"`
}

// ObservationRepository is the port for observation persistence. Rows
// returned are snapshots; mutating them does not touch the store.
type ObservationRepository interface {
	// Insert stores a new observation and returns it with the generated ID.
	Insert(ctx context.Context, obs WeatherObservation) (WeatherObservation, error)
	// FindByID returns the observation with the given ID, or nil if absent.
	FindByID(ctx context.Context, id int64) (*WeatherObservation, error)
	// FindPage returns observations ordered by collection time descending,
	// sliced to [offset, offset+limit).
	FindPage(ctx context.Context, offset, limit int) ([]WeatherObservation, error)
	// Replace overwrites every column of the row except id and create_date
	// with the values from obs. Returns the stored row, or nil if absent.
	Replace(ctx context.Context, id int64, obs WeatherObservation) (*WeatherObservation, error)
	// Delete removes the row. Returns false if no row had the given ID.
	Delete(ctx context.Context, id int64) (bool, error)
}
