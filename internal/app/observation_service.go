// Package app contains the application services implementing the use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weathervane/internal/domain"
)

// Pagination bounds for the list operation.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// NotFoundError reports that no observation exists for the requested ID.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("weather observation with id %d not found", e.ID)
}

// ObservationService encapsulates the weather observation use cases.
type ObservationService struct {
	repo domain.ObservationRepository
}

// NewObservationService creates an ObservationService backed by the given
// repository.
func NewObservationService(repo domain.ObservationRepository) *ObservationService {
	return &ObservationService{repo: repo}
}

// List returns one page of observations ordered by collection time
// descending. Pages past the end of the data yield an empty slice, never an
// error.
func (s *ObservationService) List(ctx context.Context, page, limit int) ([]domain.WeatherObservation, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	items, err := s.repo.FindPage(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.WeatherObservation{}
	}
	return items, nil
}

// Create stores a new observation. Only collection_time is mandatory; absent
// optional fields stay unset. Both audit timestamps are stamped to the
// current UTC instant.
func (s *ObservationService) Create(ctx context.Context, in domain.ObservationInput) (domain.WeatherObservation, error) {
	if in.CollectionTime == nil {
		return domain.WeatherObservation{}, errors.New("collection_time is required")
	}
	now := time.Now().UTC()
	obs := domain.WeatherObservation{
		CollectionTime: in.CollectionTime.UTC(),
		Temperature:    in.Temperature,
		TemperatureMin: in.TemperatureMin,
		TemperatureMax: in.TemperatureMax,
		Humidity:       in.Humidity,
		Description:    in.Description,
		FeelsLike:      in.FeelsLike,
		WindSpeed:      in.WindSpeed,
		WindDirection:  in.WindDirection,
		CreateDate:     now,
		UpdateDate:     now,
	}
	return s.repo.Insert(ctx, obs)
}

// Get returns the observation with the given ID.
func (s *ObservationService) Get(ctx context.Context, id int64) (domain.WeatherObservation, error) {
	obs, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.WeatherObservation{}, err
	}
	if obs == nil {
		return domain.WeatherObservation{}, &NotFoundError{ID: id}
	}
	return *obs, nil
}

// Replace applies full-update semantics: every schema field is written from
// the input, so fields the caller omitted are reset to null. collection_time
// is always written, which can repoint the domain key of the row addressed
// by id; the historical behavior is kept deliberately.
func (s *ObservationService) Replace(ctx context.Context, id int64, in domain.ObservationInput) (domain.WeatherObservation, error) {
	if in.CollectionTime == nil {
		return domain.WeatherObservation{}, errors.New("collection_time is required")
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.WeatherObservation{}, err
	}
	if existing == nil {
		return domain.WeatherObservation{}, &NotFoundError{ID: id}
	}

	obs := domain.WeatherObservation{
		ID:             id,
		CollectionTime: in.CollectionTime.UTC(),
		Temperature:    in.Temperature,
		TemperatureMin: in.TemperatureMin,
		TemperatureMax: in.TemperatureMax,
		Humidity:       in.Humidity,
		Description:    in.Description,
		FeelsLike:      in.FeelsLike,
		WindSpeed:      in.WindSpeed,
		WindDirection:  in.WindDirection,
		CreateDate:     existing.CreateDate,
		UpdateDate:     time.Now().UTC(),
	}
	return s.replace(ctx, id, obs)
}

// Merge applies partial-update semantics: only fields present in the input
// are written, everything else keeps its stored value. A supplied
// collection_time still overwrites the domain key, same as Replace.
func (s *ObservationService) Merge(ctx context.Context, id int64, in domain.ObservationInput) (domain.WeatherObservation, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.WeatherObservation{}, err
	}
	if existing == nil {
		return domain.WeatherObservation{}, &NotFoundError{ID: id}
	}

	obs := *existing
	if in.CollectionTime != nil {
		obs.CollectionTime = in.CollectionTime.UTC()
	}
	if in.Temperature != nil {
		obs.Temperature = in.Temperature
	}
	if in.TemperatureMin != nil {
		obs.TemperatureMin = in.TemperatureMin
	}
	if in.TemperatureMax != nil {
		obs.TemperatureMax = in.TemperatureMax
	}
	if in.Humidity != nil {
		obs.Humidity = in.Humidity
	}
	if in.Description != nil {
		obs.Description = in.Description
	}
	if in.FeelsLike != nil {
		obs.FeelsLike = in.FeelsLike
	}
	if in.WindSpeed != nil {
		obs.WindSpeed = in.WindSpeed
	}
	if in.WindDirection != nil {
		obs.WindDirection = in.WindDirection
	}
	obs.UpdateDate = time.Now().UTC()
	return s.replace(ctx, id, obs)
}

// Delete removes the observation with the given ID.
func (s *ObservationService) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{ID: id}
	}
	return nil
}

func (s *ObservationService) replace(ctx context.Context, id int64, obs domain.WeatherObservation) (domain.WeatherObservation, error) {
	updated, err := s.repo.Replace(ctx, id, obs)
	if err != nil {
		return domain.WeatherObservation{}, err
	}
	if updated == nil {
		// Row vanished between the fetch and the write.
		return domain.WeatherObservation{}, &NotFoundError{ID: id}
	}
	return *updated, nil
}
