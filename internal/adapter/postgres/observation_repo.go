package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weathervane/internal/domain"
)

const observationColumns = `id, collection_time, temperature, temperature_min, temperature_max,
	humidity, description, feels_like, wind_speed, wind_direction, create_date, update_date`

// Insert stores a new observation and returns the row with its generated ID.
func (d *DB) Insert(ctx context.Context, obs domain.WeatherObservation) (domain.WeatherObservation, error) {
	row := d.sql.QueryRowContext(ctx,
		`INSERT INTO weather_observations(collection_time, temperature, temperature_min, temperature_max,
			humidity, description, feels_like, wind_speed, wind_direction, create_date, update_date)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+observationColumns+`;`,
		obs.CollectionTime.UTC(), obs.Temperature, obs.TemperatureMin, obs.TemperatureMax,
		obs.Humidity, obs.Description, obs.FeelsLike, obs.WindSpeed, obs.WindDirection,
		obs.CreateDate.UTC(), obs.UpdateDate.UTC(),
	)
	return scanObservation(row)
}

// FindByID returns the observation with the given ID, or nil if absent.
func (d *DB) FindByID(ctx context.Context, id int64) (*domain.WeatherObservation, error) {
	row := d.sql.QueryRowContext(ctx,
		`SELECT `+observationColumns+` FROM weather_observations WHERE id=$1;`, id)

	obs, err := scanObservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &obs, nil
}

// FindPage returns observations ordered by collection time descending,
// sliced to [offset, offset+limit).
func (d *DB) FindPage(ctx context.Context, offset, limit int) ([]domain.WeatherObservation, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT `+observationColumns+` FROM weather_observations
		ORDER BY collection_time DESC OFFSET $1 LIMIT $2;`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WeatherObservation, 0, limit)
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, obs)
	}
	return out, rows.Err()
}

// Replace overwrites every column of the row except id and create_date.
// Returns the stored row, or nil if no row had the given ID.
func (d *DB) Replace(ctx context.Context, id int64, obs domain.WeatherObservation) (*domain.WeatherObservation, error) {
	row := d.sql.QueryRowContext(ctx,
		`UPDATE weather_observations SET collection_time=$1, temperature=$2, temperature_min=$3,
			temperature_max=$4, humidity=$5, description=$6, feels_like=$7, wind_speed=$8,
			wind_direction=$9, update_date=$10
		WHERE id=$11
		RETURNING `+observationColumns+`;`,
		obs.CollectionTime.UTC(), obs.Temperature, obs.TemperatureMin, obs.TemperatureMax,
		obs.Humidity, obs.Description, obs.FeelsLike, obs.WindSpeed, obs.WindDirection,
		obs.UpdateDate.UTC(), id,
	)

	updated, err := scanObservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the row. Returns false if no row had the given ID.
func (d *DB) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, `DELETE FROM weather_observations WHERE id=$1;`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanObservation(s interface{ Scan(dest ...any) error }) (domain.WeatherObservation, error) {
	var o domain.WeatherObservation
	err := s.Scan(&o.ID, &o.CollectionTime, &o.Temperature, &o.TemperatureMin, &o.TemperatureMax,
		&o.Humidity, &o.Description, &o.FeelsLike, &o.WindSpeed, &o.WindDirection,
		&o.CreateDate, &o.UpdateDate)
	return o, err
}
