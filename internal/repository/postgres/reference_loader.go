package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
	"github.com/railway-assistant/internal/pkg/errors"
	"go.uber.org/zap"
)

type ScheduleRow struct {
	Departure string `db:"departure_city"`
	Arrival   string `db:"arrival_city"`
	Time      string `db:"departure_time"`
}

type RouteValueRow struct {
	Departure string `db:"departure_city"`
	Arrival   string `db:"arrival_city"`
	Value     string `db:"value"`
}

type KeyValueRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// ReferenceRows - сырые строки справочных таблиц
type ReferenceRows struct {
	Schedules     []ScheduleRow
	CityDelays    []KeyValueRow
	TrainDelays   []KeyValueRow
	TicketPrices  []RouteValueRow
	Platforms     []KeyValueRow
	TrainTypes    []RouteValueRow
	TrainServices []KeyValueRow
	CityAliases   []KeyValueRow
}

const (
	querySchedules = `
		SELECT departure_city, arrival_city, departure_time
		FROM schedules
		ORDER BY departure_city, arrival_city, position, departure_time`

	queryCityDelays    = `SELECT city AS key, status AS value FROM city_delays ORDER BY city`
	queryTrainDelays   = `SELECT train_number AS key, status AS value FROM train_delays ORDER BY train_number`
	queryPlatforms     = `SELECT train_number AS key, platform AS value FROM platforms ORDER BY train_number`
	queryCityAliases   = `SELECT alias AS key, city AS value FROM city_aliases ORDER BY alias`
	queryTrainServices = `
		SELECT train_number AS key, service AS value
		FROM train_services
		ORDER BY train_number, position, service`
	queryTicketPrices = `
		SELECT departure_city, arrival_city, price AS value
		FROM ticket_prices
		ORDER BY departure_city, arrival_city`
	queryTrainTypes = `
		SELECT departure_city, arrival_city, train_type AS value
		FROM train_types
		ORDER BY departure_city, arrival_city`
)

type referenceLoader struct {
	db *DB
}

// NewReferenceLoader создает загрузчик справочника из PostgreSQL
func NewReferenceLoader(db *DB) repository.ReferenceLoader {
	return &referenceLoader{db: db}
}

// Load читает все справочные таблицы и собирает domain.ReferenceData
func (l *referenceLoader) Load(ctx context.Context) (*domain.ReferenceData, error) {
	var rows ReferenceRows

	queries := []struct {
		name  string
		query string
		dest  interface{}
	}{
		{"schedules", querySchedules, &rows.Schedules},
		{"city_delays", queryCityDelays, &rows.CityDelays},
		{"train_delays", queryTrainDelays, &rows.TrainDelays},
		{"ticket_prices", queryTicketPrices, &rows.TicketPrices},
		{"platforms", queryPlatforms, &rows.Platforms},
		{"train_types", queryTrainTypes, &rows.TrainTypes},
		{"train_services", queryTrainServices, &rows.TrainServices},
		{"city_aliases", queryCityAliases, &rows.CityAliases},
	}

	err := l.db.Snapshot(ctx, func(tx *sqlx.Tx) error {
		for _, q := range queries {
			if err := tx.SelectContext(ctx, q.dest, q.query); err != nil {
				l.db.logger.Error("Failed to load reference table",
					zap.String("table", q.name),
					zap.Error(err))
				return fmt.Errorf("load %s: %w", q.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	data, err := AssembleReferenceData(rows)
	if err != nil {
		return nil, err
	}

	l.db.logger.Info("Reference data loaded",
		zap.String("origin", "postgres"),
		zap.Int("routes", len(data.Schedules)),
		zap.Int("cities", len(data.KnownCities())),
		zap.Int("aliases", len(data.CityAliases)))

	return data, nil
}

// AssembleReferenceData собирает справочник из строк таблиц и проверяет его
func AssembleReferenceData(rows ReferenceRows) (*domain.ReferenceData, error) {
	data := domain.NewReferenceData()

	for _, r := range rows.Schedules {
		data.AddSchedule(domain.RoutePair{Departure: r.Departure, Arrival: r.Arrival}, r.Time)
	}
	for _, r := range rows.TicketPrices {
		data.TicketPrices[domain.RoutePair{Departure: r.Departure, Arrival: r.Arrival}] = r.Value
	}
	for _, r := range rows.TrainTypes {
		data.TrainTypes[domain.RoutePair{Departure: r.Departure, Arrival: r.Arrival}] = r.Value
	}
	for _, r := range rows.TrainServices {
		data.TrainServices[r.Key] = append(data.TrainServices[r.Key], r.Value)
	}
	fill(data.CityDelays, rows.CityDelays)
	fill(data.TrainDelays, rows.TrainDelays)
	fill(data.Platforms, rows.Platforms)
	fill(data.CityAliases, rows.CityAliases)

	if len(data.Schedules) == 0 {
		return nil, errors.ErrInvalidReferenceData.WithDetails(map[string]interface{}{
			"reason": "schedules table is empty",
		})
	}
	if err := data.Validate(); err != nil {
		return nil, errors.ErrInvalidReferenceData.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	return data, nil
}

func fill(dst map[string]string, rows []KeyValueRow) {
	for _, r := range rows {
		dst[r.Key] = r.Value
	}
}
