package usecase

import (
	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
	"github.com/railway-assistant/internal/pkg/normalize"
)

// Resolver приводит сырые значения из трекера к ключам справочника
type Resolver struct {
	cities *normalize.CityNormalizer
}

// NewResolver - создание резолвера по алиасам и известным городам справочника
func NewResolver(refs repository.ReferenceRepository) *Resolver {
	return &Resolver{
		cities: normalize.NewCityNormalizer(refs.CityAliases(), refs.KnownCities()),
	}
}

// City нормализует название города; пустая строка - значение отсутствует
func (r *Resolver) City(raw string) string {
	text := normalize.Text(raw)
	if text == "" {
		return ""
	}
	return r.cities.Normalize(text)
}

// TrainNumber нормализует номер поезда
func (r *Resolver) TrainNumber(raw string) string {
	return normalize.TrainNumber(raw)
}

// Route разрешает пару городов маршрута; ok=false если чего-то не хватает
func (r *Resolver) Route(tracker domain.Tracker) (domain.RoutePair, bool) {
	pair := domain.RoutePair{
		Departure: r.City(resolveField(tracker, fieldDeparture)),
		Arrival:   r.City(resolveField(tracker, fieldArrival)),
	}
	return pair, pair.Departure != "" && pair.Arrival != ""
}
