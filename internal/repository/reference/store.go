// Package reference хранит справочник сети в памяти и загружает его из YAML.
package reference

import (
	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
)

// Store - неизменяемое хранилище справочника. Создается один раз при
// старте; все методы безопасны для конкурентного чтения.
type Store struct {
	data   *domain.ReferenceData
	cities []string
}

var _ repository.ReferenceRepository = (*Store)(nil)

// NewStore оборачивает загруженный справочник. Вызывающий не должен
// изменять data после передачи.
func NewStore(data *domain.ReferenceData) *Store {
	return &Store{
		data:   data,
		cities: data.KnownCities(),
	}
}

func (s *Store) Schedule(pair domain.RoutePair) ([]string, bool) {
	times, ok := s.data.Schedules[pair]
	if !ok {
		return nil, false
	}
	return append([]string(nil), times...), true
}

func (s *Store) Routes() []domain.RoutePair {
	return append([]domain.RoutePair(nil), s.data.RouteOrder...)
}

func (s *Store) CityDelay(city string) (string, bool) {
	v, ok := s.data.CityDelays[city]
	return v, ok && v != ""
}

func (s *Store) TrainDelay(trainNumber string) (string, bool) {
	v, ok := s.data.TrainDelays[trainNumber]
	return v, ok && v != ""
}

func (s *Store) TicketPrice(pair domain.RoutePair) (string, bool) {
	v, ok := s.data.TicketPrices[pair]
	return v, ok && v != ""
}

func (s *Store) Platform(trainNumber string) (string, bool) {
	v, ok := s.data.Platforms[trainNumber]
	return v, ok && v != ""
}

func (s *Store) TrainType(pair domain.RoutePair) (string, bool) {
	v, ok := s.data.TrainTypes[pair]
	return v, ok && v != ""
}

func (s *Store) TrainServices(trainNumber string) ([]string, bool) {
	services := s.data.TrainServices[trainNumber]
	if len(services) == 0 {
		return nil, false
	}
	return append([]string(nil), services...), true
}

func (s *Store) KnownCities() []string {
	return append([]string(nil), s.cities...)
}

func (s *Store) CityAliases() map[string]string {
	aliases := make(map[string]string, len(s.data.CityAliases))
	for k, v := range s.data.CityAliases {
		aliases[k] = v
	}
	return aliases
}
