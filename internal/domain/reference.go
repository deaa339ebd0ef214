package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// RoutePair - направленный ключ маршрута (откуда → куда)
type RoutePair struct {
	Departure string `json:"departure" yaml:"departure" db:"departure_city"`
	Arrival   string `json:"arrival" yaml:"arrival" db:"arrival_city"`
}

// Reverse возвращает пару в обратном направлении
func (p RoutePair) Reverse() RoutePair {
	return RoutePair{Departure: p.Arrival, Arrival: p.Departure}
}

func (p RoutePair) String() string {
	return p.Departure + " → " + p.Arrival
}

// ReferenceData - полный справочник сети. Заполняется один раз при старте
// и дальше только читается.
type ReferenceData struct {
	Schedules     map[RoutePair][]string
	CityDelays    map[string]string
	TrainDelays   map[string]string
	TicketPrices  map[RoutePair]string
	Platforms     map[string]string
	TrainTypes    map[RoutePair]string
	TrainServices map[string][]string
	CityAliases   map[string]string

	// RouteOrder - порядок маршрутов расписания в источнике
	RouteOrder []RoutePair
}

// NewReferenceData создает пустой справочник с инициализированными map
func NewReferenceData() *ReferenceData {
	return &ReferenceData{
		Schedules:     make(map[RoutePair][]string),
		CityDelays:    make(map[string]string),
		TrainDelays:   make(map[string]string),
		TicketPrices:  make(map[RoutePair]string),
		Platforms:     make(map[string]string),
		TrainTypes:    make(map[RoutePair]string),
		TrainServices: make(map[string][]string),
		CityAliases:   make(map[string]string),
	}
}

// AddSchedule добавляет время отправления, сохраняя порядок маршрутов
func (d *ReferenceData) AddSchedule(pair RoutePair, times ...string) {
	if _, ok := d.Schedules[pair]; !ok {
		d.RouteOrder = append(d.RouteOrder, pair)
	}
	d.Schedules[pair] = append(d.Schedules[pair], times...)
}

// KnownCities - отсортированное объединение городов из расписания и
// сообщений о задержках по городам
func (d *ReferenceData) KnownCities() []string {
	set := make(map[string]struct{})
	for pair := range d.Schedules {
		set[pair.Departure] = struct{}{}
		set[pair.Arrival] = struct{}{}
	}
	for city := range d.CityDelays {
		set[city] = struct{}{}
	}

	cities := make([]string, 0, len(set))
	for city := range set {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// Validate проверяет согласованность справочника: каждый канонический
// город из CityAliases должен встречаться хотя бы в одной таблице, а
// время в расписании должно быть в формате HH:MM.
func (d *ReferenceData) Validate() error {
	referenced := make(map[string]struct{})
	for _, city := range d.KnownCities() {
		referenced[city] = struct{}{}
	}
	for pair := range d.TicketPrices {
		referenced[pair.Departure] = struct{}{}
		referenced[pair.Arrival] = struct{}{}
	}
	for pair := range d.TrainTypes {
		referenced[pair.Departure] = struct{}{}
		referenced[pair.Arrival] = struct{}{}
	}

	for alias, canonical := range d.CityAliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("empty alias for city %q", canonical)
		}
		if _, ok := referenced[canonical]; !ok {
			return fmt.Errorf("alias %q points to unknown city %q", alias, canonical)
		}
	}

	for pair, times := range d.Schedules {
		for _, t := range times {
			if _, err := time.Parse("15:04", t); err != nil {
				return fmt.Errorf("route %s: invalid departure time %q", pair, t)
			}
		}
	}

	return nil
}
