package usecase

import (
	"github.com/railway-assistant/internal/domain"
)

// field - логическое значение, которое action берет из трекера
type field int

const (
	fieldDeparture field = iota
	fieldArrival
	fieldDelayCity
	fieldTrainNumber
)

// slotSource: сначала слот, затем первая непустая сущность последнего
// сообщения одного из перечисленных типов (в порядке сообщения)
type slotSource struct {
	slot     string
	entities []string
}

var slotSources = map[field]slotSource{
	fieldDeparture: {
		slot:     domain.SlotDepartureCity,
		entities: []string{domain.EntityDepartureCity, domain.EntityFromCity},
	},
	fieldArrival: {
		slot:     domain.SlotArrivalCity,
		entities: []string{domain.EntityArrivalCity, domain.EntityToCity},
	},
	fieldDelayCity: {
		slot:     domain.SlotDelayCity,
		entities: []string{domain.EntityDelayCity},
	},
	fieldTrainNumber: {
		slot:     domain.SlotTrainNumber,
		entities: []string{domain.EntityTrainNumber},
	},
}

// resolveField возвращает сырое значение поля или пустую строку
func resolveField(tracker domain.Tracker, f field) string {
	src := slotSources[f]
	if v := tracker.Slot(src.slot); v != "" {
		return v
	}

	for _, e := range tracker.LatestMessage.Entities {
		if !contains(src.entities, e.Entity) {
			continue
		}
		if v, ok := e.Value.(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
