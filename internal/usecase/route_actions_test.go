package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
)

func route(departure, arrival string) map[string]any {
	return map[string]any{
		domain.SlotDepartureCity: departure,
		domain.SlotArrivalCity:   arrival,
	}
}

func TestTicketPriceAction_Run(t *testing.T) {
	store := newTestStore(t)
	action := NewTicketPriceAction(store, NewResolver(store), zap.NewNop())

	tests := []struct {
		name    string
		tracker domain.Tracker
		want    string
	}{
		{
			name:    "forward route",
			tracker: tracker("ask_price", route("Łodzi", "Krakowa")),
			want:    "Cena biletu z Łódź do Kraków: 50 zł (standardowy).",
		},
		{
			name:    "reverse route has the same price",
			tracker: tracker("ask_price", route("Krakowa", "Łodzi")),
			want:    "Cena biletu z Kraków do Łódź: 50 zł (standardowy).",
		},
		{
			name:    "no price",
			tracker: tracker("ask_price", route("Poznań", "Kraków")),
			want:    "Brak danych o cenie biletu dla trasy Poznań → Kraków. Możesz spróbować innych wariantów (np. różni przewoźnicy).",
		},
		{
			name:    "missing city",
			tracker: tracker("ask_price", nil, entity(domain.EntityFromCity, "Warszawa")),
			want:    "Podaj miasta początkowe i docelowe, np. 'ile kosztuje bilet z Łodzi do Krakowa'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, run(t, action, tt.tracker))
		})
	}
}

func TestTrainTypeAction_Run(t *testing.T) {
	store := newTestStore(t)
	action := NewTrainTypeAction(store, NewResolver(store), zap.NewNop())

	assert.Equal(t,
		[]string{"Na trasie Warszawa → Kraków kursuje pociąg typu: EIP/IC (w zależności od kursu)."},
		run(t, action, tracker("ask_train_type", route("Warszawy", "Krakowa"))))

	// тип поезда не симметричен
	assert.Equal(t,
		[]string{"Brak danych o typie pociągu na trasie Kraków → Warszawa."},
		run(t, action, tracker("ask_train_type", route("Kraków", "Warszawa"))))

	assert.Equal(t,
		[]string{"Podaj miasta początkowe i docelowe, np. 'jaki typ pociągu z Łodzi do Krakowa'."},
		run(t, action, tracker("ask_train_type", nil)))
}

func TestCheckScheduleAction_Run(t *testing.T) {
	action := NewCheckScheduleAction(zap.NewNop())

	t.Run("entities echoed raw", func(t *testing.T) {
		tr := tracker("check_schedule", route("Łódź", "Kraków"),
			entity(domain.EntityFromCity, "gdansk"),
			entity(domain.EntityToCity, "sopot"))

		assert.Equal(t, []string{
			"Sprawdzam rozkład jazdy z gdansk do sopot...",
			"Najbliższy pociąg z gdansk do sopot odjeżdża o 12:45 🚆",
		}, run(t, action, tr))
	})

	t.Run("slots used when entities absent", func(t *testing.T) {
		tr := tracker("check_schedule", route("Łodzi", "Krakowa"))

		assert.Equal(t, []string{
			"Sprawdzam rozkład jazdy z Łodzi do Krakowa...",
			"Najbliższy pociąg z Łodzi do Krakowa odjeżdża o 12:45 🚆",
		}, run(t, action, tr))
	})

	t.Run("missing city", func(t *testing.T) {
		tr := tracker("check_schedule", nil, entity(domain.EntityFromCity, "Łódź"))

		assert.Equal(t, []string{"Podaj proszę miasto początkowe i docelowe."}, run(t, action, tr))
	})
}
