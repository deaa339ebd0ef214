package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
)

func TestDelayAction_Run(t *testing.T) {
	store := newTestStore(t)
	action := NewDelayAction(store, NewResolver(store), zap.NewNop())

	tests := []struct {
		name    string
		tracker domain.Tracker
		want    string
	}{
		{
			name:    "city delay from slot",
			tracker: tracker(domain.IntentAskDelayCity, map[string]any{domain.SlotDelayCity: "Krakowie"}),
			want:    "Aktualne informacje dla Kraków: utrudnienia: w kierunku Warszawa; na odcinku Kraków - Wadowice występują objazdy.",
		},
		{
			name:    "generic delay intent asks by city",
			tracker: tracker(domain.IntentAskDelay, nil, entity(domain.EntityDelayCity, "Lodz")),
			want:    "Aktualne informacje dla Łódź: komunikacja zastępcza na odcinku Koluszki - Skierniewice (do odwołania).",
		},
		{
			name:    "city without data",
			tracker: tracker(domain.IntentAskDelayCity, nil, entity(domain.EntityDelayCity, "Gdańsk")),
			want:    "Brak informacji o opóźnieniach w Gdańsk.",
		},
		{
			name:    "city missing",
			tracker: tracker(domain.IntentAskDelay, nil, entity(domain.EntityTrainNumber, "IC 1234")),
			want:    "Podaj proszę miasto, z którego chcesz sprawdzić opóźnienia (np. 'opóźnienia z Krakowa').",
		},
		{
			name:    "train delay",
			tracker: tracker(domain.IntentAskDelayTrain, nil, entity(domain.EntityTrainNumber, "ic1234")),
			want:    "Pociąg IC 1234: opóźniony o 20 minut.",
		},
		{
			name:    "train without data",
			tracker: tracker(domain.IntentAskDelayTrain, map[string]any{domain.SlotTrainNumber: "ex 99"}),
			want:    "Brak informacji o opóźnieniach dla pociągu EX 99.",
		},
		{
			name:    "train missing",
			tracker: tracker(domain.IntentAskDelayTrain, map[string]any{domain.SlotDelayCity: "Kraków"}),
			want:    "Podaj proszę numer pociągu (np. 'IC 1234').",
		},
		{
			name: "unspecified intent prefers city",
			tracker: tracker("inform", nil,
				entity(domain.EntityTrainNumber, "EIP 123"),
				entity(domain.EntityDelayCity, "Poznania")),
			want: "Aktualnie dla Poznań: brak ogłoszonych utrudnień.",
		},
		{
			name: "unspecified intent falls back to train",
			tracker: tracker("inform", nil,
				entity(domain.EntityDelayCity, "Gdańsk"),
				entity(domain.EntityTrainNumber, "tlk-4567")),
			want: "Pociąg TLK 4567: odwołany na odcinku Warszawa - Łódź.",
		},
		{
			name:    "unspecified intent without matches",
			tracker: tracker("", nil),
			want:    "Nie rozumiem, podaj proszę miasto lub numer pociągu, którego dotyczy zapytanie o opóźnienia.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, run(t, action, tt.tracker))
		})
	}
}
