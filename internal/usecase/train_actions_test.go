package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
)

func TestPlatformAction_Run(t *testing.T) {
	store := newTestStore(t)
	action := NewPlatformAction(store, NewResolver(store), zap.NewNop())

	tests := []struct {
		name  string
		train any
		want  string
	}{
		{name: "normalized number", train: "eip-123", want: "Pociąg EIP 123 odjeżdża z peron 7."},
		{name: "spaced number", train: "TLK  4567", want: "Pociąg TLK 4567 odjeżdża z peron 2."},
		{name: "unknown train", train: "XY 1", want: "Brak danych o peronie dla pociągu XY 1."},
		{name: "missing train", train: nil, want: "Podaj numer pociągu, np. 'IC 1234'."},
		{name: "non-string slot", train: 1234, want: "Podaj numer pociągu, np. 'IC 1234'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tracker("ask_platform", map[string]any{domain.SlotTrainNumber: tt.train})
			assert.Equal(t, []string{tt.want}, run(t, action, tr))
		})
	}
}

func TestServicesAction_Run(t *testing.T) {
	store := newTestStore(t)
	action := NewServicesAction(store, NewResolver(store), zap.NewNop())

	tests := []struct {
		name    string
		tracker domain.Tracker
		want    string
	}{
		{
			name:    "services listed in order",
			tracker: tracker("ask_services", nil, entity(domain.EntityTrainNumber, "ic 1234")),
			want:    "Pociąg IC 1234 oferuje: Wi-Fi, restauracja, klimatyzacja, wagon sypialny (na wybranych kursach).",
		},
		{
			name:    "single service",
			tracker: tracker("ask_services", map[string]any{domain.SlotTrainNumber: "tlk4567"}),
			want:    "Pociąg TLK 4567 oferuje: klimatyzacja.",
		},
		{
			name:    "unknown train",
			tracker: tracker("ask_services", nil, entity(domain.EntityTrainNumber, "ZZ 9")),
			want:    "Brak informacji o usługach w pociągu ZZ 9.",
		},
		{
			name:    "missing train",
			tracker: tracker("ask_services", nil),
			want:    "Podaj numer pociągu, np. 'IC 1234', abym mógł sprawdzić usługi.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, run(t, action, tt.tracker))
		})
	}
}
