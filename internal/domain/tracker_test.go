package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Slot(t *testing.T) {
	tests := []struct {
		name     string
		tracker  Tracker
		slot     string
		expected string
	}{
		{
			name:     "string slot",
			tracker:  Tracker{Slots: map[string]any{SlotDepartureCity: "Łódź"}},
			slot:     SlotDepartureCity,
			expected: "Łódź",
		},
		{
			name:     "nil slots map",
			tracker:  Tracker{},
			slot:     SlotDepartureCity,
			expected: "",
		},
		{
			name:     "null slot value",
			tracker:  Tracker{Slots: map[string]any{SlotTrainNumber: nil}},
			slot:     SlotTrainNumber,
			expected: "",
		},
		{
			name:     "non-string slot value",
			tracker:  Tracker{Slots: map[string]any{SlotTrainNumber: 1234.0}},
			slot:     SlotTrainNumber,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tracker.Slot(tt.slot))
		})
	}
}

func TestTracker_LatestEntityValue(t *testing.T) {
	tracker := Tracker{
		LatestMessage: Message{
			Intent: Intent{Name: IntentAskScheduleAll},
			Entities: []Entity{
				{Entity: EntityFromCity, Value: ""},
				{Entity: EntityToCity, Value: "Krakowa"},
				{Entity: EntityFromCity, Value: "Łodzi"},
				{Entity: EntityToCity, Value: "Poznania"},
			},
		},
	}

	assert.Equal(t, "Łodzi", tracker.LatestEntityValue(EntityFromCity))
	assert.Equal(t, "Krakowa", tracker.LatestEntityValue(EntityToCity))
	assert.Equal(t, "", tracker.LatestEntityValue(EntityTrainNumber))
	assert.Equal(t, IntentAskScheduleAll, tracker.IntentName())
}
