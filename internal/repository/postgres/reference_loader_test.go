package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/pkg/errors"
)

func TestAssembleReferenceData(t *testing.T) {
	rows := ReferenceRows{
		Schedules: []ScheduleRow{
			{Departure: "Łódź", Arrival: "Kraków", Time: "05:10"},
			{Departure: "Łódź", Arrival: "Kraków", Time: "09:00"},
			{Departure: "Kraków", Arrival: "Łódź", Time: "04:45"},
		},
		CityDelays:    []KeyValueRow{{Key: "Łódź", Value: "objazdy"}},
		TrainDelays:   []KeyValueRow{{Key: "IC 1234", Value: "opóźniony o 20 minut"}},
		TicketPrices:  []RouteValueRow{{Departure: "Łódź", Arrival: "Kraków", Value: "50 zł"}},
		Platforms:     []KeyValueRow{{Key: "IC 1234", Value: "peron 5"}},
		TrainTypes:    []RouteValueRow{{Departure: "Łódź", Arrival: "Kraków", Value: "IC"}},
		TrainServices: []KeyValueRow{{Key: "IC 1234", Value: "Wi-Fi"}, {Key: "IC 1234", Value: "klimatyzacja"}},
		CityAliases:   []KeyValueRow{{Key: "Lodz", Value: "Łódź"}},
	}

	data, err := AssembleReferenceData(rows)
	require.NoError(t, err)

	pair := domain.RoutePair{Departure: "Łódź", Arrival: "Kraków"}
	assert.Equal(t, []string{"05:10", "09:00"}, data.Schedules[pair])
	assert.Equal(t, []domain.RoutePair{pair, pair.Reverse()}, data.RouteOrder)
	assert.Equal(t, "50 zł", data.TicketPrices[pair])
	assert.Equal(t, "IC", data.TrainTypes[pair])
	assert.Equal(t, []string{"Wi-Fi", "klimatyzacja"}, data.TrainServices["IC 1234"])
	assert.Equal(t, "peron 5", data.Platforms["IC 1234"])
	assert.Equal(t, "Łódź", data.CityAliases["Lodz"])
}

func TestAssembleReferenceData_Invalid(t *testing.T) {
	t.Run("empty schedules", func(t *testing.T) {
		_, err := AssembleReferenceData(ReferenceRows{})

		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.CodeInvalidReferenceData, appErr.Code)
	})

	t.Run("alias to unknown city", func(t *testing.T) {
		_, err := AssembleReferenceData(ReferenceRows{
			Schedules:   []ScheduleRow{{Departure: "A", Arrival: "B", Time: "10:00"}},
			CityAliases: []KeyValueRow{{Key: "Wrocławia", Value: "Wrocław"}},
		})

		assert.Error(t, err)
	})
}
