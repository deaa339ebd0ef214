package reference_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/config"
	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/pkg/errors"
	"github.com/railway-assistant/internal/repository/reference"
)

func loadEmbedded(t *testing.T) *reference.Store {
	t.Helper()
	data, err := reference.NewEmbeddedLoader(zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	return reference.NewStore(data)
}

func TestEmbeddedDataset(t *testing.T) {
	store := loadEmbedded(t)

	times, ok := store.Schedule(domain.RoutePair{Departure: "Łódź", Arrival: "Kraków"})
	require.True(t, ok)
	assert.Equal(t, []string{"05:10", "09:00", "13:45", "18:20"}, times)

	assert.Equal(t, []domain.RoutePair{
		{Departure: "Kraków", Arrival: "Łódź"},
		{Departure: "Łódź", Arrival: "Kraków"},
		{Departure: "Warszawa", Arrival: "Poznań"},
		{Departure: "Poznań", Arrival: "Warszawa"},
		{Departure: "Warszawa", Arrival: "Kraków"},
	}, store.Routes())

	assert.Equal(t, []string{"Kraków", "Poznań", "Warszawa", "Łódź"}, store.KnownCities())

	delay, ok := store.TrainDelay("IC 1234")
	require.True(t, ok)
	assert.Equal(t, "opóźniony o 20 minut", delay)

	price, ok := store.TicketPrice(domain.RoutePair{Departure: "Warszawa", Arrival: "Kraków"})
	require.True(t, ok)
	assert.Equal(t, "90 zł (standardowy)", price)

	platform, ok := store.Platform("EIP 123")
	require.True(t, ok)
	assert.Equal(t, "peron 7", platform)

	trainType, ok := store.TrainType(domain.RoutePair{Departure: "Łódź", Arrival: "Kraków"})
	require.True(t, ok)
	assert.Equal(t, "IC", trainType)

	services, ok := store.TrainServices("TLK 4567")
	require.True(t, ok)
	assert.Equal(t, []string{"klimatyzacja"}, services)

	assert.Equal(t, "Łódź", store.CityAliases()["Lodz"])
}

func TestStore_MissesAreTolerated(t *testing.T) {
	store := loadEmbedded(t)

	_, ok := store.Schedule(domain.RoutePair{Departure: "Gdańsk", Arrival: "Kraków"})
	assert.False(t, ok)
	_, ok = store.CityDelay("Gdańsk")
	assert.False(t, ok)
	_, ok = store.TrainDelay("IC 9999")
	assert.False(t, ok)
	_, ok = store.TicketPrice(domain.RoutePair{Departure: "Kraków", Arrival: "Łódź"})
	assert.False(t, ok, "price lookup is directional")
	_, ok = store.Platform("")
	assert.False(t, ok)
	_, ok = store.TrainType(domain.RoutePair{Departure: "Poznań", Arrival: "Warszawa"})
	assert.False(t, ok)
	_, ok = store.TrainServices("XYZ")
	assert.False(t, ok)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := loadEmbedded(t)
	pair := domain.RoutePair{Departure: "Łódź", Arrival: "Kraków"}

	times, _ := store.Schedule(pair)
	times[0] = "00:00"
	again, _ := store.Schedule(pair)
	assert.Equal(t, "05:10", again[0])

	aliases := store.CityAliases()
	aliases["Lodz"] = "Gdańsk"
	assert.Equal(t, "Łódź", store.CityAliases()["Lodz"])
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no schedules",
			yaml: "city_delays:\n  Kraków: ok\n",
		},
		{
			name: "alias to unknown city",
			yaml: "schedules:\n  - {departure: A, arrival: B, times: [\"10:00\"]}\ncity_aliases:\n  Ce: C\n",
		},
		{
			name: "bad time",
			yaml: "schedules:\n  - {departure: A, arrival: B, times: [\"1000\"]}\n",
		},
		{
			name: "unknown field",
			yaml: "schedules:\n  - {departure: A, arrival: B, times: [\"10:00\"]}\nstations: []\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reference.Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	_, err := reference.Parse([]byte("schedules:\n  - {departure: A, arrival: B, times: [\"10:00\"]}\ncity_aliases:\n  Ce: C\n"))
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeInvalidReferenceData, appErr.Code)
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	content := "schedules:\n  - {departure: Gdańsk, arrival: Gdynia, times: [\"07:00\", \"06:00\"]}\ncity_aliases:\n  Gdańska: Gdańsk\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	data, err := reference.NewFileLoader(path, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)

	store := reference.NewStore(data)
	times, ok := store.Schedule(domain.RoutePair{Departure: "Gdańsk", Arrival: "Gdynia"})
	require.True(t, ok)
	assert.Equal(t, []string{"07:00", "06:00"}, times)

	_, err = reference.NewFileLoader(filepath.Join(t.TempDir(), "missing.yaml"), zap.NewNop()).Load(context.Background())
	assert.Error(t, err)
}

func TestLoadStore(t *testing.T) {
	logger := zap.NewNop()

	t.Run("embedded", func(t *testing.T) {
		store, err := reference.LoadStore(context.Background(), &config.Config{
			Reference: config.ReferenceConfig{Source: config.ReferenceSourceEmbedded},
		}, logger)
		require.NoError(t, err)
		assert.Len(t, store.Routes(), 5)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := reference.LoadStore(context.Background(), &config.Config{
			Reference: config.ReferenceConfig{
				Source: config.ReferenceSourceFile,
				File:   filepath.Join(t.TempDir(), "absent.yaml"),
			},
		}, logger)
		require.Error(t, err)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := reference.LoadStore(context.Background(), &config.Config{
			Reference: config.ReferenceConfig{Source: "ftp"},
		}, logger)
		require.Error(t, err)
	})
}
