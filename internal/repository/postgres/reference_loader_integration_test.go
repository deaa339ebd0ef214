package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/repository/postgres/testhelpers"
)

func TestReferenceLoader_Load(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := testhelpers.SetupTestDB(t)
	defer tdb.Close()

	ctx := context.Background()
	require.NoError(t, testhelpers.NewDBForTest(tdb.DB, tdb.Logger).Health(ctx))
	require.NoError(t, testhelpers.ApplyMigrations(tdb.DB.DB, "migrations"))
	require.NoError(t, tdb.Cleanup(ctx))
	t.Cleanup(func() { _ = tdb.Cleanup(ctx) })
	require.NoError(t, testhelpers.LoadFixtures(tdb.DB.DB, "testdata", []string{"reference.sql"}))

	n, err := testhelpers.CountRows(tdb.DB.DB, "schedules")
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	loader := testhelpers.NewReferenceLoaderForTest(tdb.DB, tdb.Logger)
	data, err := loader.Load(ctx)
	require.NoError(t, err)

	pair := domain.RoutePair{Departure: "Łódź", Arrival: "Kraków"}
	assert.Equal(t, []string{"05:10", "09:00", "13:45", "18:20"}, data.Schedules[pair])
	assert.Equal(t, []string{"04:45", "08:30"}, data.Schedules[pair.Reverse()])
	assert.Equal(t, "50 zł (standardowy)", data.TicketPrices[pair])
	assert.Equal(t, []string{"Wi-Fi", "klimatyzacja"}, data.TrainServices["IC 1234"])
	assert.Equal(t, "Łódź", data.CityAliases["Łodzi"])
	assert.Equal(t, []string{"Kraków", "Łódź"}, data.KnownCities())
}
