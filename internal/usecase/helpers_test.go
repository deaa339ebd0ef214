package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/pkg/utils"
	"github.com/railway-assistant/internal/repository/reference"
)

func newTestStore(t *testing.T) *reference.Store {
	t.Helper()
	data, err := reference.NewEmbeddedLoader(zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	return reference.NewStore(data)
}

func clockAt(hour, minute int) utils.Clock {
	return utils.FixedClock(time.Date(2024, 5, 6, hour, minute, 0, 0, time.UTC))
}

func newTestRegistry(t *testing.T, clock utils.Clock) *ActionRegistry {
	t.Helper()
	logger := zap.NewNop()
	return NewActionRegistry(logger, NewDefaultActions(newTestStore(t), clock, logger)...)
}

func tracker(intent string, slots map[string]any, entities ...domain.Entity) domain.Tracker {
	return domain.Tracker{
		SenderID: "test-user",
		Slots:    slots,
		LatestMessage: domain.Message{
			Intent:   domain.Intent{Name: intent},
			Entities: entities,
		},
	}
}

func entity(name, value string) domain.Entity {
	return domain.Entity{Entity: name, Value: value}
}

// run выполняет action и возвращает тексты реплик
func run(t *testing.T, action Action, tr domain.Tracker) []string {
	t.Helper()
	d := NewCollectingDispatcher()
	events := action.Run(context.Background(), d, tr)
	require.NotNil(t, events)
	require.Empty(t, events)

	texts := make([]string, 0, len(d.Messages()))
	for _, m := range d.Messages() {
		texts = append(texts, m.Text)
	}
	return texts
}
