package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
)

// CheckScheduleAction - диагностический action: значения городов не
// нормализуются, время отправления фиксировано
type CheckScheduleAction struct {
	logger *zap.Logger
}

func NewCheckScheduleAction(logger *zap.Logger) *CheckScheduleAction {
	return &CheckScheduleAction{logger: logger}
}

func (a *CheckScheduleAction) Name() string {
	return ActionCheckSchedule
}

func (a *CheckScheduleAction) Run(ctx context.Context, dispatcher Dispatcher, tracker domain.Tracker) []domain.Event {
	from := tracker.LatestEntityValue(domain.EntityFromCity)
	if from == "" {
		from = tracker.Slot(domain.SlotDepartureCity)
	}
	to := tracker.LatestEntityValue(domain.EntityToCity)
	if to == "" {
		to = tracker.Slot(domain.SlotArrivalCity)
	}

	a.logger.Debug("check schedule", zap.String("from", from), zap.String("to", to))

	if from == "" || to == "" {
		dispatcher.Utter(msgCheckPrompt)
		return noEvents()
	}

	dispatcher.Utter(fmt.Sprintf(msgCheckChecking, from, to))
	dispatcher.Utter(fmt.Sprintf(msgCheckResult, from, to, checkScheduleDepartureTime))
	return noEvents()
}
