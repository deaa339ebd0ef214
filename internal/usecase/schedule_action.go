package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
	"github.com/railway-assistant/internal/pkg/utils"
)

// ScheduleAction отвечает на вопросы о расписании между двумя городами
type ScheduleAction struct {
	refs     repository.ReferenceRepository
	resolver *Resolver
	clock    utils.Clock
	logger   *zap.Logger
}

// NewScheduleAction - создание action расписания
func NewScheduleAction(
	refs repository.ReferenceRepository,
	resolver *Resolver,
	clock utils.Clock,
	logger *zap.Logger,
) *ScheduleAction {
	return &ScheduleAction{
		refs:     refs,
		resolver: resolver,
		clock:    clock,
		logger:   logger,
	}
}

func (a *ScheduleAction) Name() string {
	return ActionShowSchedule
}

func (a *ScheduleAction) Run(ctx context.Context, dispatcher Dispatcher, tracker domain.Tracker) []domain.Event {
	pair, ok := a.resolver.Route(tracker)
	if !ok {
		a.logger.Debug("schedule: route incomplete",
			zap.String("departure", pair.Departure),
			zap.String("arrival", pair.Arrival))
		dispatcher.Utter(msgSchedulePrompt)
		return noEvents()
	}

	times, ok := a.refs.Schedule(pair)
	if !ok {
		a.noSchedule(dispatcher, pair)
		return noEvents()
	}

	intent := tracker.IntentName()
	a.logger.Debug("schedule: route found",
		zap.Stringer("route", pair),
		zap.String("intent", intent),
		zap.Int("departures", len(times)))

	switch intent {
	case domain.IntentAskScheduleNext, domain.IntentAskSchedule:
		next, _ := utils.FindNextTrain(times, a.clock())
		dispatcher.Utter(fmt.Sprintf(msgScheduleNext, pair.Departure, pair.Arrival, next))
	case domain.IntentAskScheduleAll, domain.IntentAskScheduleConnection:
		dispatcher.Utter(fmt.Sprintf(msgScheduleAll, pair.Departure, pair.Arrival, strings.Join(times, ", ")))
	default:
		next, _ := utils.FindNextTrain(times, a.clock())
		dispatcher.Utter(fmt.Sprintf(msgScheduleCombined, pair.Departure, pair.Arrival, strings.Join(times, ", "), next))
	}
	return noEvents()
}

// noSchedule: обратное направление, затем маршрут с общим городом
func (a *ScheduleAction) noSchedule(dispatcher Dispatcher, pair domain.RoutePair) {
	if _, ok := a.refs.Schedule(pair.Reverse()); ok {
		a.logger.Debug("schedule: reverse direction available", zap.Stringer("route", pair))
		dispatcher.Utter(fmt.Sprintf(msgScheduleReverse, pair.Arrival, pair.Departure))
		return
	}

	for _, route := range a.refs.Routes() {
		if !strings.EqualFold(route.Departure, pair.Departure) && !strings.EqualFold(route.Arrival, pair.Arrival) {
			continue
		}
		times, _ := a.refs.Schedule(route)
		a.logger.Debug("schedule: suggesting alternative",
			zap.Stringer("route", pair),
			zap.Stringer("alternative", route))
		dispatcher.Utter(fmt.Sprintf(msgScheduleAlternative,
			pair.Departure, pair.Arrival, route.Departure, route.Arrival, strings.Join(times, ", ")))
		return
	}

	a.logger.Debug("schedule: no data", zap.Stringer("route", pair))
	dispatcher.Utter(fmt.Sprintf(msgScheduleNoData, pair.Departure, pair.Arrival))
}
