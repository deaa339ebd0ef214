package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
)

// DelayAction сообщает о затруднениях в городе или опоздании поезда
type DelayAction struct {
	refs     repository.ReferenceRepository
	resolver *Resolver
	logger   *zap.Logger
}

func NewDelayAction(refs repository.ReferenceRepository, resolver *Resolver, logger *zap.Logger) *DelayAction {
	return &DelayAction{refs: refs, resolver: resolver, logger: logger}
}

func (a *DelayAction) Name() string {
	return ActionShowDelay
}

func (a *DelayAction) Run(ctx context.Context, dispatcher Dispatcher, tracker domain.Tracker) []domain.Event {
	city := a.resolver.City(resolveField(tracker, fieldDelayCity))
	train := ""
	if raw := resolveField(tracker, fieldTrainNumber); raw != "" {
		train = a.resolver.TrainNumber(raw)
	}

	intent := tracker.IntentName()
	a.logger.Debug("delay: resolved",
		zap.String("intent", intent),
		zap.String("city", city),
		zap.String("train", train))

	switch intent {
	case domain.IntentAskDelayCity, domain.IntentAskDelay:
		a.cityDelay(dispatcher, city)
	case domain.IntentAskDelayTrain:
		a.trainDelay(dispatcher, train)
	default:
		a.anyDelay(dispatcher, city, train)
	}
	return noEvents()
}

func (a *DelayAction) cityDelay(dispatcher Dispatcher, city string) {
	if city == "" {
		dispatcher.Utter(msgDelayCityPrompt)
		return
	}
	if info, ok := a.refs.CityDelay(city); ok {
		dispatcher.Utter(fmt.Sprintf(msgDelayCity, city, status(info)))
		return
	}
	dispatcher.Utter(fmt.Sprintf(msgDelayCityNoData, city))
}

func (a *DelayAction) trainDelay(dispatcher Dispatcher, train string) {
	if train == "" {
		dispatcher.Utter(msgDelayTrainPrompt)
		return
	}
	if info, ok := a.refs.TrainDelay(train); ok {
		dispatcher.Utter(fmt.Sprintf(msgDelayTrain, train, status(info)))
		return
	}
	dispatcher.Utter(fmt.Sprintf(msgDelayTrainNoData, train))
}

// anyDelay: интент не уточнен, первым выигрывает город, затем поезд
func (a *DelayAction) anyDelay(dispatcher Dispatcher, city, train string) {
	if city != "" {
		if info, ok := a.refs.CityDelay(city); ok {
			dispatcher.Utter(fmt.Sprintf(msgDelayCityShort, city, status(info)))
			return
		}
	}
	if train != "" {
		if info, ok := a.refs.TrainDelay(train); ok {
			dispatcher.Utter(fmt.Sprintf(msgDelayTrain, train, status(info)))
			return
		}
	}
	dispatcher.Utter(msgDelayUnclear)
}
