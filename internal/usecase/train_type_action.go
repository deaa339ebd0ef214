package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
)

type TrainTypeAction struct {
	refs     repository.ReferenceRepository
	resolver *Resolver
	logger   *zap.Logger
}

func NewTrainTypeAction(refs repository.ReferenceRepository, resolver *Resolver, logger *zap.Logger) *TrainTypeAction {
	return &TrainTypeAction{refs: refs, resolver: resolver, logger: logger}
}

func (a *TrainTypeAction) Name() string {
	return ActionShowTrainType
}

func (a *TrainTypeAction) Run(ctx context.Context, dispatcher Dispatcher, tracker domain.Tracker) []domain.Event {
	pair, ok := a.resolver.Route(tracker)
	if !ok {
		dispatcher.Utter(msgTrainTypePrompt)
		return noEvents()
	}

	trainType, ok := a.refs.TrainType(pair)
	a.logger.Debug("train type lookup", zap.Stringer("route", pair), zap.Bool("found", ok))
	if !ok {
		dispatcher.Utter(fmt.Sprintf(msgTrainTypeNoData, pair.Departure, pair.Arrival))
		return noEvents()
	}
	dispatcher.Utter(fmt.Sprintf(msgTrainType, pair.Departure, pair.Arrival, trainType))
	return noEvents()
}
