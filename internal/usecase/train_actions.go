package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
)

// PlatformAction - перон, с которого отправляется поезд
type PlatformAction struct {
	refs     repository.ReferenceRepository
	resolver *Resolver
	logger   *zap.Logger
}

func NewPlatformAction(refs repository.ReferenceRepository, resolver *Resolver, logger *zap.Logger) *PlatformAction {
	return &PlatformAction{refs: refs, resolver: resolver, logger: logger}
}

func (a *PlatformAction) Name() string {
	return ActionShowPlatform
}

func (a *PlatformAction) Run(ctx context.Context, dispatcher Dispatcher, tracker domain.Tracker) []domain.Event {
	train := a.resolver.TrainNumber(resolveField(tracker, fieldTrainNumber))
	if train == "" {
		dispatcher.Utter(msgPlatformPrompt)
		return noEvents()
	}

	platform, ok := a.refs.Platform(train)
	a.logger.Debug("platform lookup", zap.String("train", train), zap.Bool("found", ok))
	if !ok {
		dispatcher.Utter(fmt.Sprintf(msgPlatformNoData, train))
		return noEvents()
	}
	dispatcher.Utter(fmt.Sprintf(msgPlatform, train, platform))
	return noEvents()
}

// ServicesAction - услуги на борту поезда
type ServicesAction struct {
	refs     repository.ReferenceRepository
	resolver *Resolver
	logger   *zap.Logger
}

func NewServicesAction(refs repository.ReferenceRepository, resolver *Resolver, logger *zap.Logger) *ServicesAction {
	return &ServicesAction{refs: refs, resolver: resolver, logger: logger}
}

func (a *ServicesAction) Name() string {
	return ActionShowServices
}

func (a *ServicesAction) Run(ctx context.Context, dispatcher Dispatcher, tracker domain.Tracker) []domain.Event {
	train := a.resolver.TrainNumber(resolveField(tracker, fieldTrainNumber))
	if train == "" {
		dispatcher.Utter(msgServicesPrompt)
		return noEvents()
	}

	services, ok := a.refs.TrainServices(train)
	a.logger.Debug("services lookup", zap.String("train", train), zap.Int("count", len(services)))
	if !ok || len(services) == 0 {
		dispatcher.Utter(fmt.Sprintf(msgServicesNoData, train))
		return noEvents()
	}
	dispatcher.Utter(fmt.Sprintf(msgServices, train, strings.Join(services, ", ")))
	return noEvents()
}
