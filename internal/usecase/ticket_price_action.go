package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
)

// TicketPriceAction - цена билета; цена симметрична, поэтому при
// отсутствии прямого маршрута проверяется обратный
type TicketPriceAction struct {
	refs     repository.ReferenceRepository
	resolver *Resolver
	logger   *zap.Logger
}

func NewTicketPriceAction(refs repository.ReferenceRepository, resolver *Resolver, logger *zap.Logger) *TicketPriceAction {
	return &TicketPriceAction{refs: refs, resolver: resolver, logger: logger}
}

func (a *TicketPriceAction) Name() string {
	return ActionShowTicketPrice
}

func (a *TicketPriceAction) Run(ctx context.Context, dispatcher Dispatcher, tracker domain.Tracker) []domain.Event {
	pair, ok := a.resolver.Route(tracker)
	if !ok {
		dispatcher.Utter(msgPricePrompt)
		return noEvents()
	}

	price, ok := a.refs.TicketPrice(pair)
	if !ok {
		price, ok = a.refs.TicketPrice(pair.Reverse())
	}
	a.logger.Debug("ticket price lookup", zap.Stringer("route", pair), zap.Bool("found", ok))

	if !ok {
		dispatcher.Utter(fmt.Sprintf(msgPriceNoData, pair.Departure, pair.Arrival))
		return noEvents()
	}
	dispatcher.Utter(fmt.Sprintf(msgPrice, pair.Departure, pair.Arrival, price))
	return noEvents()
}
