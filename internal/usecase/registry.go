package usecase

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain/repository"
	"github.com/railway-assistant/internal/pkg/errors"
	"github.com/railway-assistant/internal/pkg/utils"
	"github.com/railway-assistant/internal/usecase/dto"
)

// ActionRegistry - таблица action по имени. После создания не изменяется,
// поэтому Execute можно вызывать конкурентно.
type ActionRegistry struct {
	actions map[string]Action
	logger  *zap.Logger
}

// NewActionRegistry - создание реестра; при повторе имени побеждает последний
func NewActionRegistry(logger *zap.Logger, actions ...Action) *ActionRegistry {
	r := &ActionRegistry{
		actions: make(map[string]Action, len(actions)),
		logger:  logger,
	}
	for _, a := range actions {
		r.actions[a.Name()] = a
	}
	return r
}

// NewDefaultActions собирает все actions железнодорожного ассистента
func NewDefaultActions(refs repository.ReferenceRepository, clock utils.Clock, logger *zap.Logger) []Action {
	resolver := NewResolver(refs)
	return []Action{
		NewScheduleAction(refs, resolver, clock, logger),
		NewDelayAction(refs, resolver, logger),
		NewCheckScheduleAction(logger),
		NewTicketPriceAction(refs, resolver, logger),
		NewPlatformAction(refs, resolver, logger),
		NewTrainTypeAction(refs, resolver, logger),
		NewServicesAction(refs, resolver, logger),
	}
}

// Names - отсортированный список зарегистрированных action
func (r *ActionRegistry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute запускает action из запроса и возвращает собранные реплики
func (r *ActionRegistry) Execute(ctx context.Context, req dto.ActionRequest) (*dto.ActionResponse, error) {
	action, ok := r.actions[req.NextAction]
	if !ok {
		return nil, errors.ErrActionNotFound.
			WithMessage(fmt.Sprintf("No registered action found for name '%s'.", req.NextAction)).
			WithDetails(map[string]interface{}{"action_name": req.NextAction})
	}

	tracker := req.Tracker
	if tracker.SenderID == "" {
		tracker.SenderID = req.SenderID
	}

	dispatcher := NewCollectingDispatcher()
	events := action.Run(ctx, dispatcher, tracker)
	if events == nil {
		events = noEvents()
	}

	responses := dispatcher.Messages()
	r.logger.Debug("action executed",
		zap.String("action", req.NextAction),
		zap.String("sender_id", tracker.SenderID),
		zap.String("intent", tracker.IntentName()),
		zap.Int("responses", len(responses)))

	return &dto.ActionResponse{
		Events:    events,
		Responses: responses,
	}, nil
}
