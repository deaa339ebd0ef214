package usecase

import (
	"context"
	"strings"

	"github.com/railway-assistant/internal/domain"
)

// Action - обработчик одного action диалогового менеджера.
// Run никогда не возвращает ошибку: нехватка данных оборачивается
// подсказкой пользователю.
type Action interface {
	Name() string
	Run(ctx context.Context, dispatcher Dispatcher, tracker domain.Tracker) []domain.Event
}

// Имена action, под которыми их вызывает диалоговый менеджер
const (
	ActionShowSchedule    = "action_show_schedule"
	ActionShowDelay       = "action_show_delay"
	ActionCheckSchedule   = "action_check_schedule"
	ActionShowTicketPrice = "action_show_ticket_price"
	ActionShowPlatform    = "action_show_platform"
	ActionShowTrainType   = "action_show_train_type"
	ActionShowServices    = "action_show_services"
)

// noEvents - actions не меняют состояние диалога
func noEvents() []domain.Event {
	return []domain.Event{}
}

// status убирает завершающую точку справочного текста перед подстановкой
// в шаблон, который сам заканчивается точкой
func status(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".")
}
