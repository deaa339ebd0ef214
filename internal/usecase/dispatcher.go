package usecase

import "github.com/railway-assistant/internal/domain"

// Dispatcher - канал вывода реплик бота
type Dispatcher interface {
	Utter(text string)
}

// CollectingDispatcher накапливает реплики в порядке отправки
type CollectingDispatcher struct {
	messages []domain.BotResponse
}

func NewCollectingDispatcher() *CollectingDispatcher {
	return &CollectingDispatcher{messages: make([]domain.BotResponse, 0, 2)}
}

func (d *CollectingDispatcher) Utter(text string) {
	d.messages = append(d.messages, domain.BotResponse{Text: text})
}

// Messages возвращает собранные реплики
func (d *CollectingDispatcher) Messages() []domain.BotResponse {
	return append([]domain.BotResponse(nil), d.messages...)
}
