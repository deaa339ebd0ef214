package domain

import "github.com/google/uuid"

// Имена стримов для асинхронного вызова actions
const (
	StreamActionRequest = "stream:action:request"
	StreamActionDone    = "stream:action:done"
)

// ActionRequestEvent - входящее событие на выполнение action
type ActionRequestEvent struct {
	RequestID  uuid.UUID `json:"request_id"`
	NextAction string    `json:"next_action"`
	Tracker    Tracker   `json:"tracker"`
}

// ActionDoneEvent - результат выполнения action
type ActionDoneEvent struct {
	RequestID  uuid.UUID     `json:"request_id"`
	NextAction string        `json:"next_action"`
	SenderID   string        `json:"sender_id,omitempty"`
	Events     []Event       `json:"events"`
	Responses  []BotResponse `json:"responses"`
	Error      string        `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
