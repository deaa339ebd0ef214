package dto

import "github.com/railway-assistant/internal/domain"

// ActionRequest - запрос диалогового менеджера на выполнение action
type ActionRequest struct {
	NextAction string                 `json:"next_action" validate:"required"`
	SenderID   string                 `json:"sender_id"`
	Tracker    domain.Tracker         `json:"tracker"`
	Domain     map[string]interface{} `json:"domain,omitempty"`
	Version    string                 `json:"version,omitempty"`
}
