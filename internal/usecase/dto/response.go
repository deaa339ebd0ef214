package dto

import "github.com/railway-assistant/internal/domain"

// ActionResponse - события и реплики, собранные за выполнение action
type ActionResponse struct {
	Events    []domain.Event       `json:"events"`
	Responses []domain.BotResponse `json:"responses"`
}

// ActionInfo - описание зарегистрированного action
type ActionInfo struct {
	Name string `json:"name"`
}

// HealthResponse - ответ health-check
type HealthResponse struct {
	Status string `json:"status"`
}
