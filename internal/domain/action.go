package domain

// Event - событие, возвращаемое action (установка слота и т.п.).
// Обработчики этого сервиса событий не порождают.
type Event map[string]any

// BotResponse - одна реплика бота
type BotResponse struct {
	Text string `json:"text"`
}
