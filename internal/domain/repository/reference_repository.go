package repository

import (
	"context"

	"github.com/railway-assistant/internal/domain"
)

// ReferenceRepository - доступ только на чтение к справочнику сети.
// Отсутствующая запись возвращается как ok=false, а не как ошибка.
type ReferenceRepository interface {
	// Schedule возвращает времена отправления для направления
	Schedule(pair domain.RoutePair) ([]string, bool)

	// Routes возвращает все маршруты расписания в порядке источника
	Routes() []domain.RoutePair

	// CityDelay возвращает сообщение о задержках по городу
	CityDelay(city string) (string, bool)

	// TrainDelay возвращает статус поезда
	TrainDelay(trainNumber string) (string, bool)

	// TicketPrice возвращает цену билета строго по направлению
	TicketPrice(pair domain.RoutePair) (string, bool)

	// Platform возвращает перрон поезда
	Platform(trainNumber string) (string, bool)

	// TrainType возвращает тип поезда на направлении
	TrainType(pair domain.RoutePair) (string, bool)

	// TrainServices возвращает список удобств в поезде
	TrainServices(trainNumber string) ([]string, bool)

	// KnownCities - отсортированный список известных городов
	KnownCities() []string

	// CityAliases - копия таблицы алиасов городов
	CityAliases() map[string]string
}

// ReferenceLoader загружает справочник из источника
type ReferenceLoader interface {
	Load(ctx context.Context) (*domain.ReferenceData, error)
}
