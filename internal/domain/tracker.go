package domain

// Имена слотов, которые заполняет диалоговый менеджер
const (
	SlotDepartureCity = "departure_city"
	SlotArrivalCity   = "arrival_city"
	SlotDelayCity     = "delay_city"
	SlotTrainNumber   = "train_number"
)

// Типы сущностей, извлекаемых NLU
const (
	EntityDepartureCity = "departure_city"
	EntityArrivalCity   = "arrival_city"
	EntityFromCity      = "from_city"
	EntityToCity        = "to_city"
	EntityDelayCity     = "delay_city"
	EntityTrainNumber   = "train_number"
)

// Интенты, от которых зависит ветка ответа
const (
	IntentAskSchedule           = "ask_schedule"
	IntentAskScheduleNext       = "ask_schedule_next"
	IntentAskScheduleAll        = "ask_schedule_all"
	IntentAskScheduleConnection = "ask_schedule_connection"
	IntentAskDelay              = "ask_delay"
	IntentAskDelayCity          = "ask_delay_city"
	IntentAskDelayTrain         = "ask_delay_train"
)

// Entity - сущность из последнего сообщения пользователя
type Entity struct {
	Entity string `json:"entity" validate:"required"`
	Value  any    `json:"value"`
}

// Intent - классифицированный интент
type Intent struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Message - последнее сообщение пользователя
type Message struct {
	Text     string   `json:"text,omitempty"`
	Intent   Intent   `json:"intent"`
	Entities []Entity `json:"entities" validate:"dive"`
}

// Tracker - снимок состояния диалога, переданный вместе с вызовом action
type Tracker struct {
	SenderID      string         `json:"sender_id"`
	Slots         map[string]any `json:"slots"`
	LatestMessage Message        `json:"latest_message"`
}

// Slot возвращает строковое значение слота; пустые и нестроковые значения
// считаются отсутствующими
func (t Tracker) Slot(name string) string {
	if t.Slots == nil {
		return ""
	}
	return stringValue(t.Slots[name])
}

// IntentName - имя интента последнего сообщения
func (t Tracker) IntentName() string {
	return t.LatestMessage.Intent.Name
}

// LatestEntityValue возвращает значение первой сущности указанного типа
// из последнего сообщения
func (t Tracker) LatestEntityValue(entityType string) string {
	for _, e := range t.LatestMessage.Entities {
		if e.Entity != entityType {
			continue
		}
		if v := stringValue(e.Value); v != "" {
			return v
		}
	}
	return ""
}

func stringValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
