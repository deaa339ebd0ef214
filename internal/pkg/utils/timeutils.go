package utils

import (
	"fmt"
	"sort"
	"time"
)

// DefaultTimezone - часовой пояс расписания
const DefaultTimezone = "Europe/Warsaw"

const minutesPerDay = 24 * 60

// Clock возвращает текущее время; подменяется в тестах
type Clock func() time.Time

// ZoneClock возвращает Clock для указанного часового пояса. Если данные
// о поясе недоступны, используется локальное время системы.
func ZoneClock(zone string) Clock {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Now
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// FixedClock всегда возвращает t
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}

// ParseMinuteOfDay переводит "HH:MM" в минуты от полуночи
func ParseMinuteOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinuteOfDay переводит минуты от полуночи в "HH:MM"
func FormatMinuteOfDay(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FindNextTrain возвращает самое раннее время отправления не раньше now
// (сравниваются только часы и минуты). Если все поезда на сегодня ушли,
// возвращается самый ранний (завтрашний). Пустой список или список без
// корректных времен дает ok=false.
func FindNextTrain(times []string, now time.Time) (string, bool) {
	mins := make([]int, 0, len(times))
	for _, t := range times {
		m, err := ParseMinuteOfDay(t)
		if err != nil {
			continue
		}
		mins = append(mins, m)
	}
	if len(mins) == 0 {
		return "", false
	}
	sort.Ints(mins)

	current := now.Hour()*60 + now.Minute()
	for _, m := range mins {
		if m >= current {
			return FormatMinuteOfDay(m), true
		}
	}
	return FormatMinuteOfDay(mins[0]), true
}
