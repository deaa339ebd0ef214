// Package normalize приводит шумные значения сущностей (города, номера
// поездов) к каноническому виду справочника.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// latinExtendedA - блок Latin Extended-A (ą, ć, ę, ł, ń, ś, ź, ż и др.)
var latinExtendedA = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0100, Hi: 0x017F, Stride: 1}},
}

// trainNumberPattern: 1-4 буквы (включая польские), необязательный
// дефис/пробел и 1-5 цифр
var trainNumberPattern = regexp.MustCompile(`^([A-ZĄĆĘŁŃÓŚŻŹ]{1,4})\s*-?\s*(\d{1,5})`)

// Text обрезает пробелы и удаляет все символы, кроме букв, цифр, '_',
// пробельных символов, '-' и Latin Extended-A. Пустой результат означает
// отсутствие значения.
func Text(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			return r
		case unicode.IsSpace(r), r == '-':
			return r
		case unicode.Is(latinExtendedA, r):
			return r
		}
		return -1
	}, raw)
}

// TrainNumber приводит номер поезда к виду "LETTERS DIGITS"
// ("ic1234" → "IC 1234", "tlk-4567" → "TLK 4567"). Если шаблон не
// совпал, возвращается обрезанное значение в верхнем регистре.
func TrainNumber(raw string) string {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}

	m := trainNumberPattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	return m[1] + " " + m[2]
}
