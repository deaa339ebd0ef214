package normalize

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FuzzyCutoff - минимальная похожесть для нечеткого совпадения
const FuzzyCutoff = 0.6

// CityNormalizer сопоставляет написание города (падежи, опечатки, без
// диакритики) с каноническим названием. Безопасен для конкурентного
// использования: после создания не изменяется.
type CityNormalizer struct {
	aliases      map[string]string
	lowerAliases map[string]string
	cities       []string
}

// NewCityNormalizer создает нормализатор по таблице алиасов и списку
// известных городов (порядок списка задает приоритет при равной похожести)
func NewCityNormalizer(aliases map[string]string, knownCities []string) *CityNormalizer {
	n := &CityNormalizer{
		aliases:      make(map[string]string, len(aliases)),
		lowerAliases: make(map[string]string, len(aliases)),
		cities:       append([]string(nil), knownCities...),
	}
	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)

	for _, alias := range keys {
		n.aliases[alias] = aliases[alias]
		// при конфликте регистров побеждает первый ключ в сортировке
		lower := strings.ToLower(alias)
		if _, ok := n.lowerAliases[lower]; !ok {
			n.lowerAliases[lower] = aliases[alias]
		}
	}
	return n
}

// Normalize никогда не падает. Порядок разрешения:
//  1. точный алиас;
//  2. алиас без учета регистра;
//  3. ближайший известный город с похожестью >= FuzzyCutoff;
//  4. сравнение с заменой ł → l;
//  5. исходная строка в Title Case (город может отсутствовать в справочнике).
func (n *CityNormalizer) Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if canonical, ok := n.aliases[raw]; ok {
		return canonical
	}

	lower := strings.ToLower(raw)
	if canonical, ok := n.lowerAliases[lower]; ok {
		return canonical
	}

	if city, ok := n.closestCity(lower); ok {
		return city
	}

	folded := foldStroke(lower)
	for _, city := range n.cities {
		if foldStroke(strings.ToLower(city)) == folded {
			return city
		}
	}

	return cases.Title(language.Polish).String(raw)
}

func (n *CityNormalizer) closestCity(lower string) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, city := range n.cities {
		score := Similarity(lower, strings.ToLower(city))
		if score >= FuzzyCutoff && score > bestScore {
			best, bestScore = city, score
		}
	}
	return best, best != ""
}

// Similarity - нормированная похожесть строк по расстоянию Левенштейна
// (по рунам): 1 для одинаковых, 0 для полностью различных.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
}

func foldStroke(s string) string {
	return strings.NewReplacer("ł", "l", "Ł", "L").Replace(s)
}
