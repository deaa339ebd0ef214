package reference

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
	"github.com/railway-assistant/internal/pkg/errors"
	"github.com/railway-assistant/internal/pkg/validator"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed data/reference.yaml
var embeddedDataset []byte

type routeTimes struct {
	Departure string   `yaml:"departure" validate:"required"`
	Arrival   string   `yaml:"arrival" validate:"required"`
	Times     []string `yaml:"times" validate:"required,min=1,dive,required"`
}

type routeValue struct {
	Departure string `yaml:"departure" validate:"required"`
	Arrival   string `yaml:"arrival" validate:"required"`
	Price     string `yaml:"price"`
	Type      string `yaml:"type"`
}

// document - YAML представление справочника
type document struct {
	Schedules     []routeTimes        `yaml:"schedules" validate:"required,min=1,dive"`
	CityDelays    map[string]string   `yaml:"city_delays" validate:"dive,keys,required,endkeys,required"`
	TrainDelays   map[string]string   `yaml:"train_delays" validate:"dive,keys,required,endkeys,required"`
	TicketPrices  []routeValue        `yaml:"ticket_prices" validate:"dive"`
	Platforms     map[string]string   `yaml:"platforms" validate:"dive,keys,required,endkeys,required"`
	TrainTypes    []routeValue        `yaml:"train_types" validate:"dive"`
	TrainServices map[string][]string `yaml:"train_services" validate:"dive,keys,required,endkeys,min=1"`
	CityAliases   map[string]string   `yaml:"city_aliases" validate:"dive,keys,required,endkeys,required"`
}

// YAMLLoader читает справочник из YAML (встроенного или файла)
type YAMLLoader struct {
	read   func() ([]byte, error)
	origin string
	logger *zap.Logger
}

// NewEmbeddedLoader - загрузчик встроенного в бинарник справочника
func NewEmbeddedLoader(logger *zap.Logger) repository.ReferenceLoader {
	return &YAMLLoader{
		read:   func() ([]byte, error) { return embeddedDataset, nil },
		origin: "embedded",
		logger: logger,
	}
}

// NewFileLoader - загрузчик справочника из файла
func NewFileLoader(path string, logger *zap.Logger) repository.ReferenceLoader {
	return &YAMLLoader{
		read:   func() ([]byte, error) { return os.ReadFile(path) },
		origin: path,
		logger: logger,
	}
}

// Load читает, разбирает и проверяет справочник
func (l *YAMLLoader) Load(ctx context.Context) (*domain.ReferenceData, error) {
	raw, err := l.read()
	if err != nil {
		return nil, fmt.Errorf("read reference data %s: %w", l.origin, err)
	}

	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse reference data %s: %w", l.origin, err)
	}

	l.logger.Info("Reference data loaded",
		zap.String("origin", l.origin),
		zap.Int("routes", len(data.Schedules)),
		zap.Int("cities", len(data.KnownCities())),
		zap.Int("aliases", len(data.CityAliases)))

	return data, nil
}

// Parse разбирает YAML документ справочника в domain.ReferenceData
func Parse(raw []byte) (*domain.ReferenceData, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if err := validator.Validate(&doc); err != nil {
		return nil, errors.ErrInvalidReferenceData.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	data := domain.NewReferenceData()
	for _, s := range doc.Schedules {
		data.AddSchedule(domain.RoutePair{Departure: s.Departure, Arrival: s.Arrival}, s.Times...)
	}
	for _, p := range doc.TicketPrices {
		data.TicketPrices[domain.RoutePair{Departure: p.Departure, Arrival: p.Arrival}] = p.Price
	}
	for _, t := range doc.TrainTypes {
		data.TrainTypes[domain.RoutePair{Departure: t.Departure, Arrival: t.Arrival}] = t.Type
	}
	copyInto(data.CityDelays, doc.CityDelays)
	copyInto(data.TrainDelays, doc.TrainDelays)
	copyInto(data.Platforms, doc.Platforms)
	copyInto(data.CityAliases, doc.CityAliases)
	for train, services := range doc.TrainServices {
		data.TrainServices[train] = append([]string(nil), services...)
	}

	if err := data.Validate(); err != nil {
		return nil, errors.ErrInvalidReferenceData.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	return data, nil
}

func copyInto(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
