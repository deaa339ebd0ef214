package reference

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/railway-assistant/internal/config"
	"github.com/railway-assistant/internal/domain/repository"
	"github.com/railway-assistant/internal/repository/postgres"
)

// LoadStore загружает справочник из источника, выбранного в конфигурации.
// Соединение с PostgreSQL нужно только на время загрузки и закрывается сразу.
func LoadStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	var loader repository.ReferenceLoader

	switch cfg.Reference.Source {
	case config.ReferenceSourceEmbedded:
		loader = NewEmbeddedLoader(logger)
	case config.ReferenceSourceFile:
		loader = NewFileLoader(cfg.Reference.File, logger)
	case config.ReferenceSourcePostgres:
		db, err := postgres.New(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect reference database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close reference database", zap.Error(err))
			}
		}()
		loader = postgres.NewReferenceLoader(db)
	default:
		return nil, fmt.Errorf("unknown reference source %q", cfg.Reference.Source)
	}

	data, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reference data from %s: %w", cfg.Reference.Source, err)
	}
	return NewStore(data), nil
}
