package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/railway-assistant/internal/domain/repository"
	"github.com/railway-assistant/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewReferenceLoaderForTest creates a reference loader with test database and logger
func NewReferenceLoaderForTest(db *sqlx.DB, logger *zap.Logger) repository.ReferenceLoader {
	return postgres.NewReferenceLoader(NewDBForTest(db, logger))
}
