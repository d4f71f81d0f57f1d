package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	BackendCSV      = "csv"
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Backend is an append-only store of ledger rows.
type Backend interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, rec expense.Record) error
	ReadAll(ctx context.Context) ([]expense.Record, error)
}

type config interface {
	Backend() string
	CSVPath() string
	SQLitePath() string
}

// New builds the backend selected in config. SQL backends should be
// closed by the caller via Close.
func New(cfg config, pg postgresConfig) (Backend, error) {
	logger.Info("storage backend", zap.String("backend", cfg.Backend()))

	switch cfg.Backend() {
	case BackendCSV, "":
		return NewCSVStorage(cfg.CSVPath()), nil
	case BackendMemory:
		return NewInMemStorage(), nil
	case BackendSQLite:
		s, err := NewSQLiteStorage(cfg.SQLitePath())
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendPostgres:
		s, err := NewPostgresStorage(pg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, errors.Errorf("unknown storage backend %q", cfg.Backend())
}

// Close releases backend resources if it holds any.
func Close(b Backend) {
	closer, ok := b.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Error("failed to close storage", zap.Error(err))
	}
}
