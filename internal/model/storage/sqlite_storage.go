package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	// sqlite driver
	_ "modernc.org/sqlite"
)

type SQLiteStorage struct {
	*sqlStorage
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	return &SQLiteStorage{&sqlStorage{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		driver:  "sqlite",
		dsn:     path,
	}}, nil
}
