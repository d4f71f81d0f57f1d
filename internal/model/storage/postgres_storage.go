package storage

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=%s"

type postgresConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

type PostgresStorage struct {
	*sqlStorage
}

func NewPostgresStorage(config postgresConfig) (*PostgresStorage, error) {
	dsn := fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database(),
		config.SSLMode())

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{&sqlStorage{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		driver:  "postgres",
		dsn:     dsn,
	}}, nil
}
