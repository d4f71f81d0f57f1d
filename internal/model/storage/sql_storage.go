package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/storage/migrations"
)

const expensesTable = "expenses"

// sqlStorage is the append-only expenses table shared by the SQL backends.
// Values are kept as text so rows read back exactly as they were written.
type sqlStorage struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	driver  string
	dsn     string
}

func (s *sqlStorage) Init(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "init expenses table")
	}
	if err := migrations.Up(s.driver, s.dsn); err != nil {
		return errors.Wrap(err, "init expenses table")
	}
	return nil
}

func (s *sqlStorage) Append(ctx context.Context, rec expense.Record) error {
	query := s.builder.Insert(expensesTable).
		Columns("date", "category", "amount").
		Values(rec.Date(), rec.Category(), rec.Amount())

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "append expense")
}

func (s *sqlStorage) ReadAll(ctx context.Context) ([]expense.Record, error) {
	query := s.builder.Select("date", "category", "amount").
		From(expensesTable).
		OrderBy("id")

	records := make([]expense.Record, 0)
	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return records, errors.Wrap(err, "read expenses")
	}
	defer func() {
		if rowErr := rows.Close(); rowErr != nil {
			logger.Warn("error closing rows", zap.Error(rowErr))
		}
	}()

	for rows.Next() {
		var date, category, amount string
		if err = rows.Scan(&date, &category, &amount); err != nil {
			return records, errors.Wrap(err, "read expenses")
		}
		records = append(records, expense.NewRecord(date, category, amount))
	}
	return records, errors.Wrap(rows.Err(), "read expenses")
}

func (s *sqlStorage) Close() error {
	return s.db.Close()
}
