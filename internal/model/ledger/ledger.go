package ledger

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

type store interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, rec expense.Record) error
	ReadAll(ctx context.Context) ([]expense.Record, error)
}

// Ledger is the append-only expense log shared by every front-end.
// Failures are logged here and returned; nothing is retried.
type Ledger struct {
	store store
}

func New(store store) *Ledger {
	return &Ledger{store: store}
}

// Initialize prepares the backing store. Callers must not use the ledger
// if it fails.
func (l *Ledger) Initialize(ctx context.Context) error {
	if err := l.store.Init(ctx); err != nil {
		logger.Error("could not initialize ledger", zap.Error(err))
		return errors.Wrap(err, "initialize ledger")
	}
	return nil
}

// Append writes one record as given. Inputs are expected to have passed
// expense.Validate.
func (l *Ledger) Append(ctx context.Context, date, category, amount string) error {
	rec := expense.NewRecord(date, category, amount)
	if err := l.store.Append(ctx, rec); err != nil {
		logger.Error("could not add expense", zap.Error(err), zap.Strings("record", rec))
		return errors.Wrap(err, "add expense")
	}
	appendedTotal.Inc()
	logger.Debug("expense added",
		zap.String("date", date),
		zap.String("category", category),
		zap.String("amount", amount))
	return nil
}

// ReadAll returns every record, oldest first. When reading fails midway the
// records read so far are returned with the error.
func (l *Ledger) ReadAll(ctx context.Context) ([]expense.Record, error) {
	records, err := l.store.ReadAll(ctx)
	if records == nil {
		records = []expense.Record{}
	}
	if err != nil {
		logger.Error("could not read expenses", zap.Error(err), zap.Int("partial", len(records)))
		return records, errors.Wrap(err, "read expenses")
	}
	return records, nil
}

// Recent returns the last n records; n <= 0 means all of them.
func (l *Ledger) Recent(ctx context.Context, n int) []expense.Record {
	records, _ := l.ReadAll(ctx)
	if n > 0 && len(records) > n {
		return records[len(records)-n:]
	}
	return records
}

// Summary aggregates whatever could be read; read errors are only logged.
func (l *Ledger) Summary(ctx context.Context) Summary {
	records, _ := l.ReadAll(ctx)
	s := Summarize(records)
	observeSkipped(s)
	return s
}

func (l *Ledger) TotalAmount(ctx context.Context) float64 {
	return l.Summary(ctx).Total
}

func (l *Ledger) SummaryByCategory(ctx context.Context) map[string]float64 {
	return l.Summary(ctx).ByCategory
}

func (l *Ledger) SummaryByMonth(ctx context.Context) map[string]float64 {
	return l.Summary(ctx).ByMonth
}
