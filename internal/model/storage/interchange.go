package storage

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

type recordReader interface {
	ReadAll(ctx context.Context) ([]expense.Record, error)
}

type recordAppender interface {
	Append(ctx context.Context, rec expense.Record) error
}

// ExportCSV writes the header and every row of src in the ledger file format.
func ExportCSV(ctx context.Context, src recordReader, w io.Writer) (int, error) {
	records, err := src.ReadAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "export expenses")
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(expense.Header); err != nil {
		return 0, errors.Wrap(err, "export expenses")
	}
	for _, rec := range records {
		if err = cw.Write(rec); err != nil {
			return 0, errors.Wrap(err, "export expenses")
		}
	}
	cw.Flush()
	return len(records), errors.Wrap(cw.Error(), "export expenses")
}

// ImportCSV appends the rows of a ledger file to dst. Rows missing a field
// are skipped, extra trailing fields are dropped. Values are not validated.
func ImportCSV(ctx context.Context, r io.Reader, dst recordAppender) (int, error) {
	records, err := readRecords(r)
	if err != nil {
		return 0, errors.Wrap(err, "import expenses")
	}

	imported := 0
	for i, rec := range records {
		if !rec.Complete() {
			logger.Warn("skip incomplete row", zap.Int("row", i+2), zap.Strings("fields", rec))
			continue
		}
		if err = dst.Append(ctx, rec[:expense.FieldCount]); err != nil {
			return imported, errors.Wrap(err, "import expenses")
		}
		imported++
	}
	return imported, nil
}
