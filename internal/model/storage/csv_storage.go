package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const filePerm = 0o644

// CSVStorage keeps the ledger in a comma-separated file with a header row.
// Every call opens and closes the file; no handle outlives a call.
type CSVStorage struct {
	path string
}

func NewCSVStorage(path string) *CSVStorage {
	return &CSVStorage{path: path}
}

func (s *CSVStorage) Path() string {
	return s.path
}

// Init writes the header when the file is missing or empty and leaves
// any other file untouched.
func (s *CSVStorage) Init(_ context.Context) error {
	info, err := os.Stat(s.path)
	switch {
	case err == nil && info.IsDir():
		return errors.Errorf("init ledger file: %s is a directory", s.path)
	case err == nil && info.Size() > 0:
		return nil
	case err != nil && !os.IsNotExist(err):
		return errors.Wrap(err, "init ledger file")
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.Wrap(err, "init ledger file")
	}
	if err = writeRow(f, expense.Header); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "init ledger file")
	}
	logger.Info("ledger file created", zap.String("path", s.path))
	return errors.Wrap(f.Close(), "init ledger file")
}

func (s *CSVStorage) Append(_ context.Context, rec expense.Record) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePerm)
	if err != nil {
		return errors.Wrap(err, "append expense")
	}
	if err = writeRow(f, rec); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "append expense")
	}
	return errors.Wrap(f.Close(), "append expense")
}

// ReadAll returns the rows after the header in file order. A missing file
// reads as an empty ledger. On a read error the rows parsed so far are
// returned along with the error.
func (s *CSVStorage) ReadAll(_ context.Context) ([]expense.Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return []expense.Record{}, nil
	}
	if err != nil {
		return []expense.Record{}, errors.Wrap(err, "read expenses")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Warn("error closing ledger file", zap.Error(closeErr))
		}
	}()

	records, err := readRecords(f)
	return records, errors.Wrap(err, "read expenses")
}

// writeRow encodes the row first so the file sees a single write of one line.
func writeRow(w io.Writer, row []string) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func readRecords(r io.Reader) ([]expense.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records := make([]expense.Record, 0)
	headerSeen := false
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		if len(row) == 0 {
			continue
		}
		records = append(records, expense.Record(row))
	}
}
