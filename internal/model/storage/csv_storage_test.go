package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func newTestCSV(t *testing.T) *CSVStorage {
	t.Helper()
	return NewCSVStorage(filepath.Join(t.TempDir(), "expenses.csv"))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func Test_CSVInit_ShouldWriteHeaderOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestCSV(t)

	require.NoError(t, s.Init(ctx))
	assert.Equal(t, "Date,Category,Amount\n", readFile(t, s.Path()))

	require.NoError(t, s.Init(ctx))
	assert.Equal(t, "Date,Category,Amount\n", readFile(t, s.Path()))
}

func Test_CSVInit_ShouldKeepExistingContent(t *testing.T) {
	ctx := context.Background()
	s := newTestCSV(t)
	content := "Date,Category,Amount\n01-01-2024,Food,100\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), filePerm))

	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Init(ctx))

	assert.Equal(t, content, readFile(t, s.Path()))
}

func Test_CSVInit_ShouldFillEmptyFile(t *testing.T) {
	s := newTestCSV(t)
	require.NoError(t, os.WriteFile(s.Path(), nil, filePerm))

	require.NoError(t, s.Init(context.Background()))

	assert.Equal(t, "Date,Category,Amount\n", readFile(t, s.Path()))
}

func Test_CSVInit_ShouldFailOnMissingDirectory(t *testing.T) {
	s := NewCSVStorage(filepath.Join(t.TempDir(), "missing", "expenses.csv"))

	assert.Error(t, s.Init(context.Background()))
}

func Test_CSVInit_ShouldFailOnDirectory(t *testing.T) {
	s := NewCSVStorage(t.TempDir())

	assert.Error(t, s.Init(context.Background()))
}

func Test_CSVAppend_ShouldPreserveOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestCSV(t)
	require.NoError(t, s.Init(ctx))

	want := []expense.Record{
		expense.NewRecord("05-03-2024", "Food", "250.50"),
		expense.NewRecord("06-03-2024", "Transport", "30"),
		expense.NewRecord("07-03-2024", "Health", "12.75"),
	}
	for _, rec := range want {
		require.NoError(t, s.Append(ctx, rec))
	}

	got, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t,
		"Date,Category,Amount\n05-03-2024,Food,250.50\n06-03-2024,Transport,30\n07-03-2024,Health,12.75\n",
		readFile(t, s.Path()))
}

func Test_CSVAppend_ShouldQuoteFieldsWithCommas(t *testing.T) {
	ctx := context.Background()
	s := newTestCSV(t)
	require.NoError(t, s.Init(ctx))

	require.NoError(t, s.Append(ctx, expense.NewRecord("05-03-2024", "Food, takeaway", "10")))

	got, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []expense.Record{{"05-03-2024", "Food, takeaway", "10"}}, got)
}

func Test_CSVReadAll_MissingFileIsEmpty(t *testing.T) {
	got, err := newTestCSV(t).ReadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func Test_CSVReadAll_HeaderOnlyIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestCSV(t)
	require.NoError(t, s.Init(ctx))

	got, err := s.ReadAll(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func Test_CSVReadAll_ShouldKeepMalformedRowsVerbatim(t *testing.T) {
	s := newTestCSV(t)
	content := "Date,Category,Amount\r\n" +
		"10-01-2024,Food,abc\r\n" +
		"\r\n" +
		"11-01-2024,Food\r\n" +
		"not-a-date,Other,5\r\n" +
		"12-01-2024,Shopping,7,extra\r\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), filePerm))

	got, err := s.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []expense.Record{
		{"10-01-2024", "Food", "abc"},
		{"11-01-2024", "Food"},
		{"not-a-date", "Other", "5"},
		{"12-01-2024", "Shopping", "7", "extra"},
	}, got)
}

func Test_CSVReadAll_DirectoryShouldFailWithEmptyRows(t *testing.T) {
	s := NewCSVStorage(t.TempDir())

	got, err := s.ReadAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read expenses")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func Test_ReadRecords_ShouldReturnRowsReadBeforeFailure(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader("Date,Category,Amount\n01-01-2024,Food,10\n02-01-2024,Transport,5\n"),
		iotest.ErrReader(assert.AnError),
	)

	got, err := readRecords(r)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []expense.Record{
		{"01-01-2024", "Food", "10"},
		{"02-01-2024", "Transport", "5"},
	}, got)
}
