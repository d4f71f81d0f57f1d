package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type storeMock struct {
	mock.Mock
}

func (m *storeMock) Init(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *storeMock) Append(ctx context.Context, rec expense.Record) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *storeMock) ReadAll(ctx context.Context) ([]expense.Record, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]expense.Record)
	return records, args.Error(1)
}

func newCSVLedger(t *testing.T) *Ledger {
	t.Helper()
	l := New(storage.NewCSVStorage(filepath.Join(t.TempDir(), "expenses.csv")))
	require.NoError(t, l.Initialize(context.Background()))
	return l
}

func Test_Ledger_RoundTrip(t *testing.T) {
	ctx := context.Background()
	l := newCSVLedger(t)

	require.NoError(t, l.Append(ctx, "05-03-2024", "Food", "250.50"))

	got, err := l.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []expense.Record{{"05-03-2024", "Food", "250.50"}}, got)
}

func Test_Ledger_Aggregates(t *testing.T) {
	ctx := context.Background()
	l := newCSVLedger(t)
	require.NoError(t, l.Append(ctx, "01-01-2024", "Food", "100"))
	require.NoError(t, l.Append(ctx, "15-01-2024", "Food", "50"))
	require.NoError(t, l.Append(ctx, "02-02-2024", "Transport", "30"))

	assert.Equal(t, 180.0, l.TotalAmount(ctx))
	assert.Equal(t, map[string]float64{"Food": 150, "Transport": 30}, l.SummaryByCategory(ctx))
	assert.Equal(t, map[string]float64{"Jan 2024": 150, "Feb 2024": 30}, l.SummaryByMonth(ctx))
}

func Test_Ledger_EmptyStore(t *testing.T) {
	ctx := context.Background()
	l := newCSVLedger(t)

	got, err := l.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0.0, l.TotalAmount(ctx))
	assert.Empty(t, l.SummaryByCategory(ctx))
	assert.Empty(t, l.SummaryByMonth(ctx))
}

func Test_Ledger_Recent(t *testing.T) {
	ctx := context.Background()
	l := New(storage.NewInMemStorage(
		expense.NewRecord("01-01-2024", "Food", "1"),
		expense.NewRecord("02-01-2024", "Food", "2"),
		expense.NewRecord("03-01-2024", "Food", "3"),
	))

	assert.Len(t, l.Recent(ctx, 0), 3)
	assert.Len(t, l.Recent(ctx, 10), 3)
	assert.Equal(t, []expense.Record{
		{"02-01-2024", "Food", "2"},
		{"03-01-2024", "Food", "3"},
	}, l.Recent(ctx, 2))
}

func Test_Ledger_InitializeFailure(t *testing.T) {
	ctx := context.Background()
	s := &storeMock{}
	s.On("Init", ctx).Return(assert.AnError)

	err := New(s).Initialize(ctx)

	assert.ErrorIs(t, err, assert.AnError)
	s.AssertExpectations(t)
}

func Test_Ledger_AppendFailure(t *testing.T) {
	ctx := context.Background()
	s := &storeMock{}
	s.On("Append", ctx, expense.NewRecord("01-01-2024", "Food", "1")).Return(assert.AnError)

	err := New(s).Append(ctx, "01-01-2024", "Food", "1")

	assert.ErrorIs(t, err, assert.AnError)
	s.AssertExpectations(t)
}

func Test_Ledger_ReadFailureShouldAggregatePartialRows(t *testing.T) {
	ctx := context.Background()
	s := &storeMock{}
	partial := []expense.Record{{"01-01-2024", "Food", "100"}}
	s.On("ReadAll", ctx).Return(partial, assert.AnError)
	l := New(s)

	got, err := l.ReadAll(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, partial, got)

	assert.Equal(t, 100.0, l.TotalAmount(ctx))
	assert.Equal(t, map[string]float64{"Food": 100}, l.SummaryByCategory(ctx))
}

func Test_Ledger_ReadFailureWithoutRowsIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := &storeMock{}
	s.On("ReadAll", ctx).Return(nil, assert.AnError)

	got, err := New(s).ReadAll(ctx)

	assert.Error(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func Test_Filter_ShouldKeepRowsSince(t *testing.T) {
	records := []expense.Record{
		{"31-12-2023", "Food", "1"},
		{"01-01-2024", "Food", "2"},
		{"not-a-date", "Food", "3"},
		{"15-01-2024", "Food", "4"},
	}

	assert.Equal(t, records, Filter(records, time.Time{}))
	assert.Equal(t, []expense.Record{
		{"01-01-2024", "Food", "2"},
		{"15-01-2024", "Food", "4"},
	}, Filter(records, time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)))
}

func Test_Ledger_AppendShouldStayQuietAtInfoLevel(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.InfoLevel)
	defer logger.Replace(zap.New(core))()
	l := newCSVLedger(t)

	require.NoError(t, l.Append(ctx, "01-01-2024", "Food", "1"))

	assert.Zero(t, logs.Len())
}

func Test_Ledger_AppendShouldLogAtDebugLevel(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.DebugLevel)
	defer logger.Replace(zap.New(core))()
	l := newCSVLedger(t)

	require.NoError(t, l.Append(ctx, "01-01-2024", "Food", "1"))

	entries := logs.FilterMessage("expense added").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "Food", entries[0].ContextMap()["category"])
}

func Test_Ledger_SkippedRowsShouldNotGrowAcrossSummaries(t *testing.T) {
	ctx := context.Background()
	l := New(storage.NewInMemStorage(
		expense.NewRecord("01-01-2024", "Food", "abc"),
		expense.NewRecord("not-a-date", "Food", "2"),
		expense.Record{"03-01-2024", "Food"},
		expense.NewRecord("04-01-2024", "Food", "4"),
	))

	for i := 0; i < 3; i++ {
		l.Summary(ctx)

		assert.Equal(t, 1.0, testutil.ToFloat64(skippedRows.WithLabelValues("amount")))
		assert.Equal(t, 1.0, testutil.ToFloat64(skippedRows.WithLabelValues("date")))
		assert.Equal(t, 1.0, testutil.ToFloat64(skippedRows.WithLabelValues("short")))
	}
}
