package reports

import (
	"context"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type testConfig struct {
	symbol string
	months int
}

func (c testConfig) CurrencySymbol() string { return c.symbol }
func (c testConfig) RecentMonths() int      { return c.months }

type cacheMock struct {
	mock.Mock
}

func (m *cacheMock) GetReport(option string) (string, error) {
	args := m.Called(option)
	return args.String(0), args.Error(1)
}

func (m *cacheMock) CacheReport(option string, report string) error {
	return m.Called(option, report).Error(0)
}

func (m *cacheMock) InvalidateCache(options []string) error {
	return m.Called(options).Error(0)
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
}

func newTestLedger() *ledger.Ledger {
	return ledger.New(storage.NewInMemStorage(
		expense.NewRecord("10-12-2023", "Food", "100"),
		expense.NewRecord("15-01-2024", "Transport", "50"),
		expense.NewRecord("02-03-2024", "Food", "30"),
		expense.NewRecord("18-03-2024", "Health", "20"),
		expense.NewRecord("19-03-2024", "Food", "abc"),
		expense.NewRecord("not-a-date", "Other", "5"),
	))
}

func Test_OnGenerateReport_ShouldReturnAllTimeReport(t *testing.T) {
	g := NewGenerator(testConfig{}, newTestLedger(), WithClock(fixedClock))

	report, err := g.GenerateReport(context.Background(), PeriodAll)

	require.NoError(t, err)
	assert.Equal(t, 205.0, report.Total)
	assert.Equal(t, 5, report.Count)
	assert.Equal(t, []Entry{
		{Label: "Food", Amount: 130, Share: 130.0 / 205 * 100},
		{Label: "Transport", Amount: 50, Share: 50.0 / 205 * 100},
		{Label: "Health", Amount: 20, Share: 20.0 / 205 * 100},
		{Label: "Other", Amount: 5, Share: 5.0 / 205 * 100},
	}, report.Categories)
	assert.Equal(t, []Entry{
		{Label: "Mar 2024", Amount: 50},
		{Label: "Jan 2024", Amount: 50},
		{Label: "Dec 2023", Amount: 100},
	}, report.Months)
	assert.Equal(t, 4, report.MonthWindow)
}

func Test_OnGenerateReport_ShouldFilterByPeriod(t *testing.T) {
	ctx := context.Background()
	g := NewGenerator(testConfig{}, newTestLedger(), WithClock(fixedClock))

	for period, total := range map[string]float64{
		PeriodWeek:  20,
		PeriodMonth: 50,
		PeriodYear:  100,
	} {
		report, err := g.GenerateReport(ctx, period)
		require.NoError(t, err, period)
		assert.Equal(t, total, report.Total, period)
		assert.Equal(t, period, report.Period)
	}
}

func Test_OnGenerateReport_ShouldRejectUnknownPeriod(t *testing.T) {
	g := NewGenerator(testConfig{}, newTestLedger())

	_, err := g.GenerateReport(context.Background(), "decade")

	assert.Error(t, err)
}

func Test_OnRenderReport_ShouldServeFromCache(t *testing.T) {
	cache := &cacheMock{}
	cache.On("GetReport", "report:month").Return("cached", nil)
	g := NewGenerator(testConfig{}, newTestLedger(), WithCache(cache))

	text, err := g.RenderReport(context.Background(), PeriodMonth)

	require.NoError(t, err)
	assert.Equal(t, "cached", text)
	cache.AssertExpectations(t)
}

func Test_OnRenderReport_ShouldCacheOnMiss(t *testing.T) {
	cache := &cacheMock{}
	cache.On("GetReport", "report:all").Return("", memcache.ErrCacheMiss)
	cache.On("CacheReport", "report:all", mock.AnythingOfType("string")).Return(nil)
	g := NewGenerator(testConfig{}, newTestLedger(), WithCache(cache), WithClock(fixedClock))

	text, err := g.RenderReport(context.Background(), PeriodAll)

	require.NoError(t, err)
	assert.Contains(t, text, "Total Expenses: ₹205.00")
	cache.AssertExpectations(t)
}

func Test_OnInvalidate_ShouldDropEveryPeriod(t *testing.T) {
	cache := &cacheMock{}
	cache.On("InvalidateCache", []string{"report:all", "report:month", "report:week", "report:year"}).Return(nil)
	g := NewGenerator(testConfig{}, newTestLedger(), WithCache(cache))

	g.Invalidate()

	cache.AssertExpectations(t)
}
