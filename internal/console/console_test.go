package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type testConfig struct{}

func (testConfig) CurrencySymbol() string { return "" }
func (testConfig) RecentMonths() int      { return 4 }

func newTestConsole(input string, store *storage.InMemStorage) (*Console, *bytes.Buffer) {
	l := ledger.New(store)
	out := &bytes.Buffer{}
	c := New(strings.NewReader(input), out, l, reports.NewGenerator(testConfig{}, l))
	c.clock = func() time.Time {
		return time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
	}
	return c, out
}

func Test_OnAddExpense_ShouldRepromptUntilValid(t *testing.T) {
	store := storage.NewInMemStorage()
	c, out := newTestConsole("1\nPets\nFood\nten\n12.5\n2024-03-01\n\n4\n", store)

	require.NoError(t, c.Run(context.Background()))

	records, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []expense.Record{{"20-03-2024", "Food", "12.5"}}, records)
	assert.Contains(t, out.String(), "Invalid category. Please choose from: Food, Transport")
	assert.Contains(t, out.String(), invalidAmountMessage)
	assert.Contains(t, out.String(), invalidDateMessage)
	assert.Contains(t, out.String(), "Date (DD-MM-YYYY) [Today: 20-03-2024]: ")
	assert.Contains(t, out.String(), "Expense added: Food - ₹12.50")
	assert.True(t, strings.HasSuffix(out.String(), goodbyeMessage+"\n"))
}

func Test_OnViewExpenses_ShouldShowAllOnBadLimit(t *testing.T) {
	store := storage.NewInMemStorage(
		expense.NewRecord("01-01-2024", "Food", "10"),
		expense.NewRecord("02-01-2024", "Health", "20"),
	)
	c, out := newTestConsole("2\nsome\n4\n", store)

	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), invalidLimitMessage)
	assert.Contains(t, out.String(), "01-01-2024  | Food")
	assert.Contains(t, out.String(), "02-01-2024  | Health")
}

func Test_OnViewExpenses_ShouldShowLastN(t *testing.T) {
	store := storage.NewInMemStorage(
		expense.NewRecord("01-01-2024", "Food", "10"),
		expense.NewRecord("02-01-2024", "Health", "20"),
	)
	c, out := newTestConsole("2\n1\n4\n", store)

	require.NoError(t, c.Run(context.Background()))

	assert.NotContains(t, out.String(), "01-01-2024  | Food")
	assert.Contains(t, out.String(), "02-01-2024  | Health")
}

func Test_OnViewSummary_ShouldPrintReport(t *testing.T) {
	store := storage.NewInMemStorage(
		expense.NewRecord("15-01-2024", "Food", "150"),
		expense.NewRecord("03-02-2024", "Transport", "30"),
	)
	c, out := newTestConsole("3\n4\n", store)

	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), "Total Expenses: ₹180.00")
	assert.Contains(t, out.String(), "Food            ₹150.00 (83.3%)")
	assert.Contains(t, out.String(), "Feb 2024   ₹30.00")
}

func Test_OnUnknownChoice_ShouldComplainAndStopAtEOF(t *testing.T) {
	c, out := newTestConsole("9\n", storage.NewInMemStorage())

	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), invalidChoiceMessage)
	assert.NotContains(t, out.String(), goodbyeMessage)
}
