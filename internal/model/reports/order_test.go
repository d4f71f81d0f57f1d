package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_SortByAmount_DescendingWithLabelTieBreak(t *testing.T) {
	got := SortByAmount(map[string]float64{
		"Transport": 30,
		"Food":      150,
		"Health":    30,
	})

	assert.Equal(t, []Entry{
		{Label: "Food", Amount: 150},
		{Label: "Health", Amount: 30},
		{Label: "Transport", Amount: 30},
	}, got)
}

func Test_RecentMonths_NewestFirstAcrossYears(t *testing.T) {
	got := RecentMonths(map[string]float64{
		"Nov 2023": 1,
		"Dec 2023": 2,
		"Jan 2024": 3,
		"Feb 2024": 4,
		"Oct 2023": 5,
		"bogus":    6,
	}, 4)

	assert.Equal(t, []Entry{
		{Label: "Feb 2024", Amount: 4},
		{Label: "Jan 2024", Amount: 3},
		{Label: "Dec 2023", Amount: 2},
		{Label: "Nov 2023", Amount: 1},
	}, got)
	assert.Len(t, RecentMonths(map[string]float64{"Jan 2024": 1, "Feb 2024": 1}, 0), 2)
}

func Test_FormatReport_MatchesSummaryLayout(t *testing.T) {
	f := NewFormatter("")
	report := &Report{
		Total: 180,
		Categories: withShares(SortByAmount(map[string]float64{
			"Food":      150,
			"Transport": 30,
		}), 180),
		Months: RecentMonths(map[string]float64{
			"Jan 2024": 150,
			"Feb 2024": 30,
		}, 4),
		MonthWindow: 4,
	}

	want := "===== SUMMARY =====\n" +
		"Total Expenses: ₹180.00\n" +
		"\n" +
		"Category Breakdown:\n" +
		"----------------------------------------\n" +
		"Food            ₹150.00 (83.3%)\n" +
		"Transport       ₹30.00 (16.7%)\n" +
		"\n" +
		"Monthly Trend (Last 4 months):\n" +
		"----------------------------------------\n" +
		"Feb 2024   ₹30.00\n" +
		"Jan 2024   ₹150.00\n"
	assert.Equal(t, want, f.FormatReport(report))
}

func Test_FormatExpenses_SkipsUnparsableAmounts(t *testing.T) {
	f := NewFormatter("$")

	got := f.FormatExpenses([]expense.Record{
		{"05-03-2024", "Food", "1234.5"},
		{"06-03-2024", "Food", "abc"},
		{"07-03-2024", "Food"},
	})

	assert.Equal(t, "===== EXPENSES =====\n"+
		"Date        | Category      | Amount\n"+
		"----------------------------------------\n"+
		"05-03-2024  | Food          |  $1,234.50\n", got)
}

func Test_Money_GroupsThousands(t *testing.T) {
	assert.Equal(t, "₹1,234,567.89", NewFormatter("").Money(1234567.891))
	assert.Equal(t, "₹0.00", NewFormatter("").Money(0))
}
