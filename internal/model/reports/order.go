package reports

import (
	"sort"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

const defaultRecentMonths = 4

type Entry struct {
	Label  string
	Amount float64
	// Share is the percentage of the report total, 0 when the total is not positive.
	Share float64
}

// SortByAmount orders categories by amount, largest first. Equal amounts
// are ordered by label.
func SortByAmount(m map[string]float64) []Entry {
	res := make([]Entry, 0, len(m))
	for label, amount := range m {
		res = append(res, Entry{Label: label, Amount: amount})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Amount != res[j].Amount {
			return res[i].Amount > res[j].Amount
		}
		return res[i].Label < res[j].Label
	})
	return res
}

// RecentMonths orders "Jan 2006" labels newest first and keeps at most n
// of them; n <= 0 keeps all. Labels that do not parse are dropped.
func RecentMonths(m map[string]float64, n int) []Entry {
	type month struct {
		Entry
		at time.Time
	}
	months := make([]month, 0, len(m))
	for label, amount := range m {
		at, err := time.Parse(expense.MonthLayout, label)
		if err != nil {
			continue
		}
		months = append(months, month{Entry{Label: label, Amount: amount}, at})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].at.After(months[j].at)
	})

	if n > 0 && len(months) > n {
		months = months[:n]
	}
	res := make([]Entry, 0, len(months))
	for _, m := range months {
		res = append(res, m.Entry)
	}
	return res
}

func withShares(entries []Entry, total float64) []Entry {
	for i := range entries {
		if total > 0 {
			entries[i].Share = entries[i].Amount / total * 100
		}
	}
	return entries
}
