package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// Summary holds every aggregate of a set of rows, computed in one pass.
type Summary struct {
	Total      float64
	ByCategory map[string]float64
	ByMonth    map[string]float64

	// Counted is the number of rows included in Total.
	Counted int
	// ShortRows lack a field; BadAmounts have an amount that is not a number.
	// Both are left out of every aggregate.
	ShortRows  int
	BadAmounts int
	// BadDates have a valid amount but a date that does not parse; they
	// count towards Total and ByCategory only.
	BadDates int
}

func Summarize(records []expense.Record) Summary {
	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	byMonth := make(map[string]decimal.Decimal)
	res := Summary{}

	for _, rec := range records {
		if !rec.Complete() {
			res.ShortRows++
			continue
		}
		amount, err := expense.ParseAmount(rec.Amount())
		if err != nil {
			res.BadAmounts++
			continue
		}
		total = total.Add(amount)
		res.Counted++
		byCategory[rec.Category()] = byCategory[rec.Category()].Add(amount)

		date, err := expense.ParseDate(rec.Date())
		if err != nil {
			res.BadDates++
			continue
		}
		month := date.Format(expense.MonthLayout)
		byMonth[month] = byMonth[month].Add(amount)
	}

	res.Total = total.InexactFloat64()
	res.ByCategory = toFloats(byCategory)
	res.ByMonth = toFloats(byMonth)
	return res
}

func Total(records []expense.Record) float64 {
	return Summarize(records).Total
}

func ByCategory(records []expense.Record) map[string]float64 {
	return Summarize(records).ByCategory
}

func ByMonth(records []expense.Record) map[string]float64 {
	return Summarize(records).ByMonth
}

// Filter keeps the rows dated on or after since. Rows whose date does not
// parse are dropped. A zero since keeps every row.
func Filter(records []expense.Record, since time.Time) []expense.Record {
	if since.IsZero() {
		return records
	}
	res := make([]expense.Record, 0, len(records))
	for _, rec := range records {
		date, err := expense.ParseDate(rec.Date())
		if err != nil {
			continue
		}
		if !date.Before(dateOnly(since)) {
			res = append(res, rec)
		}
	}
	return res
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toFloats(m map[string]decimal.Decimal) map[string]float64 {
	res := make(map[string]float64, len(m))
	for k, v := range m {
		res[k] = v.InexactFloat64()
	}
	return res
}
