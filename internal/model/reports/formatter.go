package reports

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const (
	defaultCurrencySymbol = "₹"
	ruler                 = "----------------------------------------"
)

// Formatter renders amounts with a currency symbol, two decimals and
// thousands separators.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = defaultCurrencySymbol
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

func (f *Formatter) Money(amount float64) string {
	return f.symbol + f.printer.Sprintf("%.2f", amount)
}

func (f *Formatter) FormatReport(r *Report) string {
	var b strings.Builder

	b.WriteString("===== SUMMARY =====\n")
	b.WriteString("Total Expenses: " + f.Money(r.Total) + "\n")

	b.WriteString("\nCategory Breakdown:\n" + ruler + "\n")
	for _, e := range r.Categories {
		b.WriteString(f.printer.Sprintf("%-15s %s (%.1f%%)\n", e.Label, f.Money(e.Amount), e.Share))
	}

	b.WriteString(f.printer.Sprintf("\nMonthly Trend (Last %d months):\n", r.MonthWindow))
	b.WriteString(ruler + "\n")
	for _, e := range r.Months {
		b.WriteString(f.printer.Sprintf("%-10s %s\n", e.Label, f.Money(e.Amount)))
	}
	return b.String()
}

// FormatExpenses renders rows as a table. Rows without a numeric amount
// are not shown.
func (f *Formatter) FormatExpenses(records []expense.Record) string {
	var b strings.Builder

	b.WriteString("===== EXPENSES =====\n")
	b.WriteString("Date        | Category      | Amount\n")
	b.WriteString(ruler + "\n")
	for _, rec := range records {
		if !rec.Complete() {
			continue
		}
		amount, err := expense.ParseAmount(rec.Amount())
		if err != nil {
			continue
		}
		b.WriteString(f.printer.Sprintf("%-11s | %-13s | %10s\n",
			rec.Date(), rec.Category(), f.Money(amount.InexactFloat64())))
	}
	return b.String()
}
