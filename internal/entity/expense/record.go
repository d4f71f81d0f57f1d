package expense

import "strings"

const (
	Food          = "Food"
	Transport     = "Transport"
	Entertainment = "Entertainment"
	Housing       = "Housing"
	Utilities     = "Utilities"
	Shopping      = "Shopping"
	Health        = "Health"
	Other         = "Other"
)

var Categories = []string{Food, Transport, Entertainment, Housing, Utilities, Shopping, Health, Other}

// Header is the first row of every ledger file.
var Header = []string{"Date", "Category", "Amount"}

const (
	DateLayout  = "02-01-2006"
	MonthLayout = "Jan 2006"

	FieldCount = 3
)

// Record is a ledger row as stored: date, category, amount.
// Rows read back from a file may carry fewer or more fields.
type Record []string

func NewRecord(date, category, amount string) Record {
	return Record{date, category, amount}
}

func (r Record) field(i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

func (r Record) Date() string {
	return r.field(0)
}

func (r Record) Category() string {
	return r.field(1)
}

func (r Record) Amount() string {
	return r.field(2)
}

// Complete reports whether the row has all three fields.
func (r Record) Complete() bool {
	return len(r) >= FieldCount
}

func (r Record) String() string {
	return strings.Join(r, ",")
}

func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
