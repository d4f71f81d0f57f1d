package expense

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingField    = errors.New("missing field")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrUnknownCategory = errors.New("unknown category")
)

// maxAmountExponent bounds the decimal exponent of an amount in both
// directions. Adding decimals whose exponents differ by millions never
// finishes.
const maxAmountExponent = 64

const (
	missingFieldMessage    = "All fields are required"
	invalidAmountMessage   = "Please enter a valid amount"
	invalidDateMessage     = "Please enter a valid date in format DD-MM-YYYY"
	unknownCategoryMessage = "Invalid category. Please choose from: "
)

func ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, errors.Wrap(ErrInvalidDate, err.Error())
	}
	return t, nil
}

// ParseAmount accepts a finite decimal within float64 range whose exponent
// is at most maxAmountExponent away from zero. Surrounding blanks are ignored.
func ParseAmount(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, errors.Wrap(ErrInvalidAmount, err.Error())
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, errors.Wrapf(ErrInvalidAmount, "exponent %d out of range", exp)
	}
	if math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Zero, errors.Wrap(ErrInvalidAmount, "out of float64 range")
	}
	return d, nil
}

func ValidateDate(text string) bool {
	_, err := ParseDate(text)
	return err == nil
}

func ValidateAmount(text string) bool {
	_, err := ParseAmount(text)
	return err == nil
}

// Validate checks the inputs of a new record before it is appended.
// The ledger itself never calls it: rows already on disk are trusted as-is.
func Validate(date, category, amount string) error {
	if strings.TrimSpace(date) == "" ||
		strings.TrimSpace(category) == "" ||
		strings.TrimSpace(amount) == "" {
		return ErrMissingField
	}
	if !IsKnownCategory(category) {
		return errors.Wrapf(ErrUnknownCategory, "category %q", category)
	}
	if !ValidateAmount(amount) {
		return errors.Wrapf(ErrInvalidAmount, "amount %q", amount)
	}
	if !ValidateDate(date) {
		return errors.Wrapf(ErrInvalidDate, "date %q", date)
	}
	return nil
}

// Message maps a validation error to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingField):
		return missingFieldMessage
	case errors.Is(err, ErrUnknownCategory):
		return unknownCategoryMessage + strings.Join(Categories, ", ")
	case errors.Is(err, ErrInvalidAmount):
		return invalidAmountMessage
	case errors.Is(err, ErrInvalidDate):
		return invalidDateMessage
	}
	return err.Error()
}
