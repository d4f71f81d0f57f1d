package expense

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_ValidateDate(t *testing.T) {
	for _, tc := range []struct {
		text string
		ok   bool
	}{
		{"05-03-2024", true},
		{"29-02-2024", true},
		{"29-02-2023", false},
		{"31-04-2024", false},
		{"2024-03-05", false},
		{"5-3-2024", false},
		{"not-a-date", false},
		{"", false},
	} {
		assert.Equal(t, tc.ok, ValidateDate(tc.text), tc.text)
	}
}

func Test_ValidateAmount(t *testing.T) {
	for _, tc := range []struct {
		text string
		ok   bool
	}{
		{"250.50", true},
		{"100", true},
		{"-12.5", true},
		{" 42 ", true},
		{"1e3", true},
		{"1e64", true},
		{"1e-64", true},
		{"1e65", false},
		{"1e-65", false},
		{"1e999999999", false},
		{"1e-999999999", false},
		{"abc", false},
		{"12,50", false},
		{"NaN", false},
		{"", false},
	} {
		assert.Equal(t, tc.ok, ValidateAmount(tc.text), tc.text)
	}
}

func Test_ParseAmount_ShouldRejectExtremeExponent(t *testing.T) {
	_, err := ParseAmount("1e-999999999")

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func Test_Validate_ShouldReportFirstViolatedConstraint(t *testing.T) {
	assert.NoError(t, Validate("05-03-2024", Food, "250.50"))

	err := Validate("", Food, "10")
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Equal(t, "All fields are required", Message(err))

	err = Validate("05-03-2024", "Groceries", "10")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
	assert.Contains(t, Message(err), "Food, Transport, Entertainment")

	err = Validate("05-03-2024", Food, "ten")
	assert.True(t, errors.Is(err, ErrInvalidAmount))
	assert.Equal(t, "Please enter a valid amount", Message(err))

	err = Validate("2024-03-05", Food, "10")
	assert.True(t, errors.Is(err, ErrInvalidDate))
	assert.Equal(t, "Please enter a valid date in format DD-MM-YYYY", Message(err))
}

func Test_Record_Accessors(t *testing.T) {
	r := NewRecord("05-03-2024", Food, "250.50")
	assert.True(t, r.Complete())
	assert.Equal(t, "05-03-2024", r.Date())
	assert.Equal(t, Food, r.Category())
	assert.Equal(t, "250.50", r.Amount())
	assert.Equal(t, "05-03-2024,Food,250.50", r.String())

	short := Record{"05-03-2024", Food}
	assert.False(t, short.Complete())
	assert.Equal(t, "", short.Amount())
}

func Test_IsKnownCategory(t *testing.T) {
	assert.True(t, IsKnownCategory("Health"))
	assert.False(t, IsKnownCategory("health"))
	assert.False(t, IsKnownCategory(""))
}
