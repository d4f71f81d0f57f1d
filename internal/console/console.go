// Package console is the interactive text menu over the ledger.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	menu = "\n===== EXPENSE TRACKER =====\n" +
		"1. Add Expense\n" +
		"2. View Expenses\n" +
		"3. View Summary\n" +
		"4. Exit\n"

	choicePrompt   = "Enter your choice (1-4): "
	categoryPrompt = "Category: "
	amountPrompt   = "Amount: "
	datePrompt     = "Date (DD-MM-YYYY) [Today: %s]: "
	limitPrompt    = "How many recent expenses to show? (leave blank for all): "

	invalidChoiceMessage = "Invalid choice. Please try again."
	invalidAmountMessage = "Invalid amount. Please enter a valid number."
	invalidDateMessage   = "Invalid date format. Please use DD-MM-YYYY."
	invalidLimitMessage  = "Invalid input. Showing all expenses."
	goodbyeMessage       = "Thank you for using Expense Tracker. Goodbye!"
)

type expenseLedger interface {
	Append(ctx context.Context, date, category, amount string) error
	Recent(ctx context.Context, n int) []expense.Record
}

type reportRenderer interface {
	RenderReport(ctx context.Context, period string) (string, error)
	Formatter() *reports.Formatter
}

type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	ledger    expenseLedger
	generator reportRenderer
	clock     func() time.Time
}

func New(in io.Reader, out io.Writer, ledger expenseLedger, generator reportRenderer) *Console {
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		ledger:    ledger,
		generator: generator,
		clock:     time.Now,
	}
}

// Run shows the menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.print(menu)
		choice, ok := c.prompt(choicePrompt)
		if !ok {
			return c.in.Err()
		}

		switch choice {
		case "1":
			if !c.addExpense(ctx) {
				return c.in.Err()
			}
		case "2":
			if !c.viewExpenses(ctx) {
				return c.in.Err()
			}
		case "3":
			c.viewSummary(ctx)
		case "4":
			c.println(goodbyeMessage)
			return nil
		default:
			c.println(invalidChoiceMessage)
		}
	}
}

func (c *Console) addExpense(ctx context.Context) bool {
	c.println("\nAdd New Expense:")
	c.println("Available categories: " + strings.Join(expense.Categories, ", "))

	category, ok := c.promptUntil(categoryPrompt, expense.IsKnownCategory,
		"Invalid category. Please choose from: "+strings.Join(expense.Categories, ", "))
	if !ok {
		return false
	}
	amount, ok := c.promptUntil(amountPrompt, expense.ValidateAmount, invalidAmountMessage)
	if !ok {
		return false
	}

	today := c.clock().Format(expense.DateLayout)
	date, ok := c.promptUntil(fmt.Sprintf(datePrompt, today), func(s string) bool {
		return s == "" || expense.ValidateDate(s)
	}, invalidDateMessage)
	if !ok {
		return false
	}
	if date == "" {
		date = today
	}

	if err := c.ledger.Append(ctx, date, category, amount); err != nil {
		c.println("Error: Could not add expense: " + err.Error())
		return true
	}
	value, _ := expense.ParseAmount(amount)
	c.println(fmt.Sprintf("Expense added: %s - %s", category,
		c.generator.Formatter().Money(value.InexactFloat64())))
	return true
}

func (c *Console) viewExpenses(ctx context.Context) bool {
	text, ok := c.prompt(limitPrompt)
	if !ok {
		return false
	}
	limit := 0
	if text != "" {
		n, err := strconv.Atoi(text)
		if err != nil {
			c.println(invalidLimitMessage)
		} else {
			limit = n
		}
	}

	c.print("\n" + c.generator.Formatter().FormatExpenses(c.ledger.Recent(ctx, limit)))
	return true
}

func (c *Console) viewSummary(ctx context.Context) {
	text, err := c.generator.RenderReport(ctx, reports.PeriodAll)
	if err != nil {
		c.println("Error: Could not build summary: " + err.Error())
		return
	}
	c.print("\n" + text)
}

// promptUntil repeats the prompt until valid accepts the answer.
func (c *Console) promptUntil(prompt string, valid func(string) bool, complaint string) (string, bool) {
	for {
		text, ok := c.prompt(prompt)
		if !ok {
			return "", false
		}
		if valid(text) {
			return text, true
		}
		c.println(complaint)
	}
}

func (c *Console) prompt(prompt string) (string, bool) {
	c.print(prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) print(text string) {
	_, _ = io.WriteString(c.out, text)
}

func (c *Console) println(text string) {
	c.print(text + "\n")
}
