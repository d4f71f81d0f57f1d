package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const helloMessage = "Hello! I am Expense Tracker bot 🤖\n" +
	"/expense <category> <amount> [DD-MM-YYYY] - add an expense\n" +
	"/list [n] - show recent expenses\n" +
	"/report [week|month|year] - show a summary\n" +
	"/categories - list categories"

const (
	dontUnderstandMessage = "I don't understand you :("
	loveToTalkMessage     = "I would love to talk about it more!"
	noExpensesMessage     = "You have no expenses yet"
	reportQueuedMessage   = "Your report is on its way"
	showingAllMessage     = "Invalid input. Showing all expenses."

	incorrectUsageMessage    = "Usage: /expense <category> <amount> [DD-MM-YYYY]"
	unknownPeriodMessage     = "Unknown period. Use week, month or year"
	cannotSaveExpenseMessage = "Can't save your expense atm. Try later"
	cannotGetReportMessage   = "Can't get your report atm. Try later"
)

const (
	startCommand      = "/start"
	categoriesCommand = "/categories"
	expenseCommand    = "/expense"
	listCommand       = "/list"
	reportCommand     = "/report"
)

const defaultListSize = 10

//go:generate minimock -i expenseLedger -o ./mock/expense_ledger_mock.go -n ExpenseLedgerMock
type expenseLedger interface {
	Append(ctx context.Context, date, category, amount string) error
	Recent(ctx context.Context, n int) []expense.Record
}

//go:generate minimock -i reportGenerator -o ./mock/report_generator_mock.go -n ReportGeneratorMock
type reportGenerator interface {
	RenderReport(ctx context.Context, period string) (string, error)
	Invalidate()
	Formatter() *reports.Formatter
}

//go:generate minimock -i reportRequester -o ./mock/report_requester_mock.go -n ReportRequesterMock
type reportRequester interface {
	RequestReport(ctx context.Context, chatID int64, period string) error
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	ledger      expenseLedger
	generator   reportGenerator
	requester   reportRequester
	clock       func() time.Time
}

func newHandler(ledger expenseLedger, generator reportGenerator, requester reportRequester) *HandlerService {
	res := &HandlerService{
		ledger:    ledger,
		generator: generator,
		requester: requester,
		clock:     time.Now,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[categoriesCommand] = s.handleCategories
	m[expenseCommand] = s.handleExpense
	m[listCommand] = s.handleList
	m[reportCommand] = s.handleReport

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string, _ int64) (string, error) {
	return "Available categories: " + strings.Join(expense.Categories, ", "), nil
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 || len(args) > 3 {
		return incorrectUsageMessage, nil
	}
	category, amount, date := args[0], args[1], today(s.clock)
	if len(args) == 3 {
		date = args[2]
	}

	if err := expense.Validate(date, category, amount); err != nil {
		logger.Debug("rejected expense", zap.Error(err), zap.Int64("user", userID))
		return expense.Message(err), nil
	}

	if err := s.ledger.Append(ctx, date, category, amount); err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle expense")
	}
	s.generator.Invalidate()

	value, _ := expense.ParseAmount(amount)
	return fmt.Sprintf("Expense added: %s - %s", category,
		s.generator.Formatter().Money(value.InexactFloat64())), nil
}

func (s *HandlerService) handleList(ctx context.Context, arg string, _ int64) (string, error) {
	limit, notice := defaultListSize, ""
	if arg = strings.TrimSpace(arg); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			limit, notice = 0, showingAllMessage+"\n\n"
		} else {
			limit = n
		}
	}

	records := s.ledger.Recent(ctx, limit)
	if len(records) == 0 {
		return noExpensesMessage, nil
	}
	return notice + s.generator.Formatter().FormatExpenses(records), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, userID int64) (string, error) {
	period := strings.ToLower(strings.TrimSpace(arg))
	if !isReportPeriod(period) {
		return unknownPeriodMessage, nil
	}

	if s.requester != nil {
		if err := s.requester.RequestReport(ctx, userID, period); err != nil {
			return cannotGetReportMessage, errors.Wrap(err, "handle report")
		}
		return reportQueuedMessage, nil
	}

	text, err := s.generator.RenderReport(ctx, period)
	if err != nil {
		return cannotGetReportMessage, errors.Wrap(err, "handle report")
	}
	return text, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func isReportPeriod(period string) bool {
	for _, p := range reports.ReportPeriods() {
		if p == period {
			return true
		}
	}
	return false
}
