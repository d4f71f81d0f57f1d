package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/ledger"
)

const (
	PeriodAll   = ""
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var reportFilters = map[string]func(*now.Now) time.Time{
	PeriodAll:   func(*now.Now) time.Time { return time.Time{} },
	PeriodWeek:  (*now.Now).BeginningOfWeek,
	PeriodMonth: (*now.Now).BeginningOfMonth,
	PeriodYear:  (*now.Now).BeginningOfYear,
}

type Report struct {
	Period     string
	Total      float64
	Count      int
	Categories []Entry
	Months     []Entry

	// MonthWindow is the most months Months may hold.
	MonthWindow int
}

type expensesReader interface {
	ReadAll(ctx context.Context) ([]expense.Record, error)
}

type reportCache interface {
	GetReport(option string) (string, error)
	CacheReport(option string, report string) error
	InvalidateCache(options []string) error
}

type config interface {
	CurrencySymbol() string
	RecentMonths() int
}

type Generator struct {
	ledger       expensesReader
	cache        reportCache
	formatter    *Formatter
	recentMonths int
	clock        func() time.Time
}

type Option func(*Generator)

func WithCache(cache reportCache) Option {
	return func(g *Generator) { g.cache = cache }
}

func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

func NewGenerator(config config, ledger expensesReader, opts ...Option) *Generator {
	g := &Generator{
		ledger:       ledger,
		formatter:    NewFormatter(config.CurrencySymbol()),
		recentMonths: config.RecentMonths(),
		clock:        time.Now,
	}
	if g.recentMonths <= 0 {
		g.recentMonths = defaultRecentMonths
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Formatter() *Formatter {
	return g.formatter
}

func (g *Generator) GenerateReport(ctx context.Context, period string) (*Report, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()
	span.SetTag("period", period)

	logger.Info("GenerateReport - start", zap.String("period", period))
	defer logger.Info("GenerateReport - end")

	filter, ok := reportFilters[period]
	if !ok {
		return nil, errors.Wrap(
			fmt.Errorf("report period %s is not supported", period),
			"generate report",
		)
	}

	// partial rows are still reported; the ledger logs the read error
	records, _ := g.ledger.ReadAll(ctx)
	records = ledger.Filter(records, filter(now.With(g.clock())))

	s := ledger.Summarize(records)
	return &Report{
		Period:     period,
		Total:      s.Total,
		Count:      s.Counted,
		Categories: withShares(SortByAmount(s.ByCategory), s.Total),
		Months:     RecentMonths(s.ByMonth, g.recentMonths),

		MonthWindow: g.recentMonths,
	}, nil
}

// RenderReport returns the formatted report, served from the cache when
// one is configured and holds it.
func (g *Generator) RenderReport(ctx context.Context, period string) (string, error) {
	key := cacheKey(period)
	if g.cache != nil {
		if text, err := g.cache.GetReport(key); err == nil {
			return text, nil
		}
	}

	report, err := g.GenerateReport(ctx, period)
	if err != nil {
		return "", err
	}
	text := g.formatter.FormatReport(report)

	if g.cache != nil {
		if err = g.cache.CacheReport(key, text); err != nil {
			logger.Warn("failed to cache report", zap.Error(err), zap.String("period", period))
		}
	}
	return text, nil
}

// Invalidate drops cached reports; call it after every append.
func (g *Generator) Invalidate() {
	if g.cache == nil {
		return
	}
	keys := make([]string, 0, len(reportFilters))
	for _, period := range ReportPeriods() {
		keys = append(keys, cacheKey(period))
	}
	if err := g.cache.InvalidateCache(keys); err != nil {
		logger.Error("failed to invalidate report cache", zap.Error(err))
	}
}

func cacheKey(period string) string {
	if period == PeriodAll {
		return "report:all"
	}
	return "report:" + period
}

func ReportPeriods() []string {
	res := make([]string, 0, len(reportFilters))
	for k := range reportFilters {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
