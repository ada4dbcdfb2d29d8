package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/aevon-lab/pos-analytics/internal/core/aggregation"
	"github.com/aevon-lab/pos-analytics/internal/core/clock"
	"github.com/aevon-lab/pos-analytics/internal/core/commission"
	"github.com/aevon-lab/pos-analytics/internal/core/forecast"
	"github.com/aevon-lab/pos-analytics/internal/core/period"
	"github.com/aevon-lab/pos-analytics/internal/core/storage"
	"github.com/aevon-lab/pos-analytics/internal/signals"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// maxWeatherLookups bounds concurrent historical weather calls per request.
const maxWeatherLookups = 4

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid dashboard query")

// Options tunes list sizes and names.
type Options struct {
	TopLimit         int
	LocationTopLimit int
	LowRotationLimit int
	LatestLimit      int
	DailyWindowDays  int
	LocationNames    map[int]string
}

func (o Options) normalized() Options {
	if o.TopLimit <= 0 {
		o.TopLimit = 15
	}
	if o.LocationTopLimit <= 0 {
		o.LocationTopLimit = 10
	}
	if o.LowRotationLimit <= 0 {
		o.LowRotationLimit = 5
	}
	if o.LatestLimit <= 0 {
		o.LatestLimit = 10
	}
	if o.DailyWindowDays <= 0 {
		o.DailyWindowDays = 7
	}
	return o
}

// Service computes dashboards from a fresh ledger snapshot on every call.
type Service struct {
	ledger      storage.Ledger
	clock       *clock.Clock
	commissions commission.Table
	forecaster  *forecast.Forecaster
	weather     signals.WeatherProvider
	flow        signals.FlowProvider
	opts        Options
	nowFn       func() time.Time
}

// NewService wires the dashboard. weather and flow may be nil; their
// signals then stay neutral.
func NewService(
	ledger storage.Ledger,
	c *clock.Clock,
	commissions commission.Table,
	forecaster *forecast.Forecaster,
	weather signals.WeatherProvider,
	flow signals.FlowProvider,
	opts Options,
) *Service {
	if commissions == nil {
		commissions = commission.DefaultTable()
	}
	if forecaster == nil {
		forecaster = forecast.New(c, nil)
	}
	return &Service{
		ledger:      ledger,
		clock:       c,
		commissions: commissions,
		forecaster:  forecaster,
		weather:     weather,
		flow:        flow,
		opts:        opts.normalized(),
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// LocationName returns the display name of a location.
func (s *Service) LocationName(id int) string {
	if name, ok := s.opts.LocationNames[id]; ok {
		return name
	}
	return fmt.Sprintf("POS %d", id)
}

// Overview computes the dashboard for req.
func (s *Service) Overview(ctx context.Context, req OverviewRequest) (*Overview, error) {
	sel, err := period.ParseSelector(req.Range)
	if err != nil {
		return nil, invalidQueryf("%v", err)
	}
	if req.LocationID < 0 {
		return nil, invalidQueryf("location_id must be positive")
	}
	sortBy := aggregation.SortByQuantity
	if req.SortBy != "" {
		sortBy = aggregation.SortKey(req.SortBy)
		if !aggregation.ValidSortKey(sortBy) {
			return nil, invalidQueryf("invalid sort: %s (must be quantity or revenue)", req.SortBy)
		}
	}

	now := s.nowFn()
	rng, err := period.Resolve(s.clock, sel, now)
	if err != nil {
		return nil, invalidQueryf("%v", err)
	}

	filter := storage.Filter{
		LocationID: req.LocationID,
		Since:      s.snapshotSince(rng, now),
	}

	var (
		sales   []*v1.Sale
		flow    signals.Flow
		weather signals.Weather
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.ledger.FetchMatching(gctx, filter)
		if err != nil {
			return fmt.Errorf("fetch sales: %w", err)
		}
		sales = fetched
		return nil
	})
	g.Go(func() error {
		flow = signals.TouristFlowOrNeutral(gctx, s.flow)
		return nil
	})
	if req.LocationID != 0 {
		g.Go(func() error {
			weather = signals.CurrentConditionOrNeutral(gctx, s.weather, req.LocationID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cur, prev := rng.Split(sales)
	totals := aggregation.Summarize(cur)
	prevTotals := aggregation.Summarize(prev)
	net := s.commissions.NetRevenue(cur)
	prevNet := s.commissions.NetRevenue(prev)

	topLimit := s.opts.TopLimit
	if req.LocationID != 0 {
		topLimit = s.opts.LocationTopLimit
	}
	products := aggregation.GroupProducts(cur)

	out := &Overview{
		Range:          rng,
		LocationID:     req.LocationID,
		GeneratedAt:    now,
		Flow:           flow,
		Weather:        weather,
		Totals:         totals,
		PreviousTotals: prevTotals,
		NetRevenue:     net,
		Commission:     s.commissions.TotalCommission(cur),
		Deltas: Deltas{
			Revenue:    newDelta(totals.Revenue, prevTotals.Revenue),
			Count:      newDelta(decimal.NewFromInt(int64(totals.Count)), decimal.NewFromInt(int64(prevTotals.Count))),
			Items:      newDelta(decimal.NewFromInt(int64(totals.ItemCount)), decimal.NewFromInt(int64(prevTotals.ItemCount))),
			NetRevenue: newDelta(net, prevNet),
		},
		TopProducts: products.Rank(aggregation.RankOptions{Limit: topLimit, SortBy: sortBy, Order: aggregation.OrderDesc}),
		LowRotation: products.Rank(aggregation.RankOptions{Limit: s.opts.LowRotationLimit, SortBy: sortBy, Order: aggregation.OrderAsc}),
		Payments:    aggregation.ByPaymentMethod(cur),
		Shifts:      aggregation.ByShift(s.clock, cur),
		Weekdays:    aggregation.ByWeekday(s.clock, cur),
		Daily:       aggregation.DailySeries(s.clock, sales, now, s.opts.DailyWindowDays),
		Locations:   s.locationSummaries(cur),
		Categories:  aggregation.ByCategory(cur),
		Tickets:     aggregation.TicketStatsOf(cur),
		Latest:      aggregation.Latest(cur, s.opts.LatestLimit),
	}
	if req.LocationID != 0 {
		out.LocationName = s.LocationName(req.LocationID)
	}

	slog.Debug("[Dashboard] Overview computed",
		"range", sel,
		"location_id", req.LocationID,
		"fetched", len(sales),
		"current", len(cur),
		"previous", len(prev))
	return out, nil
}

// Forecast computes the outlook of the current business day for a location.
func (s *Service) Forecast(ctx context.Context, locationID int) (*ForecastView, error) {
	if locationID <= 0 {
		return nil, invalidQueryf("location_id must be positive")
	}

	var (
		history []*v1.Sale
		weather signals.Weather
		flow    signals.Flow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.ledger.FetchByLocation(gctx, locationID, 0)
		if err != nil {
			return fmt.Errorf("fetch location history: %w", err)
		}
		history = fetched
		return nil
	})
	g.Go(func() error {
		weather = signals.CurrentConditionOrNeutral(gctx, s.weather, locationID)
		return nil
	})
	g.Go(func() error {
		flow = signals.TouristFlowOrNeutral(gctx, s.flow)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := s.forecaster.Forecast(forecast.Input{
		History:    history,
		Now:        s.nowFn(),
		LocationID: locationID,
		Weather:    weather,
		Flow:       flow,
	})
	return &ForecastView{LocationName: s.LocationName(locationID), Result: result}, nil
}

// Daily returns the revenue series of the trailing days.
func (s *Service) Daily(ctx context.Context, req DailyRequest) (*DailySeries, error) {
	days := req.Days
	if days == 0 {
		days = s.opts.DailyWindowDays
	}
	if days < 0 || days > period.MaxDays {
		return nil, invalidQueryf("days must be between 1 and %d", period.MaxDays)
	}
	if req.LocationID < 0 {
		return nil, invalidQueryf("location_id must be positive")
	}
	if req.Weather && req.LocationID == 0 {
		return nil, invalidQueryf("weather annotations need a location_id")
	}

	now := s.nowFn()
	to := s.clock.BusinessDay(now)
	from := s.clock.AddDays(to, -(days - 1))
	since, err := s.clock.DayStart(from)
	if err != nil {
		return nil, fmt.Errorf("resolve daily window: %w", err)
	}

	sales, err := s.ledger.FetchMatching(ctx, storage.Filter{LocationID: req.LocationID, Since: since})
	if err != nil {
		return nil, fmt.Errorf("fetch sales: %w", err)
	}

	entries := aggregation.DailySeries(s.clock, sales, now, days)
	if req.ZeroFill {
		entries = aggregation.ZeroFill(s.clock, entries, from, to)
	}

	points := make([]DailyPoint, len(entries))
	for i, e := range entries {
		points[i] = DailyPoint{DailyEntry: e}
	}
	if req.Weather {
		s.annotateWeather(ctx, req.LocationID, to, points)
	}

	out := &DailySeries{
		Days:       days,
		From:       from,
		To:         to,
		LocationID: req.LocationID,
		Series:     points,
	}
	if req.LocationID != 0 {
		out.LocationName = s.LocationName(req.LocationID)
	}
	return out, nil
}

// annotateWeather fills the sky condition of every point. Lookups never
// fail the request; unavailable conditions are neutral.
func (s *Service) annotateWeather(ctx context.Context, locationID int, today clock.DayKey, points []DailyPoint) {
	sem := make(chan struct{}, maxWeatherLookups)
	var wg sync.WaitGroup

	for i := range points {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()
			if points[i].Day == today {
				points[i].Weather = signals.CurrentConditionOrNeutral(ctx, s.weather, locationID)
				return
			}
			day, err := points[i].Day.Time(s.clock.Location())
			if err != nil {
				points[i].Weather = signals.NeutralWeather
				return
			}
			points[i].Weather = signals.HistoricalConditionOrNeutral(ctx, s.weather, locationID, day)
		}()
	}
	wg.Wait()
}

func (s *Service) locationSummaries(sales []*v1.Sale) []LocationSummary {
	buckets := aggregation.ByLocation(sales)
	out := make([]LocationSummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, LocationSummary{
			LocationID: b.LocationID,
			Name:       s.LocationName(b.LocationID),
			Count:      b.Count,
			Revenue:    b.Revenue,
			ItemCount:  b.ItemCount,
			NetRevenue: s.commissions.NetRevenue(aggregation.FilterByLocation(sales, b.LocationID)),
		})
	}
	return out
}

// snapshotSince is the earliest instant any part of the overview reads:
// the comparison window or the daily series, whichever starts first.
// A zero time means no lower bound.
func (s *Service) snapshotSince(rng period.Range, now time.Time) time.Time {
	if rng.Current.Unbounded {
		return time.Time{}
	}

	since := rng.Current.Start
	if !rng.Previous.Empty && rng.Previous.Start.Before(since) {
		since = rng.Previous.Start
	}

	today := s.clock.BusinessDay(now)
	if dailyStart, err := s.clock.DayStart(s.clock.AddDays(today, -(s.opts.DailyWindowDays - 1))); err == nil && dailyStart.Before(since) {
		since = dailyStart
	}
	return since
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
