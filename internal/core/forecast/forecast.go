package forecast

import (
	"time"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/aevon-lab/pos-analytics/internal/core/clock"
	"github.com/aevon-lab/pos-analytics/internal/signals"
	"github.com/shopspring/decimal"
)

// Segment is a forecast slice of the trading day.
type Segment string

const (
	Morning   Segment = "morning"
	Afternoon Segment = "afternoon"
	Night     Segment = "night"
)

// Segments lists the forecast segments in display order.
var Segments = []Segment{Morning, Afternoon, Night}

// Status is the qualitative outlook of a segment.
type Status string

const (
	StatusLow    Status = "low"
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
	StatusPeak   Status = "peak"
)

var statusLevels = []Status{StatusLow, StatusNormal, StatusHigh, StatusPeak}

// growthStep is the growth, in percent, that moves every segment one level.
const growthStep = 15

// inflectionDays are the paydays and billing cycle dates of the month.
var inflectionDays = map[int]bool{1: true, 7: true, 8: true, 14: true, 15: true, 21: true, 22: true, 30: true}

// IsInflectionDay reports whether day of month is a payday or billing date.
func IsInflectionDay(day int) bool {
	return inflectionDays[day]
}

// Input is everything a forecast depends on.
type Input struct {
	// History is the location's sales. Sales of other locations are ignored
	// when LocationID is set.
	History    []*v1.Sale
	Now        time.Time
	LocationID int
	Weather    signals.Weather
	Flow       signals.Flow
}

// SegmentOutlook is the status of one segment.
type SegmentOutlook struct {
	Segment Segment `json:"segment"`
	Status  Status  `json:"status"`
}

// Result is the outlook for the business day containing Input.Now.
type Result struct {
	LocationID     int              `json:"location_id"`
	Day            clock.DayKey     `json:"day"`
	Weather        signals.Weather  `json:"weather"`
	Flow           signals.Flow     `json:"flow"`
	Inflection     bool             `json:"inflection_day"`
	HistoryDays    int              `json:"history_days"`
	SimilarDays    int              `json:"similar_days"`
	GlobalAverage  decimal.Decimal  `json:"global_average"`
	ContextAverage decimal.Decimal  `json:"context_average"`
	GrowthPercent  int64            `json:"growth_percent"`
	Segments       []SegmentOutlook `json:"segments"`
	Tip            string           `json:"tip"`
}

// Forecaster produces heuristic outlooks. It keeps no state between calls.
type Forecaster struct {
	clock *clock.Clock
	tips  *TipTable
}

// New returns a Forecaster. A nil tips table uses the built-in tips.
func New(c *clock.Clock, tips *TipTable) *Forecaster {
	if tips == nil {
		tips = DefaultTips()
	}
	return &Forecaster{clock: c, tips: tips}
}

// Forecast computes the outlook. Weather and flow tags that are missing or
// unknown are treated as the neutral ones.
func (f *Forecaster) Forecast(in Input) Result {
	weather := in.Weather
	if !weather.Valid() {
		weather = signals.NeutralWeather
	}
	flow := in.Flow
	if !flow.Valid() {
		flow = signals.NeutralFlow
	}

	today := f.clock.BusinessDay(in.Now)
	// Calendar date of now. Before the cutoff it is one day past the business day.
	calendar := f.clock.Local(in.Now)

	daily := f.closedDayTotals(in.History, in.LocationID, today)
	global := average(daily, nil)

	similar := 0
	contextAvg := average(daily, func(day time.Time) bool {
		match := day.Weekday() == calendar.Weekday() && day.Month() == calendar.Month()
		if match {
			similar++
		}
		return match
	})
	if similar == 0 {
		contextAvg = global
	}

	growth := growthPercent(contextAvg, global)
	inflection := IsInflectionDay(calendar.Day())

	return Result{
		LocationID:     in.LocationID,
		Day:            today,
		Weather:        weather,
		Flow:           flow,
		Inflection:     inflection,
		HistoryDays:    len(daily),
		SimilarDays:    similar,
		GlobalAverage:  global.Round(2),
		ContextAverage: contextAvg.Round(2),
		GrowthPercent:  growth,
		Segments:       segmentOutlook(flow, weather, inflection, growth),
		Tip:            f.tips.Select(flow, weather, inflection),
	}
}

// closedDayTotals sums revenue per closed business day. The business day of
// now is still trading and is left out, as is anything after it.
func (f *Forecaster) closedDayTotals(history []*v1.Sale, locationID int, today clock.DayKey) map[time.Time]decimal.Decimal {
	totals := make(map[time.Time]decimal.Decimal)
	for _, s := range history {
		if locationID != 0 && s.LocationID != locationID {
			continue
		}
		key := f.clock.BusinessDay(s.CreatedAt)
		if key >= today {
			continue
		}
		day, err := key.Time(f.clock.Location())
		if err != nil {
			continue
		}
		totals[day] = totals[day].Add(s.Total)
	}
	return totals
}

// average is the mean of the day totals accepted by keep (all when nil).
func average(daily map[time.Time]decimal.Decimal, keep func(time.Time) bool) decimal.Decimal {
	sum := decimal.Zero
	n := 0
	for day, total := range daily {
		if keep != nil && !keep(day) {
			continue
		}
		sum = sum.Add(total)
		n++
	}
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n)))
}

// growthPercent is round((contextAvg/global - 1) * 100), or 0 without a baseline.
func growthPercent(contextAvg, global decimal.Decimal) int64 {
	if !global.IsPositive() {
		return 0
	}
	return contextAvg.Div(global).Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
