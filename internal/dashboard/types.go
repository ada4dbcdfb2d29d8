package dashboard

import (
	"time"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/aevon-lab/pos-analytics/internal/core/aggregation"
	"github.com/aevon-lab/pos-analytics/internal/core/clock"
	"github.com/aevon-lab/pos-analytics/internal/core/forecast"
	"github.com/aevon-lab/pos-analytics/internal/core/period"
	"github.com/aevon-lab/pos-analytics/internal/signals"
	"github.com/shopspring/decimal"
)

// OverviewRequest selects the dashboard to compute.
type OverviewRequest struct {
	Range      string // period selector, empty means today
	LocationID int    // 0 means the whole network
	SortBy     string // product ranking metric, empty means quantity
}

// DailyRequest selects a daily revenue series.
type DailyRequest struct {
	Days       int // 0 means the configured window
	LocationID int
	ZeroFill   bool
	Weather    bool // annotate days with the sky condition; needs LocationID
}

// Delta is a period-over-period change. Comparable is false when the
// previous period had nothing to compare against.
type Delta struct {
	Percent    decimal.Decimal `json:"percent"`
	Comparable bool            `json:"comparable"`
}

func newDelta(current, previous decimal.Decimal) Delta {
	pct, ok := period.Delta(current, previous)
	return Delta{Percent: pct, Comparable: ok}
}

type Deltas struct {
	Revenue    Delta `json:"revenue"`
	Count      Delta `json:"count"`
	Items      Delta `json:"items"`
	NetRevenue Delta `json:"net_revenue"`
}

// LocationSummary is one point of sale in the network breakdown.
type LocationSummary struct {
	LocationID int             `json:"location_id"`
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	Revenue    decimal.Decimal `json:"revenue"`
	ItemCount  int             `json:"item_count"`
	NetRevenue decimal.Decimal `json:"net_revenue"`
}

// Overview is the full dashboard for one range and scope.
type Overview struct {
	Range        period.Range    `json:"range"`
	LocationID   int             `json:"location_id,omitempty"`
	LocationName string          `json:"location_name,omitempty"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Flow         signals.Flow    `json:"flow"`
	Weather      signals.Weather `json:"weather,omitempty"`

	Totals         aggregation.Totals `json:"totals"`
	PreviousTotals aggregation.Totals `json:"previous_totals"`
	NetRevenue     decimal.Decimal    `json:"net_revenue"`
	Commission     decimal.Decimal    `json:"commission"`
	Deltas         Deltas             `json:"deltas"`

	TopProducts []aggregation.ProductRank   `json:"top_products"`
	LowRotation []aggregation.ProductRank   `json:"low_rotation"`
	Payments    []aggregation.Bucket        `json:"payments"`
	Shifts      aggregation.ShiftReport     `json:"shifts"`
	Weekdays    []aggregation.WeekdayBucket `json:"weekdays"`
	Daily       []aggregation.DailyEntry    `json:"daily"`
	Locations   []LocationSummary           `json:"locations"`
	Categories  []aggregation.Bucket        `json:"categories"`
	Tickets     aggregation.TicketStats     `json:"tickets"`
	Latest      []*v1.Sale                  `json:"latest_sales"`
}

// DailyPoint is a daily entry with an optional sky condition.
type DailyPoint struct {
	aggregation.DailyEntry
	Weather signals.Weather `json:"weather,omitempty"`
}

// DailySeries is the response of Daily.
type DailySeries struct {
	Days         int          `json:"days"`
	From         clock.DayKey `json:"from"`
	To           clock.DayKey `json:"to"`
	LocationID   int          `json:"location_id,omitempty"`
	LocationName string       `json:"location_name,omitempty"`
	Series       []DailyPoint `json:"series"`
}

// ForecastView is a forecast with the location's display name.
type ForecastView struct {
	LocationName string `json:"location_name"`
	forecast.Result
}
