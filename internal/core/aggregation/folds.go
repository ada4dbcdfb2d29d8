package aggregation

import (
	"sort"
	"time"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/aevon-lab/pos-analytics/internal/core/clock"
	"github.com/shopspring/decimal"
)

// All folds in this file are pure and total: nil or empty input yields a
// zero-valued result. None of them depend on input order except the
// first-seen tie-breaking noted on RankProducts and ByPaymentMethod.

// Summarize returns count, revenue and units sold.
func Summarize(sales []*v1.Sale) Totals {
	t := Totals{Revenue: decimal.Zero}
	for _, s := range sales {
		t.Count++
		t.Revenue = t.Revenue.Add(s.Total)
		t.ItemCount += s.ItemCount()
	}
	return t
}

// FilterByLocation returns the sales rung up at locationID.
func FilterByLocation(sales []*v1.Sale, locationID int) []*v1.Sale {
	out := make([]*v1.Sale, 0, len(sales))
	for _, s := range sales {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out
}

// LocationTotals summarizes a single point of sale.
func LocationTotals(sales []*v1.Sale, locationID int) Totals {
	return Summarize(FilterByLocation(sales, locationID))
}

// ByLocation summarizes every location present, ordered by location id.
func ByLocation(sales []*v1.Sale) []LocationBucket {
	idx := make(map[int]int)
	out := []LocationBucket{}
	for _, s := range sales {
		i, ok := idx[s.LocationID]
		if !ok {
			i = len(out)
			idx[s.LocationID] = i
			out = append(out, LocationBucket{LocationID: s.LocationID, Totals: Totals{Revenue: decimal.Zero}})
		}
		out[i].Count++
		out[i].Revenue = out[i].Revenue.Add(s.Total)
		out[i].ItemCount += s.ItemCount()
	}
	sort.Slice(out, func(a, b int) bool { return out[a].LocationID < out[b].LocationID })
	return out
}

// ByPaymentMethod groups sale totals by tender, highest revenue first.
// Mixed sales stay under "mixed"; their breakdown only matters for commissions.
func ByPaymentMethod(sales []*v1.Sale) []Bucket {
	g := newGrouper()
	for _, s := range sales {
		key := string(s.PaymentMethod)
		if key == "" {
			key = UnknownPaymentLabel
		}
		b := g.get(key)
		b.Revenue = b.Revenue.Add(s.Total)
		b.Count++
		b.ItemCount += s.ItemCount()
	}
	return g.sortedByRevenue()
}

// ByCategory groups line subtotals by category snapshot, highest revenue first.
// Count is the number of lines in the group.
func ByCategory(sales []*v1.Sale) []Bucket {
	g := newGrouper()
	for _, s := range sales {
		for _, item := range s.Items {
			key := item.Category
			if key == "" {
				key = UncategorizedLabel
			}
			b := g.get(key)
			b.Revenue = b.Revenue.Add(item.Subtotal)
			b.Count++
			b.ItemCount += item.Quantity
		}
	}
	return g.sortedByRevenue()
}

// ByShift accumulates sales into the four reporting shifts. Sales in the
// closed window are dropped and do not count toward the percentage base.
func ByShift(c *clock.Clock, sales []*v1.Sale) ShiftReport {
	pos := make(map[clock.Shift]int, len(clock.Shifts))
	report := ShiftReport{Total: decimal.Zero, Buckets: make([]ShiftBucket, len(clock.Shifts))}
	for i, sh := range clock.Shifts {
		pos[sh] = i
		report.Buckets[i] = ShiftBucket{Shift: sh, Revenue: decimal.Zero, Percent: decimal.Zero}
	}

	for _, s := range sales {
		i, ok := pos[c.ShiftOf(s.CreatedAt)]
		if !ok {
			continue
		}
		report.Buckets[i].Revenue = report.Buckets[i].Revenue.Add(s.Total)
		report.Buckets[i].Count++
		report.Total = report.Total.Add(s.Total)
	}

	if report.Total.IsZero() {
		return report
	}
	hundred := decimal.NewFromInt(100)
	for i := range report.Buckets {
		report.Buckets[i].Percent = report.Buckets[i].Revenue.Div(report.Total).Mul(hundred).Round(2)
	}
	return report
}

// ByWeekday always returns seven buckets, Monday through Sunday.
func ByWeekday(c *clock.Clock, sales []*v1.Sale) []WeekdayBucket {
	days := clock.Weekdays()
	out := make([]WeekdayBucket, len(days))
	for i, d := range days {
		out[i] = WeekdayBucket{Weekday: d, Bucket: Bucket{Key: d.String(), Revenue: decimal.Zero}}
	}
	for _, s := range sales {
		b := &out[int(c.Weekday(s.CreatedAt))-1]
		b.Revenue = b.Revenue.Add(s.Total)
		b.Count++
		b.ItemCount += s.ItemCount()
	}
	return out
}

// DailySeries returns one entry per business day that has at least one sale,
// within the trailing windowDays business days ending on the business day of
// now, oldest first. windowDays <= 0 keeps every day. Days without sales are
// not synthesized; see ZeroFill.
func DailySeries(c *clock.Clock, sales []*v1.Sale, now time.Time, windowDays int) []DailyEntry {
	var from, to clock.DayKey
	if windowDays > 0 {
		to = c.BusinessDay(now)
		from = c.AddDays(to, -(windowDays - 1))
	}

	byDay := make(map[clock.DayKey]*DailyEntry)
	for _, s := range sales {
		day := c.BusinessDay(s.CreatedAt)
		if windowDays > 0 && (day < from || day > to) {
			continue
		}
		e, ok := byDay[day]
		if !ok {
			e = &DailyEntry{Day: day, Revenue: decimal.Zero, ByLocation: make(map[int]decimal.Decimal)}
			byDay[day] = e
		}
		e.Revenue = e.Revenue.Add(s.Total)
		e.Count++
		e.ByLocation[s.LocationID] = e.ByLocation[s.LocationID].Add(s.Total)
	}

	out := make([]DailyEntry, 0, len(byDay))
	for _, e := range byDay {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// ZeroFill expands a daily series to every business day in [from, to],
// inserting empty entries for days without sales.
func ZeroFill(c *clock.Clock, series []DailyEntry, from, to clock.DayKey) []DailyEntry {
	have := make(map[clock.DayKey]DailyEntry, len(series))
	for _, e := range series {
		have[e.Day] = e
	}
	var out []DailyEntry
	for day := from; day <= to; day = c.AddDays(day, 1) {
		if e, ok := have[day]; ok {
			out = append(out, e)
			continue
		}
		out = append(out, DailyEntry{Day: day, Revenue: decimal.Zero, ByLocation: map[int]decimal.Decimal{}})
	}
	return out
}

// TicketStatsOf folds ticket totals through the operator registry.
func TicketStatsOf(sales []*v1.Sale) TicketStats {
	stats := TicketStats{Sum: decimal.Zero, Min: decimal.Zero, Max: decimal.Zero, Average: decimal.Zero}
	if len(sales) == 0 {
		return stats
	}

	values := make(map[string]decimal.Decimal, len(Operators))
	for i, s := range sales {
		for op, agg := range Operators {
			if i == 0 {
				values[op] = agg.Initial(s.Total)
				continue
			}
			values[op] = agg.Apply(values[op], s.Total)
		}
	}

	stats.Count = int(values[OpCount].IntPart())
	stats.Sum = values[OpSum]
	stats.Min = values[OpMin]
	stats.Max = values[OpMax]
	stats.Average = stats.Sum.Div(values[OpCount]).Round(2)
	return stats
}

// Latest returns up to n sales, newest first. n <= 0 returns all of them.
// The input slice is not reordered.
func Latest(sales []*v1.Sale, n int) []*v1.Sale {
	out := make([]*v1.Sale, len(sales))
	copy(out, sales)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// grouper keeps buckets in first-seen order so stable sorts break ties by it.
type grouper struct {
	idx     map[string]int
	buckets []Bucket
}

func newGrouper() *grouper {
	return &grouper{idx: make(map[string]int)}
}

func (g *grouper) get(key string) *Bucket {
	i, ok := g.idx[key]
	if !ok {
		i = len(g.buckets)
		g.idx[key] = i
		g.buckets = append(g.buckets, Bucket{Key: key, Revenue: decimal.Zero})
	}
	return &g.buckets[i]
}

func (g *grouper) sortedByRevenue() []Bucket {
	out := g.buckets
	if out == nil {
		out = []Bucket{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out
}
