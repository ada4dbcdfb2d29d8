package aggregation

import (
	"github.com/aevon-lab/pos-analytics/internal/core/clock"
	"github.com/shopspring/decimal"
)

// Ticket statistic operators.
const (
	OpCount = "count"
	OpSum   = "sum"
	OpMin   = "min"
	OpMax   = "max"
)

// UnknownPaymentLabel keys sales that carry no payment method.
const UnknownPaymentLabel = "Unknown"

// UncategorizedLabel keys line items without a category snapshot.
const UncategorizedLabel = "Uncategorized"

// Totals is the headline summary of a record set.
type Totals struct {
	Count     int             `json:"count"`
	Revenue   decimal.Decimal `json:"revenue"`
	ItemCount int             `json:"item_count"`
}

// Bucket is one group of a breakdown.
type Bucket struct {
	Key       string          `json:"key"`
	Revenue   decimal.Decimal `json:"revenue"`
	Count     int             `json:"count"`
	ItemCount int             `json:"item_count"`
}

// ProductRank is one product group summed across line items.
type ProductRank struct {
	// Key is the grouping identity: ProductID, or ProductName when the id is empty.
	Key         string          `json:"key"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// SortKey selects the ranking metric.
type SortKey string

const (
	SortByQuantity SortKey = "quantity"
	SortByRevenue  SortKey = "revenue"
)

// Order selects the ranking direction. Ascending is the low-rotation view.
type Order string

const (
	OrderDesc Order = "desc"
	OrderAsc  Order = "asc"
)

// RankOptions controls RankProducts. Zero values mean quantity, desc, unlimited.
type RankOptions struct {
	Limit  int
	SortBy SortKey
	Order  Order
}

// ShiftBucket is one trading shift with its share of the shift total.
type ShiftBucket struct {
	Shift   clock.Shift     `json:"shift"`
	Revenue decimal.Decimal `json:"revenue"`
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

// ShiftReport holds the four reporting shifts in display order.
type ShiftReport struct {
	Buckets []ShiftBucket   `json:"buckets"`
	Total   decimal.Decimal `json:"total"`
}

// WeekdayBucket is one ISO weekday of a weekly report.
type WeekdayBucket struct {
	Weekday clock.ISOWeekday `json:"weekday"`
	Bucket
}

// DailyEntry is one business day of a daily series.
type DailyEntry struct {
	Day        clock.DayKey            `json:"day"`
	Revenue    decimal.Decimal         `json:"revenue"`
	Count      int                     `json:"count"`
	ByLocation map[int]decimal.Decimal `json:"by_location"`
}

// LocationBucket summarizes one point of sale.
type LocationBucket struct {
	LocationID int `json:"location_id"`
	Totals
}

// TicketStats describes the distribution of ticket totals.
type TicketStats struct {
	Count   int             `json:"count"`
	Sum     decimal.Decimal `json:"sum"`
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
	Average decimal.Decimal `json:"average"`
}
