package aggregation

import (
	"github.com/shopspring/decimal"
)

// Aggregator reduces ticket totals to one statistic. Initial seeds the
// statistic from the first ticket and Apply folds in every later one.
type Aggregator interface {
	Initial(incoming decimal.Decimal) decimal.Decimal
	Apply(current, incoming decimal.Decimal) decimal.Decimal
}

// reducer adapts a pair of funcs to Aggregator.
type reducer struct {
	seed func(total decimal.Decimal) decimal.Decimal
	step func(acc, total decimal.Decimal) decimal.Decimal
}

func (r reducer) Initial(total decimal.Decimal) decimal.Decimal    { return r.seed(total) }
func (r reducer) Apply(acc, total decimal.Decimal) decimal.Decimal { return r.step(acc, total) }

var one = decimal.NewFromInt(1)

func identity(total decimal.Decimal) decimal.Decimal { return total }

// Operators holds the ticket statistics computed by TicketStatsOf.
var Operators = map[string]Aggregator{
	OpCount: reducer{
		seed: func(decimal.Decimal) decimal.Decimal { return one },
		step: func(acc, _ decimal.Decimal) decimal.Decimal { return acc.Add(one) },
	},
	OpSum: reducer{
		seed: identity,
		step: decimal.Decimal.Add,
	},
	OpMin: reducer{
		seed: identity,
		step: func(acc, total decimal.Decimal) decimal.Decimal { return decimal.Min(acc, total) },
	},
	OpMax: reducer{
		seed: identity,
		step: func(acc, total decimal.Decimal) decimal.Decimal { return decimal.Max(acc, total) },
	},
}
