package commission

import (
	"fmt"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/shopspring/decimal"
)

// Table maps a payment method to the fraction of the amount retained by the
// processor. Methods missing from the table, including an unset method, pay
// no commission.
type Table map[v1.PaymentMethod]decimal.Decimal

// DefaultTable returns the reference processor rates.
func DefaultTable() Table {
	return Table{
		v1.PaymentCash:     decimal.Zero,
		v1.PaymentTransfer: decimal.Zero,
		v1.PaymentQR:       decimal.RequireFromString("0.008"),
		v1.PaymentDebit:    decimal.RequireFromString("0.015"),
		v1.PaymentCredit:   decimal.RequireFromString("0.035"),
	}
}

// NewTable builds a table from configured rates keyed by method name.
// Every rate must lie in [0, 1). A rate for "mixed" is rejected: mixed
// sales are charged per breakdown part.
func NewTable(rates map[string]float64) (Table, error) {
	t := make(Table, len(rates))
	for name, rate := range rates {
		method := v1.PaymentMethod(name)
		if !method.Valid() {
			return nil, fmt.Errorf("commission: unknown payment method %q", name)
		}
		if method == v1.PaymentMixed {
			return nil, fmt.Errorf("commission: mixed has no rate of its own")
		}
		if rate < 0 || rate >= 1 {
			return nil, fmt.Errorf("commission: rate %v for %q out of range [0,1)", rate, name)
		}
		t[method] = decimal.NewFromFloat(rate)
	}
	return t, nil
}

// Rate returns the commission rate for method.
func (t Table) Rate(method v1.PaymentMethod) decimal.Decimal {
	if r, ok := t[method]; ok {
		return r
	}
	return decimal.Zero
}

// Commission returns the amount retained on a sale. Mixed sales apply each
// part's own rate to its own amount.
func (t Table) Commission(s *v1.Sale) decimal.Decimal {
	if s.PaymentMethod == v1.PaymentMixed && len(s.PaymentBreakdown) > 0 {
		fee := decimal.Zero
		for _, part := range s.PaymentBreakdown {
			fee = fee.Add(part.Amount.Mul(t.Rate(part.Method)))
		}
		return fee
	}
	return s.Total.Mul(t.Rate(s.PaymentMethod))
}

// Net returns what the business keeps from a sale.
func (t Table) Net(s *v1.Sale) decimal.Decimal {
	return s.Total.Sub(t.Commission(s))
}

// NetRevenue sums Net over sales.
func (t Table) NetRevenue(sales []*v1.Sale) decimal.Decimal {
	net := decimal.Zero
	for _, s := range sales {
		net = net.Add(t.Net(s))
	}
	return net
}

// TotalCommission sums Commission over sales.
func (t Table) TotalCommission(sales []*v1.Sale) decimal.Decimal {
	fee := decimal.Zero
	for _, s := range sales {
		fee = fee.Add(t.Commission(s))
	}
	return fee
}
