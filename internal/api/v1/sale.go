package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidSale is wrapped by every error Validate returns.
var ErrInvalidSale = errors.New("invalid sale")

// PaymentMethod is the tender used to settle a sale.
// The empty value means the method was not recorded.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentQR       PaymentMethod = "qr"
	PaymentDebit    PaymentMethod = "debit"
	PaymentCredit   PaymentMethod = "credit"
	PaymentMixed    PaymentMethod = "mixed"
)

// PaymentMethods lists every known method in display order.
var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentTransfer,
	PaymentQR,
	PaymentDebit,
	PaymentCredit,
	PaymentMixed,
}

// Valid reports whether m is one of the known methods.
func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// Sale is a single checkout. It is written once by the register and never
// mutated afterwards; every dashboard figure is folded from these records.
type Sale struct {
	// ID is opaque. The ingestion endpoint assigns a UUID when it is empty.
	ID string `json:"id"`

	// LocationID identifies the point of sale that rang up the ticket.
	LocationID int `json:"location_id"`

	// CreatedAt is the UTC instant of checkout. Business-day attribution
	// happens later, through the clock package.
	CreatedAt time.Time `json:"created_at"`

	// Total must equal the sum of line subtotals when the sale is created.
	Total decimal.Decimal `json:"total"`

	Items []LineItem `json:"items"`

	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`

	// PaymentBreakdown is only present for mixed payments: two parts whose
	// amounts add up to Total.
	PaymentBreakdown []PaymentPart `json:"payment_breakdown,omitempty"`
}

// LineItem is one product line on a ticket. Name and category are snapshots
// taken at checkout so later catalog edits do not rewrite history.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PaymentPart is one leg of a mixed payment.
type PaymentPart struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// ItemCount returns the number of units sold on the ticket.
func (s *Sale) ItemCount() int {
	n := 0
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

// SaleRequest is the body of a sale submitted by a register. It differs from
// Sale only in line subtotals, which may be omitted.
type SaleRequest struct {
	ID               string            `json:"id"`
	LocationID       int               `json:"location_id"`
	CreatedAt        time.Time         `json:"created_at"`
	Total            decimal.Decimal   `json:"total"`
	Items            []LineItemRequest `json:"items"`
	PaymentMethod    PaymentMethod     `json:"payment_method,omitempty"`
	PaymentBreakdown []PaymentPart     `json:"payment_breakdown,omitempty"`
}

// LineItemRequest is a LineItem whose subtotal is null when absent.
type LineItemRequest struct {
	ProductID   string              `json:"product_id"`
	ProductName string              `json:"product_name"`
	Category    string              `json:"category,omitempty"`
	Quantity    int                 `json:"quantity"`
	UnitPrice   decimal.Decimal     `json:"unit_price"`
	Subtotal    decimal.NullDecimal `json:"subtotal"`
}

// Sale converts the request. A line without a subtotal gets quantity x
// unit price; a given subtotal, zero included, is kept as sent.
func (r *SaleRequest) Sale() *Sale {
	items := make([]LineItem, len(r.Items))
	for i, in := range r.Items {
		subtotal := in.Subtotal.Decimal
		if !in.Subtotal.Valid {
			subtotal = in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		}
		items[i] = LineItem{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Category:    in.Category,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Subtotal:    subtotal,
		}
	}
	return &Sale{
		ID:               r.ID,
		LocationID:       r.LocationID,
		CreatedAt:        r.CreatedAt,
		Total:            r.Total,
		Items:            items,
		PaymentMethod:    r.PaymentMethod,
		PaymentBreakdown: r.PaymentBreakdown,
	}
}

// Validate checks the creation-time invariants of a sale.
func (s *Sale) Validate() error {
	if s.LocationID <= 0 {
		return invalidSalef("location_id must be > 0")
	}
	if s.CreatedAt.IsZero() {
		return invalidSalef("created_at is required")
	}
	if len(s.Items) == 0 {
		return invalidSalef("items must not be empty")
	}
	if s.Total.IsNegative() {
		return invalidSalef("total must be >= 0")
	}

	sum := decimal.Zero
	for i, item := range s.Items {
		if item.ProductID == "" && item.ProductName == "" {
			return invalidSalef("items[%d]: product_id or product_name is required", i)
		}
		if item.Quantity <= 0 {
			return invalidSalef("items[%d]: quantity must be > 0", i)
		}
		if item.UnitPrice.IsNegative() {
			return invalidSalef("items[%d]: unit_price must be >= 0", i)
		}
		if item.Subtotal.IsNegative() {
			return invalidSalef("items[%d]: subtotal must be >= 0", i)
		}
		sum = sum.Add(item.Subtotal)
	}
	if !sum.Equal(s.Total) {
		return invalidSalef("total %s does not match sum of subtotals %s", s.Total, sum)
	}

	if s.PaymentMethod != "" && !s.PaymentMethod.Valid() {
		return invalidSalef("unsupported payment_method %q", s.PaymentMethod)
	}
	return s.validateBreakdown()
}

func (s *Sale) validateBreakdown() error {
	if s.PaymentMethod != PaymentMixed {
		if len(s.PaymentBreakdown) > 0 {
			return invalidSalef("payment_breakdown is only allowed for mixed payments")
		}
		return nil
	}

	if len(s.PaymentBreakdown) != 2 {
		return invalidSalef("mixed payment requires exactly 2 breakdown parts, got %d", len(s.PaymentBreakdown))
	}
	sum := decimal.Zero
	for i, part := range s.PaymentBreakdown {
		if !part.Method.Valid() || part.Method == PaymentMixed {
			return invalidSalef("payment_breakdown[%d]: unsupported method %q", i, part.Method)
		}
		if part.Amount.IsNegative() {
			return invalidSalef("payment_breakdown[%d]: amount must be >= 0", i)
		}
		sum = sum.Add(part.Amount)
	}
	if !sum.Equal(s.Total) {
		return invalidSalef("payment_breakdown sums to %s, total is %s", sum, s.Total)
	}
	return nil
}

func invalidSalef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSale, fmt.Sprintf(format, args...))
}
