package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
)

// marshalSaleJSON encodes the JSONB columns of a sale.
// An empty breakdown is stored as SQL NULL rather than JSON "null".
func marshalSaleJSON(sale *v1.Sale) (itemsJSON, breakdownJSON []byte, err error) {
	itemsJSON, err = json.Marshal(sale.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal items: %w", err)
	}

	if len(sale.PaymentBreakdown) > 0 {
		breakdownJSON, err = json.Marshal(sale.PaymentBreakdown)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal payment breakdown: %w", err)
		}
	}

	return itemsJSON, breakdownJSON, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanSaleRow scans one row selected with saleColumns.
func scanSaleRow(row scanner) (*v1.Sale, error) {
	var sale v1.Sale
	var method string
	var itemsJSON, breakdownJSON []byte

	err := row.Scan(
		&sale.ID,
		&sale.LocationID,
		&sale.CreatedAt,
		&sale.Total,
		&method,
		&itemsJSON,
		&breakdownJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale row: %w", err)
	}
	sale.PaymentMethod = v1.PaymentMethod(method)
	sale.CreatedAt = sale.CreatedAt.UTC()

	if err := json.Unmarshal(itemsJSON, &sale.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items of sale %s: %w", sale.ID, err)
	}
	if len(breakdownJSON) > 0 {
		if err := json.Unmarshal(breakdownJSON, &sale.PaymentBreakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payment breakdown of sale %s: %w", sale.ID, err)
		}
	}

	return &sale, nil
}

func scanSales(rows *sql.Rows) ([]*v1.Sale, error) {
	defer rows.Close()

	sales := make([]*v1.Sale, 0)
	for rows.Next() {
		sale, err := scanSaleRow(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}
	return sales, nil
}

// limitArg maps limit <= 0 to SQL NULL.
func limitArg(limit int) sql.NullInt64 {
	if limit <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(limit), Valid: true}
}
