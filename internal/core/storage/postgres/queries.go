package postgres

// SQL for the sales ledger. LIMIT NULL means no limit in PostgreSQL.

const salesTable = "sales"

var saleColumns = []string{
	"id", "location_id", "created_at", "total",
	"payment_method", "items", "payment_breakdown",
}

const (
	// querySaveSale returns no row (sql.ErrNoRows) when the id is taken.
	querySaveSale = `
		INSERT INTO sales (
			id, location_id, created_at, total,
			payment_method, items, payment_breakdown
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	queryFetchAll = `
		SELECT
			id, location_id, created_at, total,
			payment_method, items, payment_breakdown
		FROM sales
		ORDER BY created_at DESC, id ASC
		LIMIT $1
	`

	queryFetchByLocation = `
		SELECT
			id, location_id, created_at, total,
			payment_method, items, payment_breakdown
		FROM sales
		WHERE location_id = $1
		ORDER BY created_at DESC, id ASC
		LIMIT $2
	`

	queryDeleteSale = `DELETE FROM sales WHERE id = $1`

	querySalesTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'sales'
		)
	`
)
