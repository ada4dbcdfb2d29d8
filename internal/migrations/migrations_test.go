package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(MigrationFiles, ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.Equal(t, ups, downs)
}

func TestMigrationFiles_CreateSalesTable(t *testing.T) {
	data, err := fs.ReadFile(MigrationFiles, "000001_create_sales.up.sql")
	require.NoError(t, err)

	sql := string(data)
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS sales")
	for _, col := range []string{"location_id", "created_at", "total", "payment_method", "items", "payment_breakdown"} {
		require.Contains(t, sql, col)
	}
}

func TestLatestVersion(t *testing.T) {
	v, err := LatestVersion()
	require.NoError(t, err)
	require.Equal(t, uint(1), v)
}
