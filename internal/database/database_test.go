package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/lunchtray/internal/catalog"
	"github.com/jask/lunchtray/internal/database/repository"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	require.NoError(t, RunMigrations(dbPath))

	db, err := Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	for _, table := range []string{"menu_items", "orders", "order_items"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}
}

func TestSeedCatalogRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db := testDB(t)

	def := catalog.Default()
	require.NoError(t, SeedCatalog(ctx, db, def))
	require.NoError(t, SeedCatalog(ctx, db, def))

	got, err := repository.NewMenuRepo(db).Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, got.Entrees, len(def.Entrees))
	require.Len(t, got.SideDishes, len(def.SideDishes))
	require.Len(t, got.Accompaniments, len(def.Accompaniments))
	for i, it := range def.Entrees {
		require.Equal(t, it.ID, got.Entrees[i].ID)
		require.Equal(t, it.Name, got.Entrees[i].Name)
		require.True(t, it.Price.Equal(got.Entrees[i].Price))
		require.Equal(t, catalog.CourseEntree, got.Entrees[i].Course)
	}
}

func TestSeedCatalogPrunesRemovedItems(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	require.NoError(t, SeedCatalog(ctx, db, catalog.Default()))

	small := catalog.Catalog{
		Entrees:        []catalog.MenuItem{{ID: catalog.ItemID(catalog.CourseEntree, "Soup"), Course: catalog.CourseEntree, Name: "Soup", Price: decimal.NewFromInt(3)}},
		SideDishes:     catalog.Default().SideDishes[:1],
		Accompaniments: catalog.Default().Accompaniments[:1],
	}
	require.NoError(t, SeedCatalog(ctx, db, small))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n))
	require.Equal(t, 3, n)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	boom := sql.ErrTxDone
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO orders(id, subtotal, tax, total, placed_at) VALUES ('x', '0', '0', '0', ?)`, Now())
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := repository.NewOrderRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
