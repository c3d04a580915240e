package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/lunchtray/internal/catalog"
	"github.com/jask/lunchtray/internal/database/repository"
)

// SeedCatalog makes the menu_items table match c. It is idempotent and safe
// to run on every startup; items no longer on the menu are removed.
func SeedCatalog(ctx context.Context, db *sql.DB, c catalog.Catalog) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewMenuRepo(tx)
		items := c.All()
		keep := make([]string, 0, len(items))
		for _, course := range catalog.Courses() {
			for idx, it := range c.Items(course) {
				if err := repo.Upsert(ctx, it, idx); err != nil {
					return fmt.Errorf("seed %s %q: %w", course, it.Name, err)
				}
				keep = append(keep, it.ID)
			}
		}
		if _, err := repo.DeleteExcept(ctx, keep); err != nil {
			return fmt.Errorf("prune menu: %w", err)
		}
		return nil
	})
}
