package repository

import (
	"context"
	"strings"

	"github.com/jask/lunchtray/internal/catalog"
)

// MenuRepo handles menu items.
type MenuRepo struct {
	db DBTX
}

func NewMenuRepo(db DBTX) *MenuRepo { return &MenuRepo{db: db} }

func (r *MenuRepo) Upsert(ctx context.Context, it catalog.MenuItem, sortOrder int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO menu_items(id, course, name, description, price, image, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 course=excluded.course,
	 name=excluded.name,
	 description=excluded.description,
	 price=excluded.price,
	 image=excluded.image,
	 sort_order=excluded.sort_order;
	`, it.ID, string(it.Course), it.Name, it.Description, it.Price.String(), it.Image, sortOrder)
	return err
}

// DeleteExcept removes every item whose id is not in keep.
func (r *MenuRepo) DeleteExcept(ctx context.Context, keep []string) (int64, error) {
	query := `DELETE FROM menu_items`
	args := make([]any, 0, len(keep))
	if len(keep) > 0 {
		query += ` WHERE id NOT IN (?` + strings.Repeat(",?", len(keep)-1) + `)`
		for _, id := range keep {
			args = append(args, id)
		}
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *MenuRepo) ListByCourse(ctx context.Context, course catalog.Course) ([]catalog.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, course, name, description, price, image
	FROM menu_items WHERE course = ? ORDER BY sort_order, name`, string(course))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []catalog.MenuItem
	for rows.Next() {
		var it catalog.MenuItem
		var c string
		if err := rows.Scan(&it.ID, &c, &it.Name, &it.Description, &it.Price, &it.Image); err != nil {
			return nil, err
		}
		it.Course = catalog.Course(c)
		out = append(out, it)
	}
	return out, rows.Err()
}

// Catalog loads every course into a catalog.Catalog.
func (r *MenuRepo) Catalog(ctx context.Context) (catalog.Catalog, error) {
	var c catalog.Catalog
	var err error
	if c.Entrees, err = r.ListByCourse(ctx, catalog.CourseEntree); err != nil {
		return catalog.Catalog{}, err
	}
	if c.SideDishes, err = r.ListByCourse(ctx, catalog.CourseSideDish); err != nil {
		return catalog.Catalog{}, err
	}
	if c.Accompaniments, err = r.ListByCourse(ctx, catalog.CourseAccompaniment); err != nil {
		return catalog.Catalog{}, err
	}
	return c, nil
}
