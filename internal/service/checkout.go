package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jask/lunchtray/internal/database"
	"github.com/jask/lunchtray/internal/database/repository"
	"github.com/jask/lunchtray/internal/order"
)

// CheckoutService records submitted orders.
type CheckoutService struct {
	DB     *sql.DB
	Logger *slog.Logger
	// Now is overridable for tests.
	Now func() time.Time
}

func (s *CheckoutService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return database.Now()
}

// Place persists o with its lines in one transaction and returns the stored row.
func (s *CheckoutService) Place(ctx context.Context, o *order.Order) (repository.PlacedOrder, error) {
	if s.DB == nil {
		return repository.PlacedOrder{}, fmt.Errorf("checkout: db not configured")
	}
	if o.Empty() {
		return repository.PlacedOrder{}, ErrEmptyOrder
	}
	placed := repository.PlacedOrder{
		ID:       uuid.NewString(),
		Subtotal: o.Subtotal(),
		Tax:      o.Tax(),
		Total:    o.Total(),
		PlacedAt: s.now(),
	}
	for _, it := range o.Items() {
		placed.Lines = append(placed.Lines, repository.OrderLine{
			Course: string(it.Course),
			ItemID: it.ID,
			Name:   it.Name,
			Price:  it.Price,
		})
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		return repository.NewOrderRepo(tx).Insert(ctx, placed)
	}); err != nil {
		return repository.PlacedOrder{}, fmt.Errorf("place order: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("order placed", "order_id", placed.ID, "items", len(placed.Lines), "total", placed.Total.StringFixed(2))
	}
	return placed, nil
}

// History lists recent orders, newest first.
func (s *CheckoutService) History(ctx context.Context, limit int) ([]repository.PlacedOrder, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("checkout: db not configured")
	}
	return repository.NewOrderRepo(s.DB).Recent(ctx, limit)
}

// Count returns how many orders have been placed in total.
func (s *CheckoutService) Count(ctx context.Context) (int, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("checkout: db not configured")
	}
	return repository.NewOrderRepo(s.DB).Count(ctx)
}
