package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jask/lunchtray/internal/catalog"
	"github.com/jask/lunchtray/internal/database/repository"
	"github.com/jask/lunchtray/internal/flow"
	"github.com/jask/lunchtray/internal/logging"
	"github.com/jask/lunchtray/internal/order"
)

var (
	// ErrNotOnMenu is returned when selecting outside a menu screen.
	ErrNotOnMenu = errors.New("not on a menu screen")
	// ErrWrongCourse is returned when the item does not belong to the current menu.
	ErrWrongCourse = errors.New("item is not on this menu")
	// ErrNoSelection is returned when Next is pressed before choosing an item.
	ErrNoSelection = errors.New("no item selected")
	// ErrEmptyOrder is returned when placing an order with nothing in it.
	ErrEmptyOrder = errors.New("order is empty")
)

// Placer records a confirmed order. *CheckoutService satisfies it.
type Placer interface {
	Place(ctx context.Context, o *order.Order) (repository.PlacedOrder, error)
}

// Session is one customer's ordering session: the order being built and the
// screen it is being built on. Not safe for concurrent use; the TUI drives it
// from its single update loop.
type Session struct {
	order  *order.Order
	seq    *flow.Sequencer
	placer Placer
	log    *slog.Logger
}

// NewSession starts on the Start screen with an empty order. placer may be nil,
// in which case Confirm only resets.
func NewSession(o *order.Order, placer Placer, log *slog.Logger) *Session {
	if log == nil {
		log = logging.Discard()
	}
	return &Session{order: o, seq: flow.New(), placer: placer, log: log}
}

func (s *Session) Order() *order.Order { return s.order }

func (s *Session) Screen() flow.Screen { return s.seq.Current() }

func (s *Session) CanNavigateBack() bool { return s.seq.CanNavigateBack() }

// Previous is the screen Back would return to; ok is false on Start.
func (s *Session) Previous() (flow.Screen, bool) { return s.seq.Previous() }

// Start leaves the Start screen for the entree menu.
func (s *Session) Start() error {
	_, err := s.fire(flow.EventStart)
	return err
}

// Select records item for the current menu screen.
func (s *Session) Select(item catalog.MenuItem) error {
	course, ok := s.seq.Current().Course()
	if !ok {
		return fmt.Errorf("select %q on %s: %w", item.Name, s.seq.Current(), ErrNotOnMenu)
	}
	if item.Course != course {
		return fmt.Errorf("select %q (%s) on %s: %w", item.Name, item.Course, s.seq.Current(), ErrWrongCourse)
	}
	s.order.Update(item)
	s.log.Debug("item selected", "screen", s.seq.Current().String(), "item", item.Name)
	return nil
}

// Next advances to the following menu or checkout. A selection for the
// current course is required.
func (s *Session) Next() error {
	if course, ok := s.seq.Current().Course(); ok && s.order.Selected(course) == nil {
		return fmt.Errorf("next on %s: %w", s.seq.Current(), ErrNoSelection)
	}
	_, err := s.fire(flow.EventNext)
	return err
}

// Cancel abandons the order and returns to Start.
func (s *Session) Cancel() error {
	tr, err := s.fire(flow.EventCancel)
	if err != nil {
		return err
	}
	s.log.Info("order cancelled", "from", tr.From.String())
	return nil
}

// Back pops one screen, keeping the order. It reports false on Start.
func (s *Session) Back() bool {
	from := s.seq.Current()
	to, ok := s.seq.Back()
	if ok {
		s.log.Debug("navigate back", "from", from.String(), "to", to.String())
	}
	return ok
}

// Confirm submits the order from Checkout. On a recording failure the
// session stays on Checkout with the order intact.
func (s *Session) Confirm(ctx context.Context) (repository.PlacedOrder, error) {
	if !s.seq.Accepts(flow.EventConfirm) {
		_, err := s.seq.Fire(flow.EventConfirm)
		return repository.PlacedOrder{}, err
	}
	var placed repository.PlacedOrder
	if s.placer != nil {
		var err error
		placed, err = s.placer.Place(ctx, s.order)
		if err != nil {
			return repository.PlacedOrder{}, err
		}
	}
	if _, err := s.fire(flow.EventConfirm); err != nil {
		return repository.PlacedOrder{}, err
	}
	return placed, nil
}

func (s *Session) fire(ev flow.Event) (flow.Transition, error) {
	tr, err := s.seq.Fire(ev)
	if err != nil {
		return tr, err
	}
	if tr.Reset {
		s.order.Reset()
	}
	s.log.Debug("transition", "event", ev.String(), "from", tr.From.String(), "to", tr.To.String(), "reset", tr.Reset)
	return tr, nil
}
