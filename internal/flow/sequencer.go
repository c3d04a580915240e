package flow

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for an event the current screen does not accept.
var ErrInvalidTransition = errors.New("invalid transition")

// Transition describes the outcome of an accepted event.
type Transition struct {
	From  Screen
	To    Screen
	Event Event
	// Reset is set when the order must be cleared (cancel and confirm).
	Reset bool
}

// forward maps each screen to the event that leaves it forward and its target.
var forward = map[Screen]struct {
	event Event
	to    Screen
}{
	ScreenStart:             {EventStart, ScreenEntreeMenu},
	ScreenEntreeMenu:        {EventNext, ScreenSideDishMenu},
	ScreenSideDishMenu:      {EventNext, ScreenAccompanimentMenu},
	ScreenAccompanimentMenu: {EventNext, ScreenCheckout},
}

// Sequencer is the screen state machine. The zero value is not ready; use New.
type Sequencer struct {
	current Screen
	stack   Stack
}

// New returns a sequencer on the Start screen.
func New() *Sequencer {
	return &Sequencer{current: ScreenStart}
}

func (s *Sequencer) Current() Screen { return s.current }

// CanNavigateBack reports whether Back would move.
func (s *Sequencer) CanNavigateBack() bool { return !s.stack.IsEmpty() }

// Previous returns the screen Back would return to.
func (s *Sequencer) Previous() (Screen, bool) { return s.stack.Peek() }

// History returns the back stack, bottom first.
func (s *Sequencer) History() []Screen { return s.stack.Screens() }

// Fire applies an event. Rejected events leave the sequencer untouched and
// return an error wrapping ErrInvalidTransition.
func (s *Sequencer) Fire(ev Event) (Transition, error) {
	from := s.current
	switch ev {
	case EventStart, EventNext:
		f, ok := forward[from]
		if !ok || f.event != ev {
			return Transition{}, s.invalid(ev)
		}
		s.stack.Push(from)
		s.current = f.to
		return Transition{From: from, To: f.to, Event: ev}, nil
	case EventCancel:
		if from == ScreenStart {
			return Transition{}, s.invalid(ev)
		}
		s.popToStart()
		return Transition{From: from, To: ScreenStart, Event: ev, Reset: true}, nil
	case EventConfirm:
		if from != ScreenCheckout {
			return Transition{}, s.invalid(ev)
		}
		s.popToStart()
		return Transition{From: from, To: ScreenStart, Event: ev, Reset: true}, nil
	case EventBack:
		_, ok := s.Back()
		if !ok {
			return Transition{}, s.invalid(ev)
		}
		return Transition{From: from, To: s.current, Event: ev}, nil
	}
	return Transition{}, s.invalid(ev)
}

func (s *Sequencer) Start() (Transition, error) { return s.Fire(EventStart) }
func (s *Sequencer) Next() (Transition, error) { return s.Fire(EventNext) }
func (s *Sequencer) Cancel() (Transition, error) { return s.Fire(EventCancel) }
func (s *Sequencer) Confirm() (Transition, error) { return s.Fire(EventConfirm) }

// Back pops to the previous screen without touching the order. It reports
// false when there is nothing to pop, so Back on Start is a no-op.
func (s *Sequencer) Back() (Screen, bool) {
	prev, ok := s.stack.Pop()
	if !ok {
		return s.current, false
	}
	s.current = prev
	return prev, true
}

// Accepts reports whether ev is valid on the current screen.
func (s *Sequencer) Accepts(ev Event) bool {
	switch ev {
	case EventStart, EventNext:
		f, ok := forward[s.current]
		return ok && f.event == ev
	case EventCancel:
		return s.current != ScreenStart
	case EventConfirm:
		return s.current == ScreenCheckout
	case EventBack:
		return s.CanNavigateBack()
	}
	return false
}

func (s *Sequencer) popToStart() {
	s.stack.Clear()
	s.current = ScreenStart
}

func (s *Sequencer) invalid(ev Event) error {
	return fmt.Errorf("%s on %s: %w", ev, s.current, ErrInvalidTransition)
}
