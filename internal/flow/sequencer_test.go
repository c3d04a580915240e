package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// advance drives a fresh sequencer forward until it sits on target.
func advance(t *testing.T, target Screen) *Sequencer {
	t.Helper()
	s := New()
	for s.Current() != target {
		ev := EventNext
		if s.Current() == ScreenStart {
			ev = EventStart
		}
		_, err := s.Fire(ev)
		require.NoError(t, err)
	}
	return s
}

func TestForwardPath(t *testing.T) {
	s := New()
	require.Equal(t, ScreenStart, s.Current())
	require.False(t, s.CanNavigateBack())

	tr, err := s.Start()
	require.NoError(t, err)
	require.Equal(t, Transition{From: ScreenStart, To: ScreenEntreeMenu, Event: EventStart}, tr)

	want := []Screen{ScreenSideDishMenu, ScreenAccompanimentMenu, ScreenCheckout}
	for _, w := range want {
		tr, err := s.Next()
		require.NoError(t, err)
		require.Equal(t, w, tr.To)
		require.False(t, tr.Reset)
	}
	require.Equal(t, []Screen{ScreenStart, ScreenEntreeMenu, ScreenSideDishMenu, ScreenAccompanimentMenu}, s.History())
}

func TestNoScreenReachableOutOfOrder(t *testing.T) {
	// Every forward step from every screen lands exactly one step later.
	order := Screens()
	for i, from := range order {
		s := advance(t, from)
		for _, ev := range []Event{EventStart, EventNext} {
			if !s.Accepts(ev) {
				continue
			}
			tr, err := s.Fire(ev)
			require.NoError(t, err)
			require.Equal(t, order[i+1], tr.To, "from %s via %s", from, ev)
			break
		}
	}
}

func TestRejectedEventsLeaveStateUntouched(t *testing.T) {
	cases := []struct {
		at Screen
		ev Event
	}{
		{ScreenStart, EventNext},
		{ScreenStart, EventCancel},
		{ScreenStart, EventConfirm},
		{ScreenStart, EventBack},
		{ScreenEntreeMenu, EventStart},
		{ScreenEntreeMenu, EventConfirm},
		{ScreenSideDishMenu, EventConfirm},
		{ScreenAccompanimentMenu, EventConfirm},
		{ScreenCheckout, EventNext},
		{ScreenCheckout, EventStart},
		{ScreenCheckout, Event(99)},
	}
	for _, c := range cases {
		t.Run(c.at.String()+"/"+c.ev.String(), func(t *testing.T) {
			s := advance(t, c.at)
			history := s.History()
			require.False(t, s.Accepts(c.ev))
			_, err := s.Fire(c.ev)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidTransition))
			require.Equal(t, c.at, s.Current())
			require.Equal(t, history, s.History())
		})
	}
}

func TestCancelFromEveryScreenReturnsToStartWithReset(t *testing.T) {
	for _, at := range []Screen{ScreenEntreeMenu, ScreenSideDishMenu, ScreenAccompanimentMenu, ScreenCheckout} {
		s := advance(t, at)
		tr, err := s.Cancel()
		require.NoError(t, err)
		require.True(t, tr.Reset)
		require.Equal(t, at, tr.From)
		require.Equal(t, ScreenStart, s.Current())
		require.False(t, s.CanNavigateBack())
	}
}

func TestConfirmFromCheckout(t *testing.T) {
	s := advance(t, ScreenCheckout)
	tr, err := s.Confirm()
	require.NoError(t, err)
	require.True(t, tr.Reset)
	require.Equal(t, EventConfirm, tr.Event)
	require.Equal(t, ScreenStart, s.Current())
	require.Empty(t, s.History())
}

func TestBackPopsOneScreen(t *testing.T) {
	s := advance(t, ScreenCheckout)
	for _, want := range []Screen{ScreenAccompanimentMenu, ScreenSideDishMenu, ScreenEntreeMenu, ScreenStart} {
		got, ok := s.Back()
		require.True(t, ok)
		require.Equal(t, want, got)
		require.Equal(t, want, s.Current())
	}
	got, ok := s.Back()
	require.False(t, ok)
	require.Equal(t, ScreenStart, got)
}

func TestFireBackReportsNoReset(t *testing.T) {
	s := advance(t, ScreenSideDishMenu)
	tr, err := s.Fire(EventBack)
	require.NoError(t, err)
	require.False(t, tr.Reset)
	require.Equal(t, ScreenEntreeMenu, tr.To)
}

func TestScreenMetadata(t *testing.T) {
	titles := map[Screen]string{
		ScreenStart:             "Lunch Tray",
		ScreenEntreeMenu:        "Choose Entree",
		ScreenSideDishMenu:      "Choose Side Dish",
		ScreenAccompanimentMenu: "Choose Accompaniment",
		ScreenCheckout:          "Order Checkout",
	}
	for s, title := range titles {
		require.Equal(t, title, s.Title())
	}
	require.False(t, ScreenStart.IsMenu())
	require.False(t, ScreenCheckout.IsMenu())
	require.True(t, ScreenSideDishMenu.IsMenu())
	require.Equal(t, "Unknown", Screen(42).Title())
}

func TestStack(t *testing.T) {
	var st Stack
	_, ok := st.Pop()
	require.False(t, ok)
	_, ok = st.Peek()
	require.False(t, ok)

	st.Push(ScreenStart)
	st.Push(ScreenEntreeMenu)
	top, ok := st.Peek()
	require.True(t, ok)
	require.Equal(t, ScreenEntreeMenu, top)
	require.Equal(t, 2, st.Len())

	snapshot := st.Screens()
	st.Clear()
	require.True(t, st.IsEmpty())
	require.Len(t, snapshot, 2)
}

func TestPreviousTracksBackTarget(t *testing.T) {
	s := New()
	_, ok := s.Previous()
	require.False(t, ok)

	s = advance(t, ScreenAccompanimentMenu)
	prev, ok := s.Previous()
	require.True(t, ok)
	require.Equal(t, ScreenSideDishMenu, prev)
	require.Equal(t, ScreenAccompanimentMenu, s.Current(), "previous does not move")

	back, ok := s.Back()
	require.True(t, ok)
	require.Equal(t, prev, back)
	prev, _ = s.Previous()
	require.Equal(t, ScreenEntreeMenu, prev)

	_, err := s.Cancel()
	require.NoError(t, err)
	_, ok = s.Previous()
	require.False(t, ok)
}
