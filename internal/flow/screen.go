// Package flow sequences the lunch tray screens.
//
// The screen graph is fixed and linear:
//
//	Start -> EntreeMenu -> SideDishMenu -> AccompanimentMenu -> Checkout
//
// Forward events push the current screen on a back stack. Cancel and Confirm
// pop everything back to Start and ask the caller to reset the order; Back
// pops a single screen and leaves the order alone.
package flow

import "github.com/jask/lunchtray/internal/catalog"

// Screen identifies one step of the ordering wizard.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenEntreeMenu
	ScreenSideDishMenu
	ScreenAccompanimentMenu
	ScreenCheckout
)

// Screens returns every screen in forward order.
func Screens() []Screen {
	return []Screen{ScreenStart, ScreenEntreeMenu, ScreenSideDishMenu, ScreenAccompanimentMenu, ScreenCheckout}
}

// Title is the display title shown in the header.
func (s Screen) Title() string {
	switch s {
	case ScreenStart:
		return "Lunch Tray"
	case ScreenEntreeMenu:
		return "Choose Entree"
	case ScreenSideDishMenu:
		return "Choose Side Dish"
	case ScreenAccompanimentMenu:
		return "Choose Accompaniment"
	case ScreenCheckout:
		return "Order Checkout"
	default:
		return "Unknown"
	}
}

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenEntreeMenu:
		return "entree_menu"
	case ScreenSideDishMenu:
		return "side_dish_menu"
	case ScreenAccompanimentMenu:
		return "accompaniment_menu"
	case ScreenCheckout:
		return "checkout"
	default:
		return "unknown"
	}
}

// Course is the menu course picked on this screen. ok is false for Start
// and Checkout.
func (s Screen) Course() (course catalog.Course, ok bool) {
	switch s {
	case ScreenEntreeMenu:
		return catalog.CourseEntree, true
	case ScreenSideDishMenu:
		return catalog.CourseSideDish, true
	case ScreenAccompanimentMenu:
		return catalog.CourseAccompaniment, true
	}
	return "", false
}

// IsMenu reports whether the screen offers menu items.
func (s Screen) IsMenu() bool {
	_, ok := s.Course()
	return ok
}

// Event is a user action driving the sequencer.
type Event int

const (
	EventStart Event = iota
	EventNext
	EventCancel
	EventConfirm
	EventBack
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventNext:
		return "next"
	case EventCancel:
		return "cancel"
	case EventConfirm:
		return "confirm"
	case EventBack:
		return "back"
	default:
		return "unknown"
	}
}
