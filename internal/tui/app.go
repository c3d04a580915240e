package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/jask/lunchtray/internal/catalog"
	"github.com/jask/lunchtray/internal/config"
	"github.com/jask/lunchtray/internal/database/repository"
	"github.com/jask/lunchtray/internal/flow"
	"github.com/jask/lunchtray/internal/logging"
	"github.com/jask/lunchtray/internal/service"
)

// App ties the ordering session to the terminal.
type App struct {
	ctx      context.Context
	session  *service.Session
	menu     catalog.Catalog
	checkout *service.CheckoutService
	log      *slog.Logger
	keys     keyMap
	currency string

	cursor    int
	searching bool
	query     string
	status    string
	statusErr bool

	lastOrder  *repository.PlacedOrder
	orderCount int
}

// Deps groups what the App needs from main.
type Deps struct {
	Session  *service.Session
	Menu     catalog.Catalog
	Checkout *service.CheckoutService // optional; enables history on the start screen
	Logger   *slog.Logger
}

type historyMsg struct {
	last  *repository.PlacedOrder
	count int
}

type errMsg struct{ error }

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	log := deps.Logger
	if log == nil {
		log = logging.Discard()
	}
	currency := cfg.UI.CurrencySymbol
	if currency == "" {
		currency = "$"
	}
	return &App{
		ctx:      ctx,
		session:  deps.Session,
		menu:     deps.Menu,
		checkout: deps.Checkout,
		log:      log,
		keys:     defaultKeys(),
		currency: currency,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadHistory()
}

func (a *App) loadHistory() tea.Cmd {
	if a.checkout == nil {
		return nil
	}
	return func() tea.Msg {
		list, err := a.checkout.History(a.ctx, 1)
		if err != nil {
			return errMsg{err}
		}
		n, err := a.checkout.Count(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		msg := historyMsg{count: n}
		if len(list) > 0 {
			msg.last = &list[0]
		}
		return msg
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleKey(m)
	case historyMsg:
		a.orderCount = m.count
		a.lastOrder = m.last
	case errMsg:
		a.setError(m.error)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Quit) {
		return a, tea.Quit
	}
	a.status, a.statusErr = "", false
	screen := a.session.Screen()

	switch {
	case key.Matches(m, a.keys.Back):
		if a.session.Back() {
			a.syncCursor()
		}
		return a, nil
	case key.Matches(m, a.keys.Cancel):
		if screen == flow.ScreenStart {
			return a, nil
		}
		if err := a.session.Cancel(); err != nil {
			a.setError(err)
			return a, nil
		}
		a.cursor = 0
		a.setStatus("order cancelled")
		return a, nil
	}

	switch screen {
	case flow.ScreenStart:
		if key.Matches(m, a.keys.Select) {
			if err := a.session.Start(); err != nil {
				a.setError(err)
				return a, nil
			}
			a.syncCursor()
		}
	case flow.ScreenCheckout:
		if key.Matches(m, a.keys.Select) {
			return a.submit()
		}
	default:
		return a.handleMenuKey(m)
	}
	return a, nil
}

func (a *App) handleMenuKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := a.currentItems()
	switch {
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(items)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Select):
		if len(items) == 0 {
			return a, nil
		}
		if err := a.session.Select(items[a.cursor]); err != nil {
			a.setError(err)
		}
	case key.Matches(m, a.keys.Next):
		if err := a.session.Next(); err != nil {
			if errors.Is(err, service.ErrNoSelection) {
				a.setError(errors.New("pick an item first"))
			} else {
				a.setError(err)
			}
			return a, nil
		}
		a.syncCursor()
	case key.Matches(m, a.keys.Search):
		a.searching = true
		a.query = ""
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc, tea.KeyEnter:
		a.searching = false
		a.query = ""
		return a, nil
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(a.query); len(r) > 0 {
			a.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		a.query += " "
	case tea.KeyRunes:
		a.query += string(m.Runes)
	default:
		return a, nil
	}
	if idx := catalog.Closest(a.currentItems(), a.query); idx >= 0 {
		a.cursor = idx
	}
	return a, nil
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	// sqlite insert is quick; running it inline keeps the session single-threaded
	placed, err := a.session.Confirm(a.ctx)
	if err != nil {
		a.log.Error("confirm order", "err", err)
		a.setError(err)
		return a, nil
	}
	a.cursor = 0
	if placed.ID != "" {
		a.lastOrder = &placed
		a.orderCount++
		a.setStatus(fmt.Sprintf("order placed: %s", a.money(placed.Total)))
	} else {
		a.setStatus("order submitted")
	}
	return a, nil
}

func (a *App) currentItems() []catalog.MenuItem {
	course, ok := a.session.Screen().Course()
	if !ok {
		return nil
	}
	return a.menu.Items(course)
}

// syncCursor puts the cursor on the current selection so returning to a menu
// shows what was picked.
func (a *App) syncCursor() {
	a.cursor = 0
	course, ok := a.session.Screen().Course()
	if !ok {
		return
	}
	sel := a.session.Order().Selected(course)
	if sel == nil {
		return
	}
	for i, it := range a.menu.Items(course) {
		if it.ID == sel.ID {
			a.cursor = i
			return
		}
	}
}

func (a *App) setStatus(s string) {
	a.status, a.statusErr = s, false
}

func (a *App) setError(err error) {
	a.status, a.statusErr = "error: "+err.Error(), true
}

func (a *App) money(d decimal.Decimal) string {
	return a.currency + d.StringFixed(2)
}

func (a *App) View() string {
	screen := a.session.Screen()
	header := titleStyle.Render(screen.Title())
	if prev, ok := a.session.Previous(); ok {
		header += hintStyle.Render("  ← " + prev.Title())
	}

	var body string
	switch screen {
	case flow.ScreenStart:
		body = a.renderStart()
	case flow.ScreenCheckout:
		body = a.renderCheckout()
	default:
		body = a.renderMenu()
	}

	out := header + "\n\n" + body
	if a.status != "" {
		style := statusStyle
		if a.statusErr {
			style = errorStyle
		}
		out += "\n" + style.Render(a.status)
	}
	return out + "\n"
}

func (a *App) renderStart() string {
	out := "Start your lunch order.\n"
	if a.lastOrder != nil {
		out += hintStyle.Render(fmt.Sprintf("%d orders placed, last total %s", a.orderCount, a.money(a.lastOrder.Total))) + "\n"
	}
	start := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start order"))
	return out + "\n" + hintStyle.Render(hint(start, a.keys.Quit))
}

func (a *App) renderMenu() string {
	course, _ := a.session.Screen().Course()
	sel := a.session.Order().Selected(course)
	var b strings.Builder
	for i, it := range a.currentItems() {
		marker := "  "
		if i == a.cursor {
			marker = cursorStyle.Render("▶ ")
		}
		radio := "( )"
		if sel != nil && sel.ID == it.ID {
			radio = cursorStyle.Render("(•)")
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", marker, radio, itemStyle.Render(it.Name), priceStyle.Render(a.money(it.Price)))
		if it.Description != "" {
			fmt.Fprintf(&b, "      %s\n", descStyle.Render(it.Description))
		}
	}
	fmt.Fprintf(&b, "\nSubtotal %s\n", a.money(a.session.Order().Subtotal()))
	if a.searching {
		fmt.Fprintf(&b, "find: %s_\n", a.query)
	}
	b.WriteString(hintStyle.Render(hint(a.keys.Up, a.keys.Down, a.keys.Select, a.keys.Next, a.keys.Search, a.keys.Cancel, a.keys.Back, a.keys.Quit)))
	return b.String()
}

func (a *App) renderCheckout() string {
	o := a.session.Order()
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Order Summary") + "\n")
	for _, it := range o.Items() {
		fmt.Fprintf(&b, "%-14s %-28s %s\n", it.Course.Label(), it.Name, priceStyle.Render(a.money(it.Price)))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", a.money(o.Subtotal()))
	fmt.Fprintf(&b, "Tax: %s\n", a.money(o.Tax()))
	b.WriteString(totalStyle.Render("Total: "+a.money(o.Total())) + "\n\n")
	submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
	b.WriteString(hintStyle.Render(hint(submit, a.keys.Cancel, a.keys.Back, a.keys.Quit)))
	return b.String()
}
