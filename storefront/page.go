package storefront

import (
	"context"
	"errors"
	"fmt"
	"revorz_storefront/storage"
	"revorz_storefront/structs"
	"strings"
	"sync"
	"time"
)

// LoginRedirectDelay keeps the login warning visible before navigating away
const LoginRedirectDelay = 1500 * time.Millisecond

const (
	msgLoginRequired = "Harap login untuk belanja."
	msgNewsletter    = "Terima kasih! Anda telah subscribe ke newsletter kami."
)

type PageOptions struct {
	ProductName  string
	BasePrice    string
	PriceSuffix  string
	ColorOptions []structs.ColorOption
	Destinations Destinations
	Clock        func() time.Time
}

// Page is the controller of one product page view. Every event handler holds the
// page lock for its whole run, so handlers never interleave.
type Page struct {
	mu sync.Mutex

	selection    *Selection
	cart         *Cart
	gate         *Gate
	handoff      *Handoff
	theme        *Theme
	destinations Destinations
	board        Board
	countdown    Countdown
	now          func() time.Time

	cartTotal  int
	loggedIn   bool
	themeState ThemeState
}

func NewPage(accessor *storage.Accessor, opts PageOptions) *Page {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.ColorOptions == nil {
		opts.ColorOptions = structs.DefaultColorOptions()
	}
	if opts.Destinations == (Destinations{}) {
		opts.Destinations = DefaultDestinations()
	}

	sel := NewSelection(opts.ProductName, opts.ColorOptions, opts.PriceSuffix)
	sel.SetPrice(opts.BasePrice)

	gate := NewGate(accessor, opts.Destinations)

	return &Page{
		selection:    sel,
		cart:         NewCart(accessor, gate),
		gate:         gate,
		handoff:      NewHandoff(accessor, opts.Destinations.Product),
		theme:        NewTheme(accessor),
		destinations: opts.Destinations,
		countdown:    NewCountdown(opts.Clock()),
		now:          opts.Clock,
		themeState:   themeState(true),
	}
}

// Init runs the page initialization: default color, pending listing selection,
// cart indicator, login label and theme.
func (p *Page) Init(ctx context.Context, ui UI) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.selection.SelectColor(structs.ColorWhite) {
		ui.MarkSelected(structs.ColorWhite)
	}

	pending, ok, err := p.handoff.ConsumeIfPresent(ctx)
	if err != nil {
		return fmt.Errorf("failed to consume pending selection: %w", err)
	}
	if ok {
		p.selection.Apply(pending)
		p.markCurrent(ui)
	}

	if err := p.refresh(ctx); err != nil {
		return err
	}

	ui.SetIndicator(IndicatorActive(p.cartTotal))
	ui.Render(p.stateLocked())
	return nil
}

// Refresh re-reads the stored state shared with other pages and renders it
func (p *Page) Refresh(ctx context.Context, ui UI) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.refresh(ctx); err != nil {
		return err
	}
	ui.SetIndicator(IndicatorActive(p.cartTotal))
	ui.Render(p.stateLocked())
	return nil
}

func (p *Page) refresh(ctx context.Context) error {
	loggedIn, err := p.gate.IsLoggedIn(ctx)
	if err != nil {
		return err
	}
	total, err := p.cart.ReadCartTotal(ctx)
	if err != nil {
		return err
	}
	theme, err := p.theme.Load(ctx)
	if err != nil {
		return err
	}

	p.loggedIn = loggedIn
	p.cartTotal = total
	p.themeState = theme
	return nil
}

func (p *Page) markCurrent(ui View) {
	if _, ok := findOption(p.selection.Options(), p.selection.Color()); ok {
		ui.MarkSelected(p.selection.Color())
	}
}

// SelectColor handles a pointer activation of a color option
func (p *Page) SelectColor(ui UI, c structs.Color) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.selection.SelectColor(c) {
		return false
	}
	ui.MarkSelected(c)
	ui.Render(p.stateLocked())
	return true
}

// ActivateColorKey handles a key press on a focused color option
func (p *Page) ActivateColorKey(ui UI, c structs.Color, key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.selection.ActivateColorKey(c, key) {
		return false
	}
	ui.MarkSelected(c)
	ui.Render(p.stateLocked())
	return true
}

func (p *Page) ChangeQuantity(ui UI, delta int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	q := p.selection.ChangeQuantity(delta)
	ui.Render(p.stateLocked())
	return q
}

// AddToCart adds the current selection under the displayed product name. A shopper
// who is not logged in gets a warning and a delayed navigation to the login page.
func (p *Page) AddToCart(ctx context.Context, ui UI) (AddResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	onGated := func() {
		p.loggedIn = false
		p.notify(ui, structs.NotificationWarning, msgLoginRequired)
		ui.Navigate(structs.Navigation{
			Target:  p.destinations.Login,
			AfterMs: LoginRedirectDelay.Milliseconds(),
		})
	}

	res, err := p.cart.AddToCart(ctx, p.selection, p.selection.ProductName(), onGated)
	if errors.Is(err, ErrLoginRequired) {
		ui.Render(p.stateLocked())
		return AddResult{}, err
	}
	if err != nil {
		return AddResult{}, err
	}

	p.loggedIn = true
	p.cartTotal = res.Total
	ui.SetIndicator(IndicatorActive(p.cartTotal))

	msg := fmt.Sprintf("Berhasil! %d %s %s masuk keranjang.",
		p.selection.Quantity(), p.selection.ProductName(), p.selection.Label())
	p.notify(ui, structs.NotificationSuccess, msg)

	ui.Render(p.stateLocked())
	return res, nil
}

func (p *Page) GoToCartOrLogin(ctx context.Context, ui UI) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	target, err := p.gate.GoToCartOrLogin(ctx)
	if err != nil {
		return "", err
	}
	ui.Navigate(structs.Navigation{Target: target})
	return target, nil
}

func (p *Page) ToggleTheme(ctx context.Context, ui UI) (ThemeState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, err := p.theme.Toggle(ctx)
	if err != nil {
		return ThemeState{}, err
	}
	p.themeState = state
	ui.Render(p.stateLocked())
	return state, nil
}

// SubscribeNewsletter acknowledges a newsletter form submission; an empty email does nothing
func (p *Page) SubscribeNewsletter(ui UI, email string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, ok := NewsletterNotification(email, p.now())
	if !ok {
		return false
	}
	p.board.Show(n)
	ui.Notify(n)
	ui.Render(p.stateLocked())
	return true
}

// NewsletterNotification is the acknowledgment of a newsletter form; an empty email gets none
func NewsletterNotification(email string, now time.Time) (structs.Notification, bool) {
	if strings.TrimSpace(email) == "" {
		return structs.Notification{}, false
	}
	return NewNotification(structs.NotificationSuccess, msgNewsletter, now), true
}

func (p *Page) notify(ui Notifier, typ structs.NotificationType, msg string) {
	n := NewNotification(typ, msg, p.now())
	p.board.Show(n)
	ui.Notify(n)
}

func (p *Page) Countdown() Countdown {
	return p.countdown
}

// State returns the current page state without reading storage
func (p *Page) State() PageState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stateLocked()
}

func (p *Page) stateLocked() PageState {
	now := p.now()

	state := PageState{
		Selection:  p.selection.Snapshot(),
		Options:    p.selection.Options(),
		Indicator:  IndicatorActive(p.cartTotal),
		CartTotal:  p.cartTotal,
		LoggedIn:   p.loggedIn,
		LoginLabel: LoginLabel(p.loggedIn),
		Theme:      p.themeState,
		Countdown:  p.countdown.Text(now),
	}
	if n, ok := p.board.Visible(now); ok {
		state.Notification = &n
	}
	return state
}
