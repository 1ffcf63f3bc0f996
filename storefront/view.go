package storefront

import "revorz_storefront/structs"

// View is the rendering side of the product page
type View interface {
	Render(state PageState)
	// MarkSelected marks the option of color as the only selected/pressed one
	MarkSelected(color structs.Color)
	SetIndicator(active bool)
}

type Notifier interface {
	Notify(n structs.Notification)
}

type Navigator interface {
	Navigate(nav structs.Navigation)
}

// UI is everything a page event handler may touch outside the page state
type UI interface {
	View
	Notifier
	Navigator
}

// PageState is the full rendered state of a product page
type PageState struct {
	Selection    structs.SelectionSnapshot `json:"selection"`
	Options      []structs.ColorOption     `json:"options"`
	Indicator    bool                      `json:"indicator"`
	CartTotal    int                       `json:"cartTotal"`
	LoggedIn     bool                      `json:"loggedIn"`
	LoginLabel   string                    `json:"loginLabel"`
	Theme        ThemeState                `json:"theme"`
	Notification *structs.Notification     `json:"notification,omitempty"`
	Countdown    string                    `json:"countdown"`
}
