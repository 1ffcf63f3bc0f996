package pages

import (
	"revorz_storefront/storefront"
	"revorz_storefront/structs"
)

// responseUI collects what one page event did to the view, to be sent back as JSON
type responseUI struct {
	state         storefront.PageState
	rendered      bool
	selected      *structs.Color
	indicator     *bool
	notifications []structs.Notification
	navigation    *structs.Navigation
}

func (u *responseUI) Render(state storefront.PageState) {
	u.state = state
	u.rendered = true
}

func (u *responseUI) MarkSelected(c structs.Color) { u.selected = &c }

func (u *responseUI) SetIndicator(active bool) { u.indicator = &active }

func (u *responseUI) Notify(n structs.Notification) {
	u.notifications = append(u.notifications, n)
}

func (u *responseUI) Navigate(nav structs.Navigation) { u.navigation = &nav }

type pageResponse struct {
	PageID        string                 `json:"pageId"`
	State         storefront.PageState   `json:"state"`
	Selected      *structs.Color         `json:"selected,omitempty"`
	Indicator     *bool                  `json:"indicator,omitempty"`
	Notifications []structs.Notification `json:"notifications,omitempty"`
	Navigation    *structs.Navigation    `json:"navigation,omitempty"`
}

func (u *responseUI) response(pageID string, page *storefront.Page) pageResponse {
	state := u.state
	if !u.rendered {
		state = page.State()
	}
	return pageResponse{
		PageID:        pageID,
		State:         state,
		Selected:      u.selected,
		Indicator:     u.indicator,
		Notifications: u.notifications,
		Navigation:    u.navigation,
	}
}
