package storefront

import (
	"revorz_storefront/storage"
	"revorz_storefront/structs"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var (
	// CartKey holds the whole cart of a browser profile
	CartKey = storage.Key[[]structs.CartLineItem]{
		Scope: storage.Persistent,
		Name:  "revorz_cart",
		Codec: storage.JSON[[]structs.CartLineItem](),
	}

	ThemeKey = storage.Key[string]{
		Scope: storage.Persistent,
		Name:  "revorz_darkMode",
		Codec: storage.OneOf(ThemeDark, ThemeLight),
	}

	// PendingSelectionKey carries a listing choice to the detail page, consumed once
	PendingSelectionKey = storage.Key[structs.PendingSelection]{
		Scope: storage.Session,
		Name:  "selectedProduct",
		Codec: storage.JSON[structs.PendingSelection](),
	}

	LoggedInKey = storage.Key[bool]{
		Scope: storage.Session,
		Name:  "isLoggedIn",
		Codec: storage.Flag(),
	}
)
