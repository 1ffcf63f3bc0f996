package storefront

import (
	"context"
	"revorz_storefront/storage"
)

type ThemeState struct {
	Mode string `json:"mode"`
	Dark bool   `json:"dark"`
	Icon string `json:"icon"`
}

func themeState(dark bool) ThemeState {
	if dark {
		return ThemeState{Mode: ThemeDark, Dark: true, Icon: "☀️"}
	}
	return ThemeState{Mode: ThemeLight, Dark: false, Icon: "🌙"}
}

// Theme is the persisted light/dark preference. Only an explicit "light" turns dark mode off.
type Theme struct {
	accessor *storage.Accessor
}

func NewTheme(accessor *storage.Accessor) *Theme {
	return &Theme{accessor: accessor}
}

func (t *Theme) Load(ctx context.Context) (ThemeState, error) {
	mode, ok, err := ThemeKey.Load(ctx, t.accessor)
	if err != nil {
		return ThemeState{}, err
	}
	return themeState(!ok || mode != ThemeLight), nil
}

func (t *Theme) Toggle(ctx context.Context) (ThemeState, error) {
	current, err := t.Load(ctx)
	if err != nil {
		return ThemeState{}, err
	}

	next := themeState(!current.Dark)
	if err := ThemeKey.Save(ctx, t.accessor, next.Mode); err != nil {
		return ThemeState{}, err
	}
	return next, nil
}
