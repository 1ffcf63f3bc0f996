package storefront

import (
	"context"
	"errors"
	"revorz_storefront/storage"
)

// ErrLoginRequired is returned when a gated action is attempted without the session login flag
var ErrLoginRequired = errors.New("login required")

// Destinations are the opaque navigation targets of the storefront
type Destinations struct {
	Login   string
	Cart    string
	Product string
}

func DefaultDestinations() Destinations {
	return Destinations{
		Login:   "login.html",
		Cart:    "cart.html",
		Product: "product.html",
	}
}

// Gate is a UI gate on the session scoped login flag. There is no token behind it.
type Gate struct {
	accessor     *storage.Accessor
	destinations Destinations
}

func NewGate(accessor *storage.Accessor, destinations Destinations) *Gate {
	return &Gate{accessor: accessor, destinations: destinations}
}

func (g *Gate) IsLoggedIn(ctx context.Context) (bool, error) {
	v, ok, err := LoggedInKey.Load(ctx, g.accessor)
	if err != nil {
		return false, err
	}
	return ok && v, nil
}

// RequireLogin calls onFail and returns ErrLoginRequired when the shopper is not logged in
func (g *Gate) RequireLogin(ctx context.Context, onFail func()) error {
	loggedIn, err := g.IsLoggedIn(ctx)
	if err != nil {
		return err
	}
	if !loggedIn {
		if onFail != nil {
			onFail()
		}
		return ErrLoginRequired
	}
	return nil
}

// GoToCartOrLogin returns the cart page for logged in shoppers and the login page otherwise
func (g *Gate) GoToCartOrLogin(ctx context.Context) (string, error) {
	loggedIn, err := g.IsLoggedIn(ctx)
	if err != nil {
		return "", err
	}
	if loggedIn {
		return g.destinations.Cart, nil
	}
	return g.destinations.Login, nil
}

func (g *Gate) LogIn(ctx context.Context) error {
	return LoggedInKey.Save(ctx, g.accessor, true)
}

func (g *Gate) LogOut(ctx context.Context) error {
	return LoggedInKey.Delete(ctx, g.accessor)
}

// LoginLabel is the text of the login/account button
func LoginLabel(loggedIn bool) string {
	if loggedIn {
		return "Akun Saya"
	}
	return "Login"
}
