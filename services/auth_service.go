package services

import (
	"context"
	"revorz_storefront/storage"
	"revorz_storefront/storefront"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
)

// AuthService flips the session login flag. It checks no credentials; the flag is a UI gate only.
type AuthService struct {
	logger       *gecho.Logger
	destinations storefront.Destinations
}

func NewAuthService(logger *gecho.Logger, destinations storefront.Destinations) *AuthService {
	return &AuthService{logger: logger, destinations: destinations}
}

func (as *AuthService) gate(a *storage.Accessor) *storefront.Gate {
	return storefront.NewGate(a, as.destinations)
}

func (as *AuthService) Status(ctx context.Context, a *storage.Accessor) (structs.AuthStatus, error) {
	loggedIn, err := as.gate(a).IsLoggedIn(ctx)
	if err != nil {
		return structs.AuthStatus{}, err
	}
	return structs.AuthStatus{LoggedIn: loggedIn, Label: storefront.LoginLabel(loggedIn)}, nil
}

func (as *AuthService) LogIn(ctx context.Context, a *storage.Accessor) (structs.AuthStatus, error) {
	if err := as.gate(a).LogIn(ctx); err != nil {
		return structs.AuthStatus{}, err
	}
	as.logger.Debug("Session logged in", gecho.Field("profile_id", a.ProfileID()))
	return structs.AuthStatus{LoggedIn: true, Label: storefront.LoginLabel(true)}, nil
}

func (as *AuthService) LogOut(ctx context.Context, a *storage.Accessor) (structs.AuthStatus, error) {
	if err := as.gate(a).LogOut(ctx); err != nil {
		return structs.AuthStatus{}, err
	}
	return structs.AuthStatus{LoggedIn: false, Label: storefront.LoginLabel(false)}, nil
}

// CartDestination returns where the cart button leads this session
func (as *AuthService) CartDestination(ctx context.Context, a *storage.Accessor) (string, error) {
	return as.gate(a).GoToCartOrLogin(ctx)
}
