package services

import (
	"errors"
	"fmt"
	"net/http"
	"revorz_storefront/lib"
	"revorz_storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// Identity names the storage namespaces of one request
type Identity struct {
	ProfileID string `json:"profile_id"`
	SessionID string `json:"session_id"`
}

// IdentityService maps the identity cookies of a browser to storage namespaces.
// A missing or invalid cookie gets a fresh namespace and a new cookie.
type IdentityService struct {
	logger *gecho.Logger
	cfg    *structs.IdentityConfig
}

func NewIdentityService(logger *gecho.Logger, cfg *structs.Config) *IdentityService {
	return &IdentityService{logger: logger, cfg: cfg.Identity}
}

func (is *IdentityService) Resolve(w http.ResponseWriter, r *http.Request) (Identity, error) {
	profileID, err := is.resolve(w, r, structs.IdentityProfile)
	if err != nil {
		return Identity{}, err
	}
	sessionID, err := is.resolve(w, r, structs.IdentitySession)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ProfileID: profileID, SessionID: sessionID}, nil
}

func (is *IdentityService) resolve(w http.ResponseWriter, r *http.Request, kind structs.IdentityKind) (string, error) {
	id, err := lib.ExtractIdentity(r, kind, is.cfg.SigningSecret)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, http.ErrNoCookie) {
		is.logger.Debug("Replacing identity cookie", gecho.Field("kind", string(kind)), gecho.Field("error", err))
	}

	id, err = lib.NewNamespaceID()
	if err != nil {
		return "", err
	}

	if kind == structs.IdentitySession {
		token, err := lib.IssueIdentityToken(kind, id, 0, is.cfg.SigningSecret)
		if err != nil {
			return "", err
		}
		lib.SetSessionCookie(lib.SessionCookieName, token, w)
		return id, nil
	}

	token, err := lib.IssueIdentityToken(kind, id, is.cfg.ProfileExpiry, is.cfg.SigningSecret)
	if err != nil {
		return "", fmt.Errorf("failed to issue profile identity: %w", err)
	}
	lib.SetCookie(lib.ProfileCookieName, token, time.Now().Add(is.cfg.ProfileExpiry), w)
	return id, nil
}
