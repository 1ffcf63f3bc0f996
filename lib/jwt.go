package lib

import (
	"errors"
	"fmt"
	"net/http"
	"revorz_storefront/structs"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ProfileCookieName = "revorz_profile"
	SessionCookieName = "revorz_session"

	identityIssuer = "revorz-storefront"
)

type identityClaims struct {
	Kind structs.IdentityKind `json:"kind"`
	jwt.RegisteredClaims
}

// IssueIdentityToken signs id as the subject of a token of the given kind.
// A zero ttl issues a token without expiry, used for browser-session cookies.
func IssueIdentityToken(kind structs.IdentityKind, id string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := identityClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  id,
			Issuer:   identityIssuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return signed, nil
}

// ParseIdentityToken validates tokenStr and returns its subject
func ParseIdentityToken(tokenStr string, kind structs.IdentityKind, secret string) (string, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(identityIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	if claims.Kind != kind {
		return "", ErrWrongTokenKind
	}

	return claims.Subject, nil
}

// ExtractIdentity reads and validates the identity cookie of the given kind
func ExtractIdentity(r *http.Request, kind structs.IdentityKind, secret string) (string, error) {
	name := ProfileCookieName
	if kind == structs.IdentitySession {
		name = SessionCookieName
	}

	tokenStr, err := GetCookieValue(name, r)
	if err != nil {
		return "", err
	}
	return ParseIdentityToken(tokenStr, kind, secret)
}
