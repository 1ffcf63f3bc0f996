package lib

import (
	"net/http"
	"net/http/httptest"
	"revorz_storefront/structs"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_identity_secret"

func TestIdentityToken_RoundTrip(t *testing.T) {
	token, err := IssueIdentityToken(structs.IdentityProfile, "prof-1", time.Hour, testSecret)
	require.NoError(t, err)

	id, err := ParseIdentityToken(token, structs.IdentityProfile, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "prof-1", id)
}

func TestIdentityToken_NoExpiry(t *testing.T) {
	token, err := IssueIdentityToken(structs.IdentitySession, "sess-1", 0, testSecret)
	require.NoError(t, err)

	id, err := ParseIdentityToken(token, structs.IdentitySession, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", id)
}

func TestIdentityToken_WrongKind(t *testing.T) {
	token, err := IssueIdentityToken(structs.IdentitySession, "sess-1", 0, testSecret)
	require.NoError(t, err)

	_, err = ParseIdentityToken(token, structs.IdentityProfile, testSecret)
	assert.ErrorIs(t, err, ErrWrongTokenKind)
}

func TestIdentityToken_WrongSecret(t *testing.T) {
	token, err := IssueIdentityToken(structs.IdentityProfile, "prof-1", time.Hour, testSecret)
	require.NoError(t, err)

	_, err = ParseIdentityToken(token, structs.IdentityProfile, "another_secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityToken_Expired(t *testing.T) {
	claims := identityClaims{
		Kind: structs.IdentityProfile,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "prof-1",
			Issuer:    identityIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseIdentityToken(token, structs.IdentityProfile, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestIdentityToken_Garbage(t *testing.T) {
	_, err := ParseIdentityToken("not-a-token", structs.IdentityProfile, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractIdentity(t *testing.T) {
	token, err := IssueIdentityToken(structs.IdentitySession, "sess-9", 0, testSecret)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	id, err := ExtractIdentity(r, structs.IdentitySession, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "sess-9", id)

	_, err = ExtractIdentity(r, structs.IdentityProfile, testSecret)
	assert.ErrorIs(t, err, http.ErrNoCookie)
}
