package lib

import (
	"net/http"
	"revorz_storefront/config"
	"time"
)

func cookieAttrs() (http.SameSite, bool, string) {
	if config.IsProduction() {
		return http.SameSiteNoneMode, true, config.GetConfig().Server.CookieDomain
	}
	return http.SameSiteLaxMode, false, ""
}

// SetCookie sets a secure, HttpOnly cookie that expires at expiry
func SetCookie(key, val string, expiry time.Time, w http.ResponseWriter) {
	sameSite, secure, domain := cookieAttrs()

	cookie := &http.Cookie{
		Name:     key,
		Value:    val,
		Expires:  expiry,
		MaxAge:   int(time.Until(expiry).Seconds()),
		Path:     "/",
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

// SetSessionCookie sets a cookie without expiry, dropped when the browser session ends
func SetSessionCookie(key, val string, w http.ResponseWriter) {
	sameSite, secure, domain := cookieAttrs()

	cookie := &http.Cookie{
		Name:     key,
		Value:    val,
		Path:     "/",
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

func GetCookieValue(key string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
