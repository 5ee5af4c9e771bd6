package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "auth_token"

// SessionCookieMaxAge is the cookie lifetime, matching the token's
// 7-day expiry.
const SessionCookieMaxAge = 7 * 24 * time.Hour

// NewSessionCookie builds the HTTP-only session cookie for the given
// token. Secure is set in production so the cookie only travels over
// TLS.
func NewSessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie builds an expired session cookie so the browser
// drops the session.
func ClearSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
