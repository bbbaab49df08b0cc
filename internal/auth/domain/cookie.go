package domain

import (
	"net/http"
	"time"
)

const (
	AccessCookieName  = "token"
	RefreshCookieName = "refreshToken"
)

// CookiePolicy describes how a session token travels as a cookie.
type CookiePolicy struct {
	Name     string
	MaxAge   time.Duration
	HTTPOnly bool
	Secure   bool
	SameSite http.SameSite
	Path     string
}

// SessionCookies returns the access and refresh cookie policies. Secure is
// only set for production deployments.
func SessionCookies(production bool) (access, refresh CookiePolicy) {
	base := CookiePolicy{
		HTTPOnly: true,
		Secure:   production,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	}

	access = base
	access.Name = AccessCookieName
	access.MaxAge = AccessTokenTTL

	refresh = base
	refresh.Name = RefreshCookieName
	refresh.MaxAge = RefreshTokenTTL
	return access, refresh
}
