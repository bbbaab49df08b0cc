package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/instamedia/internal/auth/domain"
)

// CookieBinder moves session tokens between responses and requests.
type CookieBinder struct {
	Access  domain.CookiePolicy
	Refresh domain.CookiePolicy
}

// NewCookieBinder returns a binder with the session cookie policies. Cookies
// are only marked Secure in production.
func NewCookieBinder(production bool) CookieBinder {
	access, refresh := domain.SessionCookies(production)
	return CookieBinder{Access: access, Refresh: refresh}
}

// SetSession writes both session cookies.
func (b CookieBinder) SetSession(w http.ResponseWriter, tokens domain.TokenPair) {
	setCookie(w, b.Access, tokens.AccessToken)
	setCookie(w, b.Refresh, tokens.RefreshToken)
}

// SetAccess writes only the access cookie.
func (b CookieBinder) SetAccess(w http.ResponseWriter, token string) {
	setCookie(w, b.Access, token)
}

// Clear expires both session cookies.
func (b CookieBinder) Clear(w http.ResponseWriter) {
	clearCookie(w, b.Access)
	clearCookie(w, b.Refresh)
}

// RefreshToken returns the refresh cookie value, or "".
func (b CookieBinder) RefreshToken(r *http.Request) string {
	c, err := r.Cookie(b.Refresh.Name)
	if err != nil {
		return ""
	}
	return c.Value
}

func setCookie(w http.ResponseWriter, p domain.CookiePolicy, value string) {
	c := baseCookie(p)
	c.Value = value
	c.MaxAge = int(p.MaxAge / time.Second)
	c.Expires = time.Now().Add(p.MaxAge)
	http.SetCookie(w, c)
}

func clearCookie(w http.ResponseWriter, p domain.CookiePolicy) {
	c := baseCookie(p)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

func baseCookie(p domain.CookiePolicy) *http.Cookie {
	return &http.Cookie{
		Name:     p.Name,
		Path:     p.Path,
		HttpOnly: p.HTTPOnly,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}
