package authsdk

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Cookie names set by the service.
const (
	AccessCookie  = "token"
	RefreshCookie = "refreshToken"
)

// Client is a client for the Instamedia authentication service. It holds
// the session cookies in its jar, so one Client is one browser session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	base *url.URL
}

// NewClient creates a client with an empty cookie jar.
func NewClient(baseURL string) (*Client, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
		base: base,
	}, nil
}

// Cookie returns the current value of a session cookie, or "" when the
// jar does not hold it.
func (c *Client) Cookie(name string) string {
	if c.HTTPClient.Jar == nil {
		return ""
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(c.base) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

// SetCookie stores a cookie in the jar as if the service had set it.
func (c *Client) SetCookie(name, value string) {
	if c.HTTPClient.Jar == nil {
		return
	}
	c.HTTPClient.Jar.SetCookies(c.base, []*http.Cookie{{
		Name:  name,
		Value: value,
		Path:  "/",
	}})
}
