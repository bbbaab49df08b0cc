package jwtx

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Domain names an independent signing namespace. A token minted in one
// domain is never accepted in another.
type Domain string

const (
	DomainAccess     Domain = "access"
	DomainRefresh    Domain = "refresh"
	DomainActivation Domain = "activation" // activation and password reset links
)

var (
	// ErrRejected is the single condition callers need to test for.
	ErrRejected = errors.New("jwtx: token rejected")

	ErrTokenInvalid = fmt.Errorf("%w: invalid token", ErrRejected)
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrRejected)

	ErrUnknownDomain = errors.New("jwtx: unknown signing domain")
	ErrSecrets       = errors.New("jwtx: invalid signing secrets")
)

// Secrets holds one HMAC secret per signing domain.
type Secrets struct {
	Access     []byte
	Refresh    []byte
	Activation []byte
}

// Validate checks every secret is present and that no two domains share one.
func (s Secrets) Validate() error {
	named := []struct {
		name string
		key  []byte
	}{
		{"access", s.Access},
		{"refresh", s.Refresh},
		{"activation", s.Activation},
	}
	for i, a := range named {
		if len(a.key) == 0 {
			return fmt.Errorf("%w: %s secret is empty", ErrSecrets, a.name)
		}
		for _, b := range named[i+1:] {
			if bytes.Equal(a.key, b.key) {
				return fmt.Errorf("%w: %s and %s secrets must differ", ErrSecrets, a.name, b.name)
			}
		}
	}
	return nil
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// WithLeeway allows small clock skew when validating exp/nbf.
func WithLeeway(d time.Duration) Option {
	return func(c *Codec) { c.leeway = d }
}

// Codec signs and verifies HS256 tokens, one secret per domain.
type Codec struct {
	issuer string
	keys   map[Domain][]byte
	now    func() time.Time
	leeway time.Duration
}

// NewCodec builds a codec. Secrets are copied so later mutation by the
// caller has no effect.
func NewCodec(issuer string, secrets Secrets, opts ...Option) (*Codec, error) {
	if err := secrets.Validate(); err != nil {
		return nil, err
	}

	c := &Codec{
		issuer: issuer,
		keys: map[Domain][]byte{
			DomainAccess:     bytes.Clone(secrets.Access),
			DomainRefresh:    bytes.Clone(secrets.Refresh),
			DomainActivation: bytes.Clone(secrets.Activation),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Issue mints a token for subject in domain that expires after ttl.
func (c *Codec) Issue(domain Domain, subject string, ttl time.Duration) (string, error) {
	key, ok := c.keys[domain]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}
	if subject == "" {
		return "", errors.New("jwtx: empty subject")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("jwtx: ttl must be positive, got %s", ttl)
	}

	claims := NewClaims(domain, subject, c.issuer, ttl, c.now().UTC())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify checks token against domain's secret and returns the subject.
// Every failure wraps ErrRejected; expiry is reported as ErrTokenExpired
// only once the signature has been proven.
func (c *Codec) Verify(domain Domain, token string) (string, error) {
	claims, err := c.Decode(domain, token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Decode is Verify returning the full claims.
func (c *Codec) Decode(domain Domain, token string) (*Claims, error) {
	key, ok := c.keys[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(string(domain)),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(c.now),
		jwt.WithLeeway(c.leeway),
	}
	if c.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(c.issuer))
	}
	parser := jwt.NewParser(parserOpts...)

	parsed, err := parser.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: invalid claims", ErrTokenInvalid)
	}
	return claims, nil
}
