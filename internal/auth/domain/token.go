package domain

import "time"

// Token lifetimes. Activation and reset tokens share a signing domain but
// not a lifetime.
const (
	AccessTokenTTL     = 15 * time.Minute
	RefreshTokenTTL    = 7 * 24 * time.Hour
	ActivationTokenTTL = 24 * time.Hour
	ResetTokenTTL      = 15 * time.Minute
)

// TokenPair is what a successful login hands to the cookie binder.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
