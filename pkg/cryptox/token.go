package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Random value sizes in bytes, before base64url encoding.
const (
	TokenSize128 = 16 // throwaway passwords
	TokenSize256 = 32 // HMAC signing secrets, peppers
)

// fingerprintBytes is how much of the SHA-256 digest a fingerprint keeps.
const fingerprintBytes = 8

// GenerateToken returns size random bytes encoded as unpadded base64url.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustGenerateToken panics where GenerateToken would fail.
func MustGenerateToken(size int) string {
	token, err := GenerateToken(size)
	if err != nil {
		panic(err)
	}
	return token
}

// FingerprintToken identifies a token in logs without revealing it. Equal
// tokens give equal fingerprints; the token cannot be recovered.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:fingerprintBytes])
}
