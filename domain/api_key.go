package domain

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// ApiKey is an opaque bearer credential for the JSON API. Keys expire
// and are never refreshed in place.
type ApiKey struct {
	ID      uuid.UUID `json:"-"`
	UserID  uuid.UUID `json:"-"`
	Key     string    `json:"key"`
	Expires time.Time `json:"expires"`
	Created time.Time `json:"created"`
}

const apiKeyLifetime = 30 * 24 * time.Hour

// GenerateAPIKey returns a new random key with the service prefix.
func GenerateAPIKey() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return "bm_" + base64.RawURLEncoding.EncodeToString(buf)
}

// DefaultKeyExpiry returns the expiry time for a key issued now.
func DefaultKeyExpiry() time.Time {
	return time.Now().Add(apiKeyLifetime)
}

// IsValid reports whether the key can still authenticate requests.
func (k *ApiKey) IsValid() bool {
	return k.Key != "" && k.Expires.After(time.Now())
}
