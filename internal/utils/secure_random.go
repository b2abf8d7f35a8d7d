package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// MinSecretBytes is the smallest secret GenerateSecret will produce; HS256 wants at least 256 bits.
const MinSecretBytes = 32

// GenerateSecret returns n random bytes, URL-safe base64 encoded without padding.
// It is used to mint SERVICE_JWT_SECRET and CARD_KEY_SECRET values.
func GenerateSecret(n int) (string, error) {
	if n < MinSecretBytes {
		return "", fmt.Errorf("secret length must be at least %d bytes, got %d", MinSecretBytes, n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
