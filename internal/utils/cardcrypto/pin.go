package cardcrypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPIN returns the SHA-256 digest of pin as 64 lowercase hex characters.
func HashPIN(pin string) string {
	hasher := sha256.New()
	hasher.Write([]byte(pin))
	return hex.EncodeToString(hasher.Sum(nil))
}

// VerifyPIN compares pin with a stored digest in constant time.
func VerifyPIN(pin string, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPIN(pin)), []byte(storedHash)) == 1
}
