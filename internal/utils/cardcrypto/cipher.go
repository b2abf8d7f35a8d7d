package cardcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/SscSPs/corebank/internal/apperrors"
)

const nonceSize = 12

// CardCipher protects card numbers at rest.
type CardCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// AESGCMCipher encrypts with AES-256-GCM and a fresh random nonce per call.
// Output is "<keyID>:<base64(nonce|sealed)>" so older keys keep decrypting after rotation.
type AESGCMCipher struct {
	keys KeyProvider
}

// NewAESGCMCipher creates a cipher backed by keys.
func NewAESGCMCipher(keys KeyProvider) *AESGCMCipher {
	return &AESGCMCipher{keys: keys}
}

var _ CardCipher = (*AESGCMCipher)(nil)

func (c *AESGCMCipher) Encrypt(plaintext string) (string, error) {
	keyID, key := c.keys.CurrentKey()
	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("%w: reading nonce: %v", apperrors.ErrCrypto, err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(plaintext), []byte(keyID))
	return keyID + ":" + base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *AESGCMCipher) Decrypt(ciphertext string) (string, error) {
	keyID, encoded, ok := strings.Cut(ciphertext, ":")
	if !ok || keyID == "" {
		return "", fmt.Errorf("%w: malformed ciphertext", apperrors.ErrCrypto)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: malformed ciphertext encoding: %v", apperrors.ErrCrypto, err)
	}
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", apperrors.ErrCrypto)
	}
	key, err := c.keys.Key(keyID)
	if err != nil {
		return "", err
	}
	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}
	plain, err := aead.Open(nil, raw[:nonceSize], raw[nonceSize:], []byte(keyID))
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed: %v", apperrors.ErrCrypto, err)
	}
	return string(plain), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCrypto, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCrypto, err)
	}
	return aead, nil
}
