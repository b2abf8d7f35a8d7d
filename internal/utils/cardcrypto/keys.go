package cardcrypto

import (
	"crypto/sha256"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/corebank/internal/apperrors"
	"golang.org/x/crypto/hkdf"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// KeyProvider supplies card-cipher keys by id. CurrentKey is used for new ciphertexts.
type KeyProvider interface {
	CurrentKey() (string, []byte)
	Key(id string) ([]byte, error)
}

// StaticKeyProvider serves a fixed key set loaded at startup.
type StaticKeyProvider struct {
	keys    map[string][]byte
	current string
}

// NewStaticKeyProvider validates keys and returns a provider whose current key is current.
func NewStaticKeyProvider(keys map[string][]byte, current string) (*StaticKeyProvider, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no card keys configured", apperrors.ErrValidation)
	}
	copied := make(map[string][]byte, len(keys))
	for id, key := range keys {
		if id == "" || strings.Contains(id, ":") {
			return nil, fmt.Errorf("%w: invalid card key id %q", apperrors.ErrValidation, id)
		}
		if len(key) != KeySize {
			return nil, fmt.Errorf("%w: card key %q must be %d bytes, got %d", apperrors.ErrValidation, id, KeySize, len(key))
		}
		copied[id] = append([]byte(nil), key...)
	}
	if _, ok := copied[current]; !ok {
		return nil, fmt.Errorf("%w: current card key %q not in key set", apperrors.ErrValidation, current)
	}
	return &StaticKeyProvider{keys: copied, current: current}, nil
}

func (p *StaticKeyProvider) CurrentKey() (string, []byte) {
	return p.current, p.keys[p.current]
}

func (p *StaticKeyProvider) Key(id string) ([]byte, error) {
	key, ok := p.keys[id]
	if !ok {
		return nil, fmt.Errorf("%w: unknown card key id %q", apperrors.ErrCrypto, id)
	}
	return key, nil
}

var _ KeyProvider = (*StaticKeyProvider)(nil)

// DeriveKey stretches a configured master secret into a 32-byte key with HKDF-SHA256.
func DeriveKey(secret, salt, info string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: card key secret is empty", apperrors.ErrValidation)
	}
	reader := hkdf.New(sha256.New, []byte(secret), []byte(salt), []byte(info))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("deriving card key: %w", err)
	}
	return key, nil
}

// NewDerivedKeyProvider derives a single key from secret and serves it under keyID.
func NewDerivedKeyProvider(secret, salt, keyID string) (*StaticKeyProvider, error) {
	key, err := DeriveKey(secret, salt, "card-cipher/"+keyID)
	if err != nil {
		return nil, err
	}
	return NewStaticKeyProvider(map[string][]byte{keyID: key}, keyID)
}
