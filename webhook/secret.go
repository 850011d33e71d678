package webhook

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
)

// SecretPrefix marks a secret in its distributable, base64-encoded form.
const SecretPrefix = "whsec_"

// secretSize is the number of random bytes produced by GenerateSecret.
const secretSize = 24

// Secret is the raw HMAC key shared by sender and receiver.
type Secret []byte

// NewSecret decodes a secret in its "whsec_<base64>" form. The prefix is
// optional. Decoding happens once, here; it returns ErrInvalidSecret when
// the remainder is not valid base64 or is empty.
func NewSecret(s string) (Secret, error) {
	encoded := strings.TrimPrefix(s, SecretPrefix)

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, wrap(ErrInvalidSecret, err)
	}

	if len(key) == 0 {
		return nil, ErrInvalidSecret
	}

	return Secret(key), nil
}

// NewSecretFromRaw returns a Secret holding a copy of raw.
func NewSecretFromRaw(raw []byte) Secret {
	key := make([]byte, len(raw))
	copy(key, raw)

	return Secret(key)
}

// GenerateSecret returns a new random secret.
func GenerateSecret() (Secret, error) {
	key := make([]byte, secretSize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	return Secret(key), nil
}

// String returns the secret in its "whsec_<base64>" form.
func (s Secret) String() string {
	return SecretPrefix + base64.StdEncoding.EncodeToString(s)
}
