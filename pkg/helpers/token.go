package helpers

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"strings"
)

const (
	TokenSeparator    = "|"
	TokenSecretLength = 40
)

// PlainTextToken is what the client receives: "<id>|<secret>".
// Only Hash is persisted.
type PlainTextToken struct {
	ID     string
	Secret string
	Hash   string
}

func (t PlainTextToken) String() string {
	return t.ID + TokenSeparator + t.Secret
}

// NewPlainTextToken draws a fresh secret for the given token id.
func NewPlainTextToken(r io.Reader, id string) (PlainTextToken, error) {
	secret, err := RandomString(r, TokenSecretLength)
	if err != nil {
		return PlainTextToken{}, err
	}
	return PlainTextToken{ID: id, Secret: secret, Hash: HashTokenSecret(secret)}, nil
}

// HashTokenSecret returns the hex SHA-256 of the secret half.
func HashTokenSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// SplitPlainTextToken parses "<id>|<secret>". Both halves must be non-empty.
func SplitPlainTextToken(plain string) (id, secret string, ok bool) {
	id, secret, found := strings.Cut(strings.TrimSpace(plain), TokenSeparator)
	if !found || id == "" || secret == "" {
		return "", "", false
	}
	return id, secret, true
}

// TokenSecretMatches compares in constant time.
func TokenSecretMatches(hash, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(hash), []byte(HashTokenSecret(secret))) == 1
}
