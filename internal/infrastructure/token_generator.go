package infrastructure

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateTokenValue returns a 40-hex-character opaque bearer value.
func GenerateTokenValue() (string, error) {
	var b [20]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
