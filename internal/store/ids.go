package store

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// newID returns prefix-<suffix> where suffix is 8 lowercase base32 chars (40 bits).
func newID(prefix string) (string, error) {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:])), nil
}
