package session

import (
	"crypto/rand"
	"encoding/base64"
)

// tokenBytes is the amount of randomness per token. 32 bytes (256 bits)
// makes guessing or enumerating tokens infeasible.
const tokenBytes = 32

// NewToken returns a cryptographically secure random session token encoded
// as URL-safe base64 without padding.
//
// A failing randomness source is unrecoverable: NewToken panics rather than
// degrading to a weaker generator.
func NewToken() string {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		panic("session: randomness source failed: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
