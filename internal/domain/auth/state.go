package auth

import (
	"crypto/rand"
	"fmt"
)

const (
	stateLength   = 32
	stateAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// NewState produces the anti-CSRF state bound to one login attempt: 32
// characters drawn uniformly from a 62-symbol alphanumeric alphabet.
func NewState() (string, error) {
	// Rejection sampling keeps the draw uniform: 248 is the largest
	// multiple of 62 below 256.
	const limit = byte(248)
	out := make([]byte, 0, stateLength)
	buf := make([]byte, stateLength)
	for len(out) < stateLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random state bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, stateAlphabet[int(b)%len(stateAlphabet)])
			if len(out) == stateLength {
				break
			}
		}
	}
	return string(out), nil
}
