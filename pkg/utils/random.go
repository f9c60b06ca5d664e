package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRequestID returns a random 16-character hex identifier used to
// correlate log lines for one webhook call.
func NewRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
