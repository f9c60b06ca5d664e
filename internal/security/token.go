package security

import "crypto/subtle"

// ValidWebhookToken compares the token Slack sent with the configured secret
// in constant time. An empty secret never validates.
func ValidWebhookToken(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
