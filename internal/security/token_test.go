package security

import "testing"

func TestValidWebhookToken(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
		ok   bool
	}{
		{"Match", "abc123", "abc123", true},
		{"Mismatch", "abc124", "abc123", false},
		{"Prefix only", "abc", "abc123", false},
		{"Empty request token", "", "abc123", false},
		{"Empty secret", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ok := ValidWebhookToken(tt.got, tt.want); ok != tt.ok {
				t.Errorf("ValidWebhookToken(%q, %q) = %v, want %v", tt.got, tt.want, ok, tt.ok)
			}
		})
	}
}
