package security

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

const maxInputBytes = 1000

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeString trims and bounds inbound chat text.
func SanitizeString(input string) string {
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Limit length without splitting a rune
	if len(input) > maxInputBytes {
		cut := maxInputBytes
		for cut > 0 && !utf8.RuneStart(input[cut]) {
			cut--
		}
		input = input[:cut]
	}

	return input
}

// StripTags removes all HTML tags and decodes entities, leaving plain text.
// Provider answers arrive with markup such as <i>Moby-Dick</i>.
func StripTags(input string) string {
	return html.UnescapeString(htmlPolicy.Sanitize(input))
}
