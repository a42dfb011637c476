// Package markup turns markup-bearing forum text into plain text
// suitable for vectorisation. Both functions are pure and total:
// they never fail and map empty input to empty output.
package markup

import (
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for text cleaning performance.
var (
	allTags     = regexp.MustCompile(`<[^>]+>`)
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// StripTags removes every markup tag (anything matching <...>) from
// the text. HTML entities are left as-is.
func StripTags(text string) string {
	return allTags.ReplaceAllString(text, "")
}

// Clean prepares text for vectorisation: tags are stripped, every
// character that is not a letter, digit, underscore or whitespace
// becomes a single space, and the result is lowercased and trimmed.
func Clean(text string) string {
	text = StripTags(text)
	text = punctuation.ReplaceAllString(text, " ")
	return strings.TrimSpace(strings.ToLower(text))
}
