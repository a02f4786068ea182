package objprint

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// apply cuts text, which ends in nl, down to the rule's limit. Character
// limits count the line terminator; width limits measure the text alone.
func (r trimRule) apply(text, nl string) string {
	if r.width {
		body := strings.TrimSuffix(text, nl)
		if runewidth.StringWidth(body) <= r.max {
			return text
		}
		return runewidth.Truncate(body, r.max, "") + nl
	}
	if utf8.RuneCountInString(text) <= r.max {
		return text
	}
	return string([]rune(text)[:r.max]) + nl
}
