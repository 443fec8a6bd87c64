package ai

import (
	"regexp"
	"strings"
)

var (
	// first SELECT up to and including the nearest semicolon, across lines
	terminatedSelect = regexp.MustCompile(`(?i)SELECT[\s\S]+?;`)

	// SELECT through end of text
	openSelect = regexp.MustCompile(`(?i)SELECT[\s\S]+`)
)

// ExtractSQL pulls the first SELECT statement out of free-form model output.
//
// Tiers, in order: a semicolon-terminated statement; SELECT to end of text;
// the whole input. The last tier hands back non-SQL unchanged and leaves it to
// execution to fail.
func ExtractSQL(generated string) string {
	if m := terminatedSelect.FindString(generated); m != "" {
		return strings.TrimSpace(m)
	}
	if m := openSelect.FindString(generated); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(generated)
}
