package openai

import (
	"regexp"
	"strings"
)

// unquotedKey matches an object key that lost its opening quote but kept
// the closing one, e.g. `{ concept": "x"}` or `, importance": 5`.
var unquotedKey = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z_ ]*)":`)

// repairJSON fixes common JSON defects in model output before parsing.
func repairJSON(s string) string {
	return unquotedKey.ReplaceAllString(s, `$1"$2":`)
}

// stripFences removes surrounding markdown code fences from model output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
