package config

import "strings"

// falsyTokens are the recognized false values for boolean keys,
// compared case-insensitively. Anything else, including "1" and
// arbitrary text, is true. The empty string is deliberately false so
// that FOO= in the environment disables a flag set in .dazelrc.
var falsyTokens = map[string]bool{
	"":      true,
	"0":     true,
	"false": true,
	"no":    true,
	"off":   true,
}

// parseBool coerces a raw string value to a boolean.
func parseBool(raw string) bool {
	return !falsyTokens[strings.ToLower(strings.TrimSpace(raw))]
}

// parseList coerces a comma-separated string into an ordered list of
// trimmed tokens. Empty tokens are dropped, so "a, ,b," yields [a b].
func parseList(raw string) []string {
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}
