package config

import (
	"fmt"
	"os"
	"strings"
)

// parseRCFile reads a .dazelrc file into raw key/value assignments.
// Syntax is one KEY=value per line; blank lines and lines starting with
// '#' are skipped; values may be wrapped in single or double quotes.
// Assignments to unrecognized keys are collected as warnings and
// otherwise ignored.
func parseRCFile(path string) (values map[string]string, warnings []string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	values = make(map[string]string)
	for i, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			return nil, nil, &Error{
				Kind:    ParseFailure,
				Line:    i + 1,
				Message: fmt.Sprintf("expected KEY=value, got %q", trimmed),
			}
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, nil, &Error{
				Kind:    ParseFailure,
				Line:    i + 1,
				Message: "empty key",
			}
		}

		if !knownKeys[key] {
			warnings = append(warnings, fmt.Sprintf("%s line %d: unrecognized key %q ignored", RCFileName, i+1, key))
			continue
		}

		values[key] = unquote(strings.TrimSpace(value))
	}

	return values, warnings, nil
}

// unquote strips one matching pair of surrounding quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
