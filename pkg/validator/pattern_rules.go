package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesRegex validates against custom patterns. Compiles regex on each call - cache externally for performance.
func MatchesRegex(field, value string, pattern string, description string) Rule {
	return MatchesPattern(field, value, regexp.MustCompile(pattern), description)
}

// MatchesPattern validates against a pre-compiled pattern. Anchoring is the
// caller's job: a pattern without ^ and $ accepts partial matches.
func MatchesPattern(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern.String(),
				"description": description,
			},
		},
	}
}
