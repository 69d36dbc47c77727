package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Local part is limited to the characters mailbox providers accept in practice.
	emailLocalDomainRegex = regexp.MustCompile(`^([a-zA-Z0-9._%+\-]{1,64})@([^@]+)$`)

	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// PhoneDigits validates a phone number already reduced to its digits: exact
// length and one of the allowed leading prefixes (country or trunk code).
func PhoneDigits(field, digits string, length int, prefixes ...string) Rule {
	return Rule{
		Check: func() bool {
			if len(digits) != length || !numericStringRegex.MatchString(digits) {
				return false
			}
			if len(prefixes) == 0 {
				return true
			}
			for _, p := range prefixes {
				if strings.HasPrefix(digits, p) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a %d-digit phone number starting with %s", length, strings.Join(prefixes, " or ")),
			TranslationKey: "validation.phone_digits",
			TranslationValues: map[string]any{
				"field":    field,
				"length":   length,
				"prefixes": prefixes,
			},
		},
	}
}

// EmailWithDomains validates an email address whose domain is one of the
// allowed domains. Domain comparison ignores case.
func EmailWithDomains(field, value string, domains []string) Rule {
	return Rule{
		Check: func() bool {
			m := emailLocalDomainRegex.FindStringSubmatch(value)
			if m == nil {
				return false
			}
			for _, d := range domains {
				if strings.EqualFold(m[2], d) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be an email address at %s", strings.Join(domains, ", ")),
			TranslationKey: "validation.email_domain",
			TranslationValues: map[string]any{
				"field":   field,
				"domains": domains,
			},
		},
	}
}
