package questionnaire

import (
	"regexp"

	"github.com/dmitrymomot/anketa/pkg/sanitizer"
	"github.com/dmitrymomot/anketa/pkg/validator"
)

// Letters are listed explicitly: Ё and ё sit outside the А-Я and а-я ranges.
var (
	namePattern = regexp.MustCompile(`^[А-ЯЁ][а-яё]+(?:-[А-ЯЁ][а-яё]+)?$`)
	cityPattern = regexp.MustCompile(`^(?:г\. )?[А-ЯЁ][а-яё]+(?:[\s\p{Zs}][А-ЯЁ][а-яё]+)*$`)
)

// AllowedEmailDomains lists the mail providers accepted in the contact field.
var AllowedEmailDomains = []string{"gmail.com", "mail.ru", "yandex.ru"}

const (
	phoneLength = 11
)

var (
	phonePrefixes = []string{"7", "8"}

	maleTokens   = []string{"м", "мужской"}
	femaleTokens = []string{"ж", "женский"}
	genderTokens = append(append([]string{}, maleTokens...), femaleTokens...)

	genderToken = sanitizer.Compose(sanitizer.NormalizeUnicode, sanitizer.TrimToLower)
)

// NameRule validates a surname or a given name: a capitalized Cyrillic word,
// optionally followed by a hyphen and a second capitalized word.
func NameRule(field, value string) validator.Rule {
	return validator.MatchesPattern(field, sanitizer.Field(value), namePattern, "capitalized Cyrillic name")
}

// IsValidName reports whether value is a valid surname or given name.
func IsValidName(value string) bool {
	return validator.Apply(NameRule("name", value)) == nil
}

// GenderRule validates the gender field. Case is ignored.
func GenderRule(field, value string) validator.Rule {
	return validator.InListString(field, genderToken(value), genderTokens)
}

// IsValidGender reports whether value is one of the accepted gender tokens.
func IsValidGender(value string) bool {
	_, ok := ParseGender(value)
	return ok
}

// ParseGender maps a gender token to a Gender.
func ParseGender(value string) (Gender, bool) {
	token := genderToken(value)
	switch {
	case validator.Apply(validator.InListString("gender", token, maleTokens)) == nil:
		return GenderMale, true
	case validator.Apply(validator.InListString("gender", token, femaleTokens)) == nil:
		return GenderFemale, true
	default:
		return "", false
	}
}

func phoneRule(field, value string) validator.Rule {
	return validator.PhoneDigits(field, sanitizer.NormalizePhone(value), phoneLength, phonePrefixes...)
}

func emailRule(field, value string) validator.Rule {
	return validator.EmailWithDomains(field, sanitizer.Trim(value), AllowedEmailDomains)
}

// ContactRule validates the contact field. A phone is accepted in any
// formatting as long as 11 digits remain after dropping everything else and
// the first one is 7 or 8; an email must belong to AllowedEmailDomains.
func ContactRule(field, value string) validator.Rule {
	return validator.Any(field, "must be a phone number or an email at an allowed domain",
		phoneRule(field, value),
		emailRule(field, value),
	)
}

// ClassifyContact reports which contact form value matches.
func ClassifyContact(value string) (ContactKind, bool) {
	switch {
	case validator.Apply(emailRule("contact", value)) == nil:
		return ContactEmail, true
	case validator.Apply(phoneRule("contact", value)) == nil:
		return ContactPhone, true
	default:
		return "", false
	}
}

// IsValidContact reports whether value is an accepted phone number or email.
func IsValidContact(value string) bool {
	return validator.Apply(ContactRule("contact", value)) == nil
}

// CityRule validates a city: one or more capitalized Cyrillic words separated
// by single whitespace characters, optionally prefixed with "г. ". Hyphenated names such as
// Санкт-Петербург do not match.
func CityRule(field, value string) validator.Rule {
	return validator.MatchesPattern(field, sanitizer.Field(value), cityPattern, "city name")
}

// IsValidCity reports whether value is a valid city.
func IsValidCity(value string) bool {
	return validator.Apply(CityRule("city", value)) == nil
}
