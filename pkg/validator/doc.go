// Package validator provides small, composable validation rules and the
// Apply helper that evaluates them.
//
// A Rule couples a boolean Check function with translation-friendly error
// metadata. Apply runs every rule and aggregates the failures into a
// ValidationErrors slice that satisfies the error interface, so a caller gets
// every broken field from a single error return.
//
// # Architecture
//
// Each source file groups a family of rules (`pattern_rules.go`,
// `format_rules.go`, `date_rules.go`, ...). Every exported constructor simply
// returns a Rule; there is no global state, therefore the package is
// stateless and goroutine-safe.
//
// Core building blocks:
//   - Rule              – Check func plus error meta
//   - ValidationError   – a single failure with an i18n key
//   - ValidationErrors  – slice type implementing error
//   - Any / Valid       – combinators for alternatives and pre-computed outcomes
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MatchesPattern("surname", surname, namePattern, "name"),
//	    validator.InListString("gender", gender, []string{"м", "ж"}),
//	    validator.Any("contact", "must be a phone or an email",
//	        validator.PhoneDigits("contact", digits, 11, "7", "8"),
//	        validator.EmailWithDomains("contact", contact, domains),
//	    ),
//	)
//	if errors.Is(err, validator.ErrValidationFailed) {
//	    fields := validator.ExtractValidationErrors(err).Fields()
//	    // ...
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed through errors.Is and can be
// recovered with errors.As or ExtractValidationErrors. Has and Fields inspect
// individual fields.
package validator
