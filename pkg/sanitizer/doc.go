// Package sanitizer provides helper functions for cleaning and normalising
// user supplied text before it is validated.
//
// The helpers never return errors and never panic: they always produce a
// usable (possibly empty) value. They are stateless and safe for concurrent
// use.
//
//   - Strings – trimming, lower-casing and Unicode NFC composition.
//   - Format – phone number digit extraction.
//   - Collections – line slice cleanup.
//
// Apply and Compose build pipelines from these functions:
//
//	clean := sanitizer.Compose(
//	    sanitizer.NormalizeUnicode,
//	    sanitizer.Trim,
//	)
//
//	name := clean("  Ёлкин \n") // "Ёлкин"
package sanitizer
