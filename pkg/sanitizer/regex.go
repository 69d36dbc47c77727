package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Phone and numeric extraction. RE2's \D is ASCII only, so digits of
	// other scripts are removed too.
	nonDigitRegex = regexp.MustCompile(`\D`)
)
