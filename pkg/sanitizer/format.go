package sanitizer

// NormalizePhone strips formatting to enable consistent comparison: only the
// ASCII digits remain.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}
