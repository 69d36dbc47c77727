package sanitizer

import "strings"

// FilterEmpty removes whitespace-only entries.
func FilterEmpty(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if strings.TrimSpace(item) != "" {
			result = append(result, item)
		}
	}
	return result
}

func TrimStringSlice(slice []string) []string {
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = strings.TrimSpace(item)
	}
	return result
}

// NonBlankLines trims every line and drops the blank ones, keeping order.
// Unlike a form cleanup it keeps duplicates: position carries meaning.
func NonBlankLines(lines []string) []string {
	return Apply(lines,
		TrimStringSlice,
		FilterEmpty,
	)
}
