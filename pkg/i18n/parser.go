package i18n

import "context"

// Parser is an interface for parsing internationalization (i18n) content from various file formats.
type Parser interface {
	// Parse processes the given content string and returns a nested map structure.
	// The outer map is keyed by locale identifier, the inner map holds
	// translation keys and their values.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file extension
	// The extension may or may not include a leading dot (e.g. both "yaml" and ".yaml" are valid)
	SupportsFileExtension(ext string) bool
}
