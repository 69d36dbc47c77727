package i18n

import "errors"

var (
	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Catalog filesystem operations
	ErrLoadingTranslationsCancelled = errors.New("loading translations canceled before starting")
	ErrFailedToReadDirectory        = errors.New("failed to read translations directory")
	ErrFailedToReadFile             = errors.New("failed to read translation file")
	ErrFailedToParseFile            = errors.New("failed to parse translation file")
	ErrNoTranslationFiles           = errors.New("no translation files found")
)
