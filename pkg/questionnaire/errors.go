package questionnaire

import "errors"

var (
	// ErrIncompleteBlock is returned when a block has fewer than six non-blank lines.
	ErrIncompleteBlock = errors.New("questionnaire: block has fewer than six non-blank lines")

	// ErrInvalidRecord is returned when at least one field of a block fails validation.
	// It is joined with the validator.ValidationErrors describing the fields.
	ErrInvalidRecord = errors.New("questionnaire: invalid record")

	// ErrSourceNotFound is returned when the questionnaire file does not exist.
	ErrSourceNotFound = errors.New("questionnaire: source file not found")

	// ErrReadSource is returned for any other failure while reading the file.
	ErrReadSource = errors.New("questionnaire: failed to read source file")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("questionnaire: source file is not valid UTF-8")
)
