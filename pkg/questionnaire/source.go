package questionnaire

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadSource reads the whole questionnaire file as UTF-8 text. A leading
// UTF-8 byte order mark is dropped. Any other encoding, UTF-16 with a byte
// order mark included, is rejected with ErrInvalidEncoding.
func ReadSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Join(ErrSourceNotFound, err)
		}
		return "", errors.Join(ErrReadSource, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", errors.Join(ErrReadSource, err)
	}

	// The UTF-8 decoder substitutes U+FFFD for bad bytes, so validate first.
	if !utf8.Valid(raw) {
		return "", ErrInvalidEncoding
	}

	data, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return "", errors.Join(ErrInvalidEncoding, err)
	}

	return string(data), nil
}
