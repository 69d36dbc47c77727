package questionnaire

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/dmitrymomot/anketa/pkg/sanitizer"
	"github.com/dmitrymomot/anketa/pkg/validator"
)

// FieldCount is the number of positional fields in a record block.
const FieldCount = 6

// A newline, any run of whitespace (further newlines included), a newline.
// RE2's \s is ASCII only, so vertical tab, NEL, the Unicode separators and
// the information separators U+001C..U+001F are listed explicitly.
var blockSeparator = regexp.MustCompile(`\n[\s\v\x{85}\p{Z}\x{1c}-\x{1f}]*\n`)

// isBlankRune matches the same characters as blockSeparator.
func isBlankRune(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Rejection describes a block that did not produce a Person.
type Rejection struct {
	// Index is the zero-based position of the block in the file.
	Index int
	Err   error
}

// ScanResult is the outcome of scanning a whole questionnaire file.
type ScanResult struct {
	Blocks   int
	People   []Person
	Rejected []Rejection
}

// SplitBlocks trims content and splits it into blocks wherever one or more
// blank lines occur. Block lines are kept verbatim.
func SplitBlocks(content string) []Block {
	content = strings.TrimFunc(content, isBlankRune)
	if content == "" {
		return nil
	}

	parts := blockSeparator.Split(content, -1)
	blocks := make([]Block, 0, len(parts))
	for _, part := range parts {
		blocks = append(blocks, Block{Lines: strings.Split(part, "\n")})
	}
	return blocks
}

// ParseBlock validates a block and builds a Person from its first six
// non-blank lines. It returns ErrIncompleteBlock for short blocks and an
// error wrapping ErrInvalidRecord and validator.ValidationErrors when any
// field is invalid.
func ParseBlock(b Block, today time.Time) (Person, error) {
	lines := sanitizer.NonBlankLines(b.Lines)
	if len(lines) < FieldCount {
		return Person{}, ErrIncompleteBlock
	}

	var (
		surname = sanitizer.Field(lines[0])
		name    = sanitizer.Field(lines[1])
		gender  = lines[2]
		birth   = lines[3]
		contact = sanitizer.Field(lines[4])
		city    = sanitizer.Field(lines[5])
	)

	birthDate, birthOK := ParseDate(birth, today)

	if err := validator.Apply(
		NameRule("surname", surname),
		NameRule("name", name),
		GenderRule("gender", gender),
		validator.Valid("birth_date", birthOK, "must be a real date DD.MM.YYYY not earlier than 1900 and not later than the current year"),
		ContactRule("contact", contact),
		CityRule("city", city),
	); err != nil {
		return Person{}, errors.Join(ErrInvalidRecord, err)
	}

	g, _ := ParseGender(gender)
	kind, _ := ClassifyContact(contact)

	p := Person{
		Surname:     surname,
		Name:        name,
		Gender:      g,
		BirthDate:   birthDate,
		Contact:     contact,
		ContactKind: kind,
		City:        city,
		Age:         Age(birthDate, today),
		Lines:       slices.Clone(b.Lines),
	}
	if kind == ContactPhone {
		p.Phone = sanitizer.NormalizePhone(contact)
	}

	return p, nil
}

// Scan parses every block of content. Valid records keep file order.
func Scan(content string, today time.Time) ScanResult {
	blocks := SplitBlocks(content)
	result := ScanResult{Blocks: len(blocks)}

	for i, b := range blocks {
		p, err := ParseBlock(b, today)
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{Index: i, Err: err})
			continue
		}
		result.People = append(result.People, p)
	}

	return result
}

// Parse returns the valid records of content in file order. Invalid and
// incomplete blocks are skipped silently.
func Parse(content string, today time.Time) []Person {
	return Scan(content, today).People
}
