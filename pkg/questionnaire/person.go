package questionnaire

import (
	"strings"
	"time"
)

// Gender is the normalized gender of a respondent.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ContactKind tells which contact form matched.
type ContactKind string

const (
	ContactPhone ContactKind = "phone"
	ContactEmail ContactKind = "email"
)

// Block is one raw record block: the verbatim lines between blank-line
// separators, indentation and inner blank lines included.
type Block struct {
	Lines []string
}

// Person is a fully validated questionnaire record.
type Person struct {
	Surname     string
	Name        string
	Gender      Gender
	BirthDate   time.Time
	Contact     string
	ContactKind ContactKind
	// Phone holds the 11 normalized digits when ContactKind is ContactPhone.
	Phone string
	City  string
	Age   int
	// Lines are the source block lines exactly as read.
	Lines []string
}

// Text returns the source block as it appeared in the file, without the
// surrounding whitespace.
func (p Person) Text() string {
	return strings.TrimSpace(strings.Join(p.Lines, "\n"))
}
