// Package questionnaire parses questionnaire files, validates every record
// and picks the oldest and the youngest respondent.
//
// A questionnaire file is UTF-8 text made of blocks separated by one or more
// blank lines. The first six non-blank lines of a block are, in order:
//
//	surname
//	given name
//	gender      (м, ж, мужской, женский)
//	birth date  (DD.MM.YYYY, "-" and "/" also accepted as separators)
//	contact     (11-digit phone starting with 7 or 8, or an email at gmail.com, mail.ru, yandex.ru)
//	city        (optionally prefixed with "г. ")
//
// Lines after the sixth are ignored. A block yields a Person only when all six
// fields are valid; anything else drops the whole block.
//
// # Usage
//
//	content, err := questionnaire.ReadSource(path)
//	if err != nil {
//	    return err
//	}
//	today := time.Now()
//	people := questionnaire.Parse(content, today)
//	oldest, youngest, ok := questionnaire.Extremes(people)
//
// The current date is passed explicitly to every function that depends on
// it, so a whole run sees one consistent "today".
package questionnaire
