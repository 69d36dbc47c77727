// Package report prints the oldest and youngest respondents found in a
// questionnaire file.
//
// Output strings live in YAML catalogs embedded into the binary and are
// resolved through pkg/i18n, so the age line picks the right plural form
// ("35 лет", "22 года", "21 год"). Russian is the default language; an
// English catalog is shipped as well.
package report
