// Package i18n provides message catalogs with named placeholders and
// CLDR-aware pluralisation.
//
// Catalogs are loaded once through a TranslationAdapter. MapAdapter serves
// in-memory data; FSAdapter reads every YAML file of a directory in any
// fs.FS, which covers embed.FS catalogs and on-disk overrides alike.
// The YAML layout is keyed by language at the root:
//
//	ru:
//	  report:
//	    age:
//	      one: "Возраст: %{count} год"
//	      few: "Возраст: %{count} года"
//	      many: "Возраст: %{count} лет"
//
// # Usage
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//	    i18n.WithDefaultLanguage("ru"),
//	)
//	if err != nil {
//	    return err
//	}
//	tr.T("ru", "report.oldest")
//	tr.N("ru", "report.age", 35)
//
// Plural categories come from golang.org/x/text/feature/plural, so languages
// with several plural forms work without extra configuration.
//
// # Error Handling
//
// Adapter failures are returned from NewTranslator wrapped with the sentinel
// errors declared in errors.go. Missing keys never fail: T and N fall back to
// the default language and then to the key itself.
package i18n
