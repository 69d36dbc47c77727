package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no default language option is given.
const DefaultLanguage = "en"

// Translator resolves message keys against catalogs loaded through a
// TranslationAdapter. It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, fmt.Errorf("adapter is nil")
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:        adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns a sorted list of language codes that have translations available.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a requested one is unavailable.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "age.years.few" will traverse m["age"] then ["years"] then ["few"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// lookup finds a string value for key in lang, then in the default language.
func (t *Translator) lookup(lang, key string) (string, bool) {
	for _, l := range []string{lang, t.defaultLang} {
		langMap, ok := t.translations[l]
		if !ok {
			continue
		}
		val, ok := t.getTranslation(langMap, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		case int, int64, float64, bool:
			return fmt.Sprint(v), true
		}
	}
	return "", false
}

// HasTranslation checks if a translation exists for the given language and key.
// The default language is not consulted.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	_, ok = t.getTranslation(langMap, key)
	return ok
}

// buildParams converts a slice of strings (expected as key, value, key, value, …)
// into a map. If the number of arguments is odd, the last one is ignored.
func (t *Translator) buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{name}" placeholders. Unknown placeholders are kept as is.
func (t *Translator) sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := t.buildParams(args)
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func (t *Translator) missing(lang, key string, args []string, attrs ...any) string {
	if t.missingLogMode {
		t.logger.Warn("translation not found", append([]any{"lang", lang, "key", key}, attrs...)...)
	}
	if t.fallbackToKey {
		return t.sprintf(key, args)
	}
	return ""
}

// T translates a key for the given language.
// Additional arguments are key-value pairs substituted into "%{key}" placeholders.
//
// Lookup falls back to the default language, then to the key itself when
// FallbackToKey is enabled.
//
//	// With translation "usage": "Usage: %{program} data.txt"
//	msg := translator.T("en", "usage", "program", "anketa")
//	// Returns: "Usage: anketa data.txt"
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if v, ok := t.lookup(lang, key); ok {
		return t.sprintf(v, args)
	}
	return t.missing(lang, key, args)
}

// N translates a key with pluralization for the given language.
//
// The plural category of n is taken from the CLDR rules of lang, so Russian
// selects between "one", "few" and "many" while English only knows "one" and
// "other". For n == 0 a "zero" form is tried first. When the selected form is
// absent, "other" is used, then the key itself.
// The "count" placeholder is filled with n unless given explicitly.
//
//	// ru:
//	//   age:
//	//     one: "%{count} год"
//	//     few: "%{count} года"
//	//     many: "%{count} лет"
//	translator.N("ru", "age", 35) // "35 лет"
//	translator.N("ru", "age", 22) // "22 года"
func (t *Translator) N(lang, key string, n int, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	hasCount := false
	for i := 0; i < len(args)-1; i += 2 {
		if args[i] == "count" {
			hasCount = true
			break
		}
	}
	if !hasCount {
		args = append(args[:len(args):len(args)], "count", strconv.Itoa(n))
	}

	forms := make([]string, 0, 3)
	if n == 0 {
		forms = append(forms, "zero")
	}
	forms = append(forms, PluralForm(lang, n), "other")

	for _, form := range forms {
		if v, ok := t.lookup(lang, key+"."+form); ok {
			return t.sprintf(v, args)
		}
	}
	if v, ok := t.lookup(lang, key); ok {
		return t.sprintf(v, args)
	}
	return t.missing(lang, key, args, "n", n)
}

// Td translates a key for the translator's default language.
func (t *Translator) Td(key string, args ...string) string {
	return t.T(t.defaultLang, key, args...)
}

// PluralForm returns the CLDR cardinal plural category of n in lang:
// one of "zero", "one", "two", "few", "many" or "other".
// Unknown languages fall back to the root locale, which only yields "other".
func PluralForm(lang string, n int) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	if n < 0 {
		n = -n
	}
	switch plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0) {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}
