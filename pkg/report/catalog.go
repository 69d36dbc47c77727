package report

import (
	"context"
	"embed"

	"github.com/dmitrymomot/anketa/pkg/i18n"
)

// DefaultLanguage is the report language used when none is configured.
const DefaultLanguage = "ru"

//go:embed locales/*.yaml
var locales embed.FS

// Message keys shared with the command line front end.
const (
	KeyUsage    = "errors.usage"
	KeyNotFound = "errors.not_found"
	KeyRead     = "errors.read"
)

// NewTranslator loads the embedded report catalogs. Russian is the default
// language unless overridden through opts.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales")
	return i18n.NewTranslator(ctx, adapter, append([]i18n.Option{i18n.WithDefaultLanguage(DefaultLanguage)}, opts...)...)
}
