package report

import (
	"io"
	"strings"

	"github.com/dmitrymomot/anketa/pkg/i18n"
	"github.com/dmitrymomot/anketa/pkg/questionnaire"
)

// Separator is printed between the oldest and the youngest section.
var Separator = "\n" + strings.Repeat("=", 50) + "\n"

// Renderer writes the extremes report in one language.
type Renderer struct {
	tr   *i18n.Translator
	lang string
}

// New returns a Renderer for lang. Keys missing in lang fall back to the
// translator's default language.
func New(tr *i18n.Translator, lang string) *Renderer {
	if lang == "" {
		lang = tr.DefaultLanguage()
	}
	return &Renderer{tr: tr, lang: lang}
}

// Lang returns the language the renderer writes in.
func (r *Renderer) Lang() string {
	return r.lang
}

// Message translates a single catalog key, for messages printed outside the
// report itself.
func (r *Renderer) Message(key string, args ...string) string {
	return r.tr.T(r.lang, key, args...)
}

// Render writes the oldest section, the separator and the youngest section.
// The same person may be passed twice.
func (r *Renderer) Render(w io.Writer, oldest, youngest questionnaire.Person) error {
	var b strings.Builder
	r.section(&b, "report.oldest", oldest)
	b.WriteString(Separator)
	b.WriteByte('\n')
	r.section(&b, "report.youngest", youngest)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderEmpty writes the message shown when no record passed validation.
func (r *Renderer) RenderEmpty(w io.Writer) error {
	_, err := io.WriteString(w, r.tr.T(r.lang, "report.empty")+"\n")
	return err
}

func (r *Renderer) section(b *strings.Builder, header string, p questionnaire.Person) {
	for _, line := range []string{
		r.tr.T(r.lang, header),
		r.tr.N(r.lang, "report.age", p.Age),
		r.tr.T(r.lang, "report.form"),
		p.Text(),
	} {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
