package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/anketa/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("runs transforms in order", func(t *testing.T) {
		result := sanitizer.Apply(" Ab ", sanitizer.Trim, strings.ToUpper)
		assert.Equal(t, "AB", result)
	})

	t.Run("no transforms returns input", func(t *testing.T) {
		assert.Equal(t, "x", sanitizer.Apply("x"))
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.TrimToLower)
	assert.Equal(t, "женский", clean("  ЖЕНСКИЙ "))
	assert.Equal(t, "м", clean("М"))
}
