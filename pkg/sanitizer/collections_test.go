package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/anketa/pkg/sanitizer"
)

func TestFilterEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "filters empty strings",
			input:    []string{"hello", "", "world", "   ", "test"},
			expected: []string{"hello", "world", "test"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.FilterEmpty(tt.input))
		})
	}
}

func TestNonBlankLines(t *testing.T) {
	t.Parallel()

	t.Run("trims and drops blank lines keeping order", func(t *testing.T) {
		input := []string{"  Иванов", "", "\tИван  ", "   ", "м"}
		assert.Equal(t, []string{"Иванов", "Иван", "м"}, sanitizer.NonBlankLines(input))
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		input := []string{"Иван", "Иван"}
		assert.Equal(t, []string{"Иван", "Иван"}, sanitizer.NonBlankLines(input))
	})

	t.Run("does not modify input", func(t *testing.T) {
		input := []string{" a "}
		_ = sanitizer.NonBlankLines(input)
		assert.Equal(t, " a ", input[0])
	})
}
