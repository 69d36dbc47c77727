package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/anketa/pkg/validator"
)

func TestRangeNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int
		ok    bool
	}{
		{"lower bound", 1900, true},
		{"upper bound", 2026, true},
		{"inside", 1990, true},
		{"below", 1899, false},
		{"above", 2027, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Apply(validator.RangeNum("year", tt.value, 1900, 2026))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "must be between 1900 and 2026", verrs[0].Message)
		})
	}
}
