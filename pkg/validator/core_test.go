package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/anketa/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	pass := validator.Valid("a", true, "never shown")
	fail := validator.Valid("b", false, "is broken")

	t.Run("all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(fail, pass, validator.Valid("c", false, "is missing"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"b", "c"}, verrs.Fields())
		assert.True(t, verrs.Has("b"))
		assert.False(t, verrs.Has("a"))
		assert.Equal(t, "validation failed: b: is broken; c: is missing", err.Error())
	})
}

func TestValidationErrorsIs(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Valid("f", false, "bad"))
	assert.ErrorIs(t, err, validator.ErrValidationFailed)

	wrapped := fmt.Errorf("record 3: %w", err)
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.NotNil(t, validator.ExtractValidationErrors(wrapped))

	joined := errors.Join(errors.New("outer"), err)
	assert.True(t, validator.IsValidationError(joined))
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
}

func TestAny(t *testing.T) {
	t.Parallel()

	t.Run("passes when one alternative passes", func(t *testing.T) {
		rule := validator.Any("contact", "phone or email",
			validator.Valid("contact", false, "not a phone"),
			validator.Valid("contact", true, "not an email"),
		)
		assert.NoError(t, validator.Apply(rule))
	})

	t.Run("stops at first success", func(t *testing.T) {
		calls := 0
		counting := validator.Rule{Check: func() bool { calls++; return true }}
		rule := validator.Any("f", "msg", counting, counting)
		require.NoError(t, validator.Apply(rule))
		assert.Equal(t, 1, calls)
	})

	t.Run("fails with own message when all fail", func(t *testing.T) {
		rule := validator.Any("contact", "must be a phone or an email",
			validator.Valid("contact", false, "not a phone"),
			validator.Valid("contact", false, "not an email"),
		)
		verrs := validator.ExtractValidationErrors(validator.Apply(rule))
		require.Len(t, verrs, 1)
		assert.Equal(t, "must be a phone or an email", verrs[0].Message)
		assert.Equal(t, "validation.any", verrs[0].TranslationKey)
	})

	t.Run("no alternatives fails", func(t *testing.T) {
		assert.Error(t, validator.Apply(validator.Any("f", "msg")))
	})
}
