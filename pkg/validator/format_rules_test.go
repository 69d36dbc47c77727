package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/anketa/pkg/validator"
)

func TestPhoneDigits(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers", func(t *testing.T) {
		for _, digits := range []string{"71234567890", "89991234567"} {
			rule := validator.PhoneDigits("contact", digits, 11, "7", "8")
			assert.NoError(t, validator.Apply(rule), digits)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		for _, digits := range []string{"", "12345", "7123456789", "91234567890", "712345678901", "7123456789a"} {
			err := validator.Apply(validator.PhoneDigits("contact", digits, 11, "7", "8"))
			require.Error(t, err, digits)
			assert.Equal(t, "validation.phone_digits", validator.ExtractValidationErrors(err)[0].TranslationKey)
		}
	})

	t.Run("no prefixes accepts any leading digit", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.PhoneDigits("contact", "91234567890", 11)))
	})
}

func TestEmailWithDomains(t *testing.T) {
	t.Parallel()

	domains := []string{"gmail.com", "mail.ru", "yandex.ru"}

	t.Run("valid emails", func(t *testing.T) {
		emails := []string{
			"user.name@yandex.ru",
			"a@gmail.com",
			"John_Doe+tag%x-1@MAIL.RU",
			"USER@Gmail.Com",
		}
		for _, email := range emails {
			assert.NoError(t, validator.Apply(validator.EmailWithDomains("contact", email, domains)), email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		emails := []string{
			"user@hotmail.com",
			"@gmail.com",
			"user@@gmail.com",
			"user@sub.gmail.com",
			"пользователь@mail.ru",
			"user name@mail.ru",
			"user@gmail.com.evil",
			"",
		}
		for _, email := range emails {
			err := validator.Apply(validator.EmailWithDomains("contact", email, domains))
			require.Error(t, err, email)
			assert.Equal(t, "validation.email_domain", validator.ExtractValidationErrors(err)[0].TranslationKey)
		}
	})

	t.Run("local part is limited to 64 characters", func(t *testing.T) {
		local := strings.Repeat("a", 64)
		assert.NoError(t, validator.Apply(validator.EmailWithDomains("contact", local+"@mail.ru", domains)))
		assert.Error(t, validator.Apply(validator.EmailWithDomains("contact", local+"a@mail.ru", domains)))
	})
}
