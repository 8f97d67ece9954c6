package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/footfallz/validation-server/pkg/validate"
)

func TestPhone(t *testing.T) {
	t.Run("valid numbers", func(t *testing.T) {
		testCases := []string{
			"+12025551234",       // US number
			"+442071838750",      // UK number
			"+861012345678",      // CN number
			"+1234567890",        // 10 digits, lower bound
			"+123456789012345",   // 15 digits, upper bound
		}

		for _, number := range testCases {
			res := validate.Phone(number)
			assert.True(t, res.Valid, "should be valid: %s", number)
			assert.Equal(t, number, res.Input)
			assert.Equal(t, "Valid E.164 phone format", res.Message)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		testCases := []struct {
			number string
			reason string
		}{
			{"", "empty"},
			{"5551234", "missing plus prefix"},
			{"12025551234", "missing plus prefix"},
			{"+0123456789", "leading zero after plus"},
			{"+123456789", "9 digits, below minimum"},
			{"+1234567890123456", "16 digits, above maximum"},
			{"+1 202 555 1234", "separators not permitted"},
			{"+1-202-555-1234", "separators not permitted"},
			{"+1(202)5551234", "parentheses not permitted"},
			{"+1202555123a", "non-digit"},
		}

		for _, tc := range testCases {
			res := validate.Phone(tc.number)
			assert.False(t, res.Valid, "should be invalid (%s): %s", tc.reason, tc.number)
			assert.Equal(t, tc.number, res.Input)
			assert.Equal(t, "Invalid phone format. Use E.164: +[country][number]", res.Message)
		}
	})
}
