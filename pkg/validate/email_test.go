package validate_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footfallz/validation-server/pkg/validate"
)

func TestEmail(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		testCases := []string{
			"user@example.com",
			"first.last@example.com",
			"user+tag@example.co.uk",
			"user_name%x@sub.example.org",
			"A1-b2@host-name.io",
		}

		for _, email := range testCases {
			res := validate.Email(email)
			assert.True(t, res.Valid, "should be valid: %s", email)
			assert.Equal(t, email, res.Input)
			assert.Equal(t, "Valid email format", res.Message)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		testCases := []string{
			"",
			"invalid.email",
			"@example.com",
			"user@",
			"user@example",
			"user@example.c",
			"user@example.123",
			"user example@example.com",
			"user@exam ple.com",
			"user@example.com ",
		}

		for _, email := range testCases {
			res := validate.Email(email)
			assert.False(t, res.Valid, "should be invalid: %s", email)
			assert.Equal(t, email, res.Input)
			assert.Equal(t, "Invalid email format", res.Message)
		}
	})

	t.Run("no extra fields", func(t *testing.T) {
		res := validate.Email("user@example.com")
		require.True(t, res.Valid)
		assert.Nil(t, res.Match)
		assert.Nil(t, res.Details)
		assert.Empty(t, res.Pattern)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := validate.Email("user@example.com")
		second := validate.Email("user@example.com")
		assert.Equal(t, first, second)
	})

	t.Run("generated addresses from the grammar", func(t *testing.T) {
		const (
			localChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789._%+-"
			domainChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.-"
			tldChars    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
		)

		rng := rand.New(rand.NewSource(1))
		pick := func(set string, n int) string {
			b := make([]byte, n)
			for i := range b {
				b[i] = set[rng.Intn(len(set))]
			}
			return string(b)
		}

		for n := 0; n < 200; n++ {
			email := pick(localChars, 1+rng.Intn(12)) + "@" +
				pick(domainChars, 1+rng.Intn(12)) + "." +
				pick(tldChars, 2+rng.Intn(6))
			assert.True(t, validate.Email(email).Valid, "grammar-constructed address must be valid: %s", email)

			// Dropping the @ breaks the grammar for any constructed address.
			broken := strings.Replace(email, "@", "", 1)
			assert.False(t, validate.Email(broken).Valid, "should be invalid: %s", broken)
		}
	})
}
