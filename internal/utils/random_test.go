package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	t.Run("fixed length, digits only", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			code, err := GenerateNumericCode(6)
			require.NoError(t, err)
			require.Len(t, code, 6)
			for _, r := range code {
				require.True(t, r >= '0' && r <= '9', "unexpected rune %q in %q", r, code)
			}
		}
	})

	t.Run("short codes keep leading zeros", func(t *testing.T) {
		code, err := GenerateNumericCode(4)
		require.NoError(t, err)
		assert.Len(t, code, 4)
	})
}

func TestGenerateInviteToken(t *testing.T) {
	t.Run("requested length", func(t *testing.T) {
		token, err := GenerateInviteToken(32)
		require.NoError(t, err)
		assert.Len(t, token, 32)
	})

	t.Run("odd length", func(t *testing.T) {
		token, err := GenerateInviteToken(31)
		require.NoError(t, err)
		assert.Len(t, token, 31)
	})

	t.Run("zero falls back to default", func(t *testing.T) {
		token, err := GenerateInviteToken(0)
		require.NoError(t, err)
		assert.Len(t, token, 32)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			token, err := GenerateInviteToken(32)
			require.NoError(t, err)
			require.False(t, seen[token], "duplicate token %q", token)
			seen[token] = true
		}
	})
}
