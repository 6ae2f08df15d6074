package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSignupTokenShape(t *testing.T) {
	token, err := GenerateSignupToken()
	require.NoError(t, err)

	assert.Len(t, token, SignupTokenLength)
	for _, ch := range token {
		assert.True(t, strings.ContainsRune(signupTokenAlphabet, ch), "unexpected character %q", ch)
	}
}

func TestGenerateSignupTokenDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSignupToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "token collision after %d draws", i)
		seen[token] = true
	}
}
