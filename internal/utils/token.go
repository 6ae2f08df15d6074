package utils

import (
	"crypto/rand"
	"math/big"
)

const signupTokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SignupTokenLength is the fixed length of emailed registration tokens.
const SignupTokenLength = 24

// GenerateSignupToken draws each character uniformly from the 52-letter
// alphabet. The token gates a single pending registration row, not a
// session.
func GenerateSignupToken() (string, error) {
	max := big.NewInt(int64(len(signupTokenAlphabet)))
	result := make([]byte, SignupTokenLength)
	for i := 0; i < SignupTokenLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = signupTokenAlphabet[n.Int64()]
	}
	return string(result), nil
}
