package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationCodeRoundTrip(t *testing.T) {
	code := NewConfirmationCode()
	assert.NotEmpty(t, code)

	hash, err := HashCode(code)
	assert.NoError(t, err)
	assert.NotEqual(t, code, hash)

	assert.NoError(t, VerifyCode(hash, code))
	assert.Error(t, VerifyCode(hash, "wrong-code"))
}

func TestConfirmationCodesAreUnique(t *testing.T) {
	assert.NotEqual(t, NewConfirmationCode(), NewConfirmationCode())
}
