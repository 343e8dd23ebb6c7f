package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("jane@example.com", "secret", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	email, err := ParseJWT(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("jane@example.com", "secret", time.Hour)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWT_ExpiredToken(t *testing.T) {
	token, err := GenerateJWT("jane@example.com", "secret", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
