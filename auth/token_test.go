package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	authority := NewTokenAuthority("test-secret", 60)

	token, err := authority.Generate(7, "alpha")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authority.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "alpha", claims.Username)
}

func TestParseMissingToken(t *testing.T) {
	authority := NewTokenAuthority("test-secret", 60)

	_, err := authority.Parse("")
	require.Error(t, err)
	assert.IsType(t, MissingTokenError{}, err)
}

func TestParseGarbageToken(t *testing.T) {
	authority := NewTokenAuthority("test-secret", 60)

	_, err := authority.Parse("not-a-jwt")
	require.Error(t, err)
	assert.IsType(t, InvalidTokenError{}, err)
}

func TestParseTokenSignedWithOtherSecret(t *testing.T) {
	issuer := NewTokenAuthority("secret-one", 60)
	verifier := NewTokenAuthority("secret-two", 60)

	token, err := issuer.Generate(7, "alpha")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
	assert.IsType(t, InvalidTokenError{}, err)
}

func TestParseExpiredToken(t *testing.T) {
	authority := NewTokenAuthority("test-secret", -1)

	token, err := authority.Generate(7, "alpha")
	require.NoError(t, err)

	_, err = authority.Parse(token)
	require.Error(t, err)
	assert.IsType(t, InvalidTokenError{}, err)
}
