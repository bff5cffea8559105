package utils

import (
	"testing"

	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "test-secret")

	token, err := GenerateAuthToken(&AuthTokenWrapper{UserID: "2b8c6f1a-9c1e-4f6b-8a6e-1c4d9a2f3e5b"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, "2b8c6f1a-9c1e-4f6b-8a6e-1c4d9a2f3e5b", parsed.UserID)
	assert.NotEmpty(t, parsed.Id)
}

func TestParseAuthTokenRejectsGarbage(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "test-secret")

	_, err := ParseAuthToken("not-a-token")
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestParseAuthTokenRejectsWrongSecret(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "first-secret")
	token, err := GenerateAuthToken(&AuthTokenWrapper{UserID: "user"})
	require.NoError(t, err)

	viper.Set(constants.ViperAuthSecret, "second-secret")
	_, err = ParseAuthToken(token)
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}
