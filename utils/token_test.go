package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "p1", "ngo")
	require.NoError(t, err)

	userID, role, err := ParseToken("secret", token)
	require.NoError(t, err)
	require.Equal(t, "p1", userID)
	require.Equal(t, "ngo", role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "p1", "ngo")
	require.NoError(t, err)

	_, _, err = ParseToken("another-secret", token)
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, _, err := ParseToken("secret", "definitely.not.jwt")
	require.Error(t, err)
}

func TestGenerateETagStableAndDistinct(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, GenerateETag("d1", at), GenerateETag("d1", at))
	require.NotEqual(t, GenerateETag("d1", at), GenerateETag("d2", at))
	require.NotEqual(t, GenerateETag("d1", at), GenerateETag("d1", at.Add(time.Second)))
}
