package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestIssueAndParseSubject(t *testing.T) {
	tok, err := Issue(secret, "user@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, err := ParseSubject(secret, tok)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", sub)
}

func TestParseSubject_Expired(t *testing.T) {
	tok, err := Issue(secret, "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSubject(secret, tok)
	require.Error(t, err)
}

func TestParseSubject_WrongSecret(t *testing.T) {
	tok, err := Issue(secret, "user@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ParseSubject("other-secret", tok)
	require.Error(t, err)
}

func TestParseSubject_Garbage(t *testing.T) {
	_, err := ParseSubject(secret, "not.a.token")
	require.Error(t, err)

	_, err = ParseSubject(secret, "")
	require.Error(t, err)
}
