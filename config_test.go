package upvest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearUpvestEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"UPVEST_BASE_URL",
		"UPVEST_API_KEY", "UPVEST_API_SECRET", "UPVEST_PASSPHRASE",
		"UPVEST_CLIENT_ID", "UPVEST_CLIENT_SECRET", "UPVEST_USERNAME", "UPVEST_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestNewFromEnv_APIKey(t *testing.T) {
	clearUpvestEnv(t)
	t.Setenv("UPVEST_BASE_URL", "https://api.example.test")
	t.Setenv("UPVEST_API_KEY", "k")
	t.Setenv("UPVEST_API_SECRET", "s")
	t.Setenv("UPVEST_PASSPHRASE", "p")

	client, err := NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client.auth)
}

func TestNewFromEnv_OAuth(t *testing.T) {
	clearUpvestEnv(t)
	t.Setenv("UPVEST_BASE_URL", "https://api.example.test")
	t.Setenv("UPVEST_CLIENT_ID", "cid")
	t.Setenv("UPVEST_CLIENT_SECRET", "cs")
	t.Setenv("UPVEST_USERNAME", "u")
	t.Setenv("UPVEST_PASSWORD", "p")

	client, err := NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client.auth)
}

func TestNewFromEnv_NoCredentials(t *testing.T) {
	clearUpvestEnv(t)

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no credentials found")
}
