package testutil

import (
	"github.com/google/uuid"

	"github.com/upvest/upvest-go/auth"
)

// Fixtures provides common test data.

// FixtureAPIKeyCredentials returns sample API key credentials.
func FixtureAPIKeyCredentials() auth.APIKeyCredentials {
	return auth.APIKeyCredentials{
		Key:        "test_key",
		Secret:     "test_secret",
		Passphrase: "test_passphrase",
	}
}

// FixtureOAuthCredentials returns sample OAuth credentials.
func FixtureOAuthCredentials() auth.OAuthCredentials {
	return auth.OAuthCredentials{
		ClientID:     "test_client_id",
		ClientSecret: "test_client_secret",
		Username:     "upvest_user",
		Password:     "upvest_password",
	}
}

// FixtureAccessToken returns a unique bearer token value.
func FixtureAccessToken() string {
	return "tok_" + uuid.NewString()
}

// FixtureWalletPath returns a transactions path for a freshly generated
// wallet ID.
func FixtureWalletPath() string {
	return "/kms/wallets/" + uuid.NewString() + "/transactions/"
}
