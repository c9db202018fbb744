package auth

import "fmt"

// APIKeyCredentials holds the secret material for tenancy API access.
// All three fields are required.
type APIKeyCredentials struct {
	Key        string
	Secret     string
	Passphrase string
}

func (c APIKeyCredentials) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"key", c.Key},
		{"secret", c.Secret},
		{"passphrase", c.Passphrase},
	}

	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingCredentialField, f.name)
		}
	}

	return nil
}

// OAuthCredentials holds the secret material for clientele API access via
// the OAuth2 password grant. All four fields are required.
type OAuthCredentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}

func (c OAuthCredentials) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"client_id", c.ClientID},
		{"client_secret", c.ClientSecret},
		{"username", c.Username},
		{"password", c.Password},
	}

	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingCredentialField, f.name)
		}
	}

	return nil
}
