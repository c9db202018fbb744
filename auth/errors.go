package auth

import "errors"

// Sentinel errors returned (wrapped) by providers. Callers match them with
// errors.Is.
var (
	// ErrMissingCredentialField reports an empty required credential field.
	ErrMissingCredentialField = errors.New("missing credential field")

	// ErrSigningFailed reports that the signing message could not be built.
	ErrSigningFailed = errors.New("request signing failed")

	// ErrTokenRequestFailed reports that the OAuth token round trip failed
	// at the transport layer.
	ErrTokenRequestFailed = errors.New("token request failed")

	// ErrTokenMissing reports a token response without an access_token.
	ErrTokenMissing = errors.New("token response missing access_token")
)
