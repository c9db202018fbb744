// Package auth implements the authentication schemes supported by the
// Upvest API: HMAC request signing for tenancy (API key) access and OAuth2
// resource-owner password credentials for clientele access.
package auth

import "context"

// Provider computes the headers that authenticate a single outgoing
// request. Implementations must be safe for concurrent use; credentials
// are read-only after construction.
//
// GetHeaders receives the unversioned request path and the request body as
// it will be serialized on the wire. The returned headers override any
// base headers with the same name. A non-nil error means the request must
// not be sent.
type Provider interface {
	GetHeaders(ctx context.Context, method, path string, body map[string]interface{}) (map[string]string, error)
}
