package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/upvest/upvest-go/transport"
)

const (
	// tokenPath is the OAuth2 token issuance endpoint.
	tokenPath = "/clientele/oauth2/token/"

	// tokenScope is fixed by the API; narrower scopes are not supported.
	tokenScope = "read write echo transaction"
)

// OAuthProvider authorizes clientele API requests with a bearer token
// obtained via the OAuth2 resource-owner password grant.
//
// Every GetHeaders call performs its own token round trip: tokens are not
// cached and expiry is never tracked, so each signed request costs one
// extra call against the token endpoint in exchange for the provider
// holding no mutable state. The token request goes through an
// unauthenticated Transport rather than a Provider, so header computation
// cannot recurse into itself.
type OAuthProvider struct {
	creds OAuthCredentials
	base  string
	http  *http.Client
}

// NewOAuth creates a provider for the given OAuth credentials. The base
// URL and HTTP client are used for the nested token request.
func NewOAuth(creds OAuthCredentials, baseURL string, httpClient *http.Client) *OAuthProvider {
	return &OAuthProvider{
		creds: creds,
		base:  baseURL,
		http:  httpClient,
	}
}

// GetHeaders fetches a fresh access token and returns bearer headers. The
// outer request's method, path, and body are ignored: the token depends
// only on the credentials.
func (p *OAuthProvider) GetHeaders(ctx context.Context, _, _ string, _ map[string]interface{}) (map[string]string, error) {
	if err := p.creds.validate(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("scope", tokenScope)
	form.Set("client_id", p.creds.ClientID)
	form.Set("client_secret", p.creds.ClientSecret)
	form.Set("username", p.creds.Username)
	form.Set("password", p.creds.Password)

	tr := transport.New(transport.Config{
		BaseURL:    p.base,
		HTTPClient: p.http,
	})

	var token struct {
		AccessToken string `json:"access_token"`
	}

	if err := tr.PostForm(ctx, tokenPath, form, &token); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenRequestFailed, err)
	}

	if token.AccessToken == "" {
		return nil, ErrTokenMissing
	}

	return map[string]string{
		"Authorization": "Bearer " + token.AccessToken,
		"Content-Type":  "application/json",
	}, nil
}
