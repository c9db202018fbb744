// Package upvest provides a Go client for the Upvest wallet and
// key-management API.
//
// The client supports two interchangeable authentication schemes: HMAC
// request signing with tenancy API keys, and OAuth2 password-grant bearer
// tokens for clientele access. Which scheme is used is decided once, at
// construction; every call site stays ignorant of it.
//
// Example usage with an API key:
//
//	client, err := upvest.New(upvest.Config{
//		BaseURL: "https://api.playground.upvest.co",
//		Auth: upvest.AuthConfig{
//			APIKey: &auth.APIKeyCredentials{
//				Key:        "...",
//				Secret:     "...",
//				Passphrase: "...",
//			},
//		},
//	})
//
// Example usage with OAuth:
//
//	client, err := upvest.New(upvest.Config{
//		BaseURL: "https://api.playground.upvest.co",
//		Auth: upvest.AuthConfig{
//			OAuth: &auth.OAuthCredentials{
//				ClientID:     "...",
//				ClientSecret: "...",
//				Username:     "...",
//				Password:     "...",
//			},
//		},
//	})
package upvest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/upvest/upvest-go/auth"
	"github.com/upvest/upvest-go/transport"
)

// Client is the main client for the Upvest API.
type Client struct {
	auth      auth.Provider
	transport *transport.Transport
	http      *http.Client
}

// Config holds configuration for a Client.
type Config struct {
	BaseURL    string
	Auth       AuthConfig
	HTTPClient *http.Client // optional: custom HTTP client (defaults to 30s timeout)
	Logger     *zap.Logger  // optional: debug logging of requests
}

// AuthConfig selects the authentication scheme. Exactly one field must be
// set. Provider accepts a caller-supplied implementation, which keeps the
// set of schemes open without touching any call site.
type AuthConfig struct {
	APIKey   *auth.APIKeyCredentials
	OAuth    *auth.OAuthCredentials
	Provider auth.Provider
}

// New creates a new Upvest API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	// Create auth provider based on which credential variant is set
	var provider auth.Provider
	switch {
	case cfg.Auth.Provider != nil:
		provider = cfg.Auth.Provider
	case cfg.Auth.APIKey != nil && cfg.Auth.OAuth != nil:
		return nil, fmt.Errorf("at most one of APIKey and OAuth may be set")
	case cfg.Auth.APIKey != nil:
		provider = auth.NewKeyAuth(*cfg.Auth.APIKey)
	case cfg.Auth.OAuth != nil:
		provider = auth.NewOAuth(*cfg.Auth.OAuth, cfg.BaseURL, httpClient)
	default:
		return nil, fmt.Errorf("authentication credentials are required")
	}

	tr := transport.New(transport.Config{
		BaseURL:    cfg.BaseURL,
		HTTPClient: httpClient,
		Auth:       provider,
		Logger:     cfg.Logger,
	})

	return &Client{
		auth:      provider,
		transport: tr,
		http:      httpClient,
	}, nil
}

// Request issues an authenticated JSON API call and decodes the response
// into out (pass nil to discard the body). path is the unversioned API
// path; the client applies the version prefix to both the URL and, for
// signed requests, the signature. If computing auth headers fails the
// request is never sent.
func (c *Client) Request(ctx context.Context, method, path string, body map[string]interface{}, out interface{}) error {
	return c.transport.Execute(ctx, method, path, body, out)
}

// Close releases resources held by the client, including idle HTTP
// connections. After calling Close, the client should not be used.
func (c *Client) Close() {
	if t, ok := c.http.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
}
