// Package transport implements the HTTP layer shared by every Upvest API
// call: URL versioning, JSON request/response handling, and structured
// error reporting.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	uperrors "github.com/upvest/upvest-go/errors"
)

// APIVersion is the version segment prefixed to every request path. It is
// part of the signed message for key-authenticated requests, so it must
// match what the server verifies against.
const APIVersion = "1.0"

// VersionedPath prefixes an API path with the version segment.
func VersionedPath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + APIVersion + path
}

// HeaderSource computes the headers that authenticate a single outgoing
// request. auth.Provider satisfies it; declaring it here keeps the
// transport free of an auth dependency.
type HeaderSource interface {
	GetHeaders(ctx context.Context, method, path string, body map[string]interface{}) (map[string]string, error)
}

// Config holds configuration for a Transport.
type Config struct {
	BaseURL     string
	HTTPClient  *http.Client      // optional, defaults to a 30s timeout
	Auth        HeaderSource      // optional, nil means unauthenticated
	Logger      *zap.Logger       // optional debug logging
	BaseHeaders map[string]string // optional headers applied to every request
}

// Transport issues HTTP requests against the Upvest API and decodes JSON
// responses. It is safe for concurrent use.
type Transport struct {
	http    *http.Client
	base    string
	auth    HeaderSource
	logger  *zap.Logger
	headers map[string]string
}

// New creates a new Transport.
func New(cfg Config) *Transport {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Transport{
		http:    httpClient,
		base:    strings.TrimSuffix(cfg.BaseURL, "/"),
		auth:    cfg.Auth,
		logger:  logger,
		headers: cfg.BaseHeaders,
	}
}

// Execute issues a JSON API request and decodes the response into out.
//
// path is the unversioned API path; the version prefix is applied here and,
// for signed requests, inside the auth provider's signature, so both always
// agree. Auth headers are computed fresh per call and override base headers
// with the same name. If header computation fails the request is never
// sent.
func (t *Transport) Execute(ctx context.Context, method, path string, body map[string]interface{}, out interface{}) error {
	var entity io.Reader
	if body != nil {
		// encoding/json emits map keys in sorted order, so these are the
		// same bytes the auth provider signs.
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		entity = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.base+VersionedPath(path), entity)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	applyHeaders(req.Header, t.headers)

	if t.auth != nil {
		authHeaders, err := t.auth.GetHeaders(ctx, method, path, body)
		if err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
		applyHeaders(req.Header, authHeaders)
	}

	return t.do(req, out)
}

// PostForm issues an unauthenticated form-encoded POST and decodes the
// response into out. The OAuth token round trip uses it directly so that
// token acquisition never re-enters the auth layer.
func (t *Transport) PostForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.base+VersionedPath(path), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cache-Control", "no-cache")
	applyHeaders(req.Header, t.headers)

	return t.do(req, out)
}

func (t *Transport) do(req *http.Request, out interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := t.http.Do(req)
	if err != nil {
		t.logger.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	t.logger.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID))

	if resp.StatusCode >= 400 {
		return uperrors.ParseErrorResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// applyHeaders assigns entries directly into the header map so names like
// X-UP-API-Key reach the wire without MIME canonicalization.
func applyHeaders(h http.Header, m map[string]string) {
	for k, v := range m {
		h[k] = []string{v}
	}
}
