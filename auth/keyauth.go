package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/upvest/upvest-go/transport"
)

// KeyAuthProvider signs tenancy API requests with HMAC-SHA512.
//
// The signed message is the concatenation, without separators, of the Unix
// timestamp, the upper-cased HTTP method, the version-prefixed request
// path, and the request body as canonical JSON. The timestamp is read once
// per call and emitted in X-UP-API-Timestamp, so the server always
// verifies the same value that was signed.
type KeyAuthProvider struct {
	creds APIKeyCredentials

	// now is read fresh on every call; tests replace it to sign against a
	// fixed clock.
	now func() time.Time
}

// NewKeyAuth creates a provider for the given API key credentials.
func NewKeyAuth(creds APIKeyCredentials) *KeyAuthProvider {
	return &KeyAuthProvider{
		creds: creds,
		now:   time.Now,
	}
}

// GetHeaders computes the signature headers for one request. It performs
// no I/O.
func (p *KeyAuthProvider) GetHeaders(_ context.Context, method, path string, body map[string]interface{}) (map[string]string, error) {
	if err := p.creds.validate(); err != nil {
		return nil, err
	}

	versionedPath := transport.VersionedPath(path)
	timestamp := strconv.FormatInt(p.now().Unix(), 10)

	encodedBody, err := canonicalJSON(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}

	message := timestamp + strings.ToUpper(method) + versionedPath + encodedBody

	mac := hmac.New(sha512.New, []byte(p.creds.Secret))
	mac.Write([]byte(message))
	signature := hex.EncodeToString(mac.Sum(nil))

	return map[string]string{
		"Content-Type":         "application/json",
		"X-UP-API-Key":         p.creds.Key,
		"X-UP-API-Signature":   signature,
		"X-UP-API-Timestamp":   timestamp,
		"X-UP-API-Passphrase":  p.creds.Passphrase,
		"X-UP-API-Signed-Path": versionedPath,
	}, nil
}

// canonicalJSON serializes body the way the transport does: encoding/json
// emits map keys in sorted order, so the signed bytes always match the
// wire bytes. A nil body serializes to the empty object.
func canonicalJSON(body map[string]interface{}) (string, error) {
	if body == nil {
		return "{}", nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}
