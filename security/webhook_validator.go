package security

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// HashAlgorithm selects the HMAC digest for webhook signatures.
type HashAlgorithm string

const (
	HashSHA256 HashAlgorithm = "sha256"
	HashSHA512 HashAlgorithm = "sha512"
	HashSHA1   HashAlgorithm = "sha1"
)

// SignatureEncoding selects how the digest is rendered.
type SignatureEncoding string

const (
	EncodingBase64 SignatureEncoding = "base64"
	EncodingHex    SignatureEncoding = "hex"
)

// WebhookValidator computes and verifies HMAC signatures over raw webhook
// bodies, keyed by the shared secret hash. Stateless apart from its
// configuration.
type WebhookValidator struct {
	secret    string
	algorithm HashAlgorithm
	encoding  SignatureEncoding
}

type WebhookOption func(*WebhookValidator)

func WithHashAlgorithm(algorithm HashAlgorithm) WebhookOption {
	return func(v *WebhookValidator) {
		v.algorithm = algorithm
	}
}

func WithSignatureEncoding(encoding SignatureEncoding) WebhookOption {
	return func(v *WebhookValidator) {
		v.encoding = encoding
	}
}

func NewWebhookValidator(secret string, opts ...WebhookOption) (*WebhookValidator, error) {
	v := &WebhookValidator{
		secret:    strings.TrimSpace(secret),
		algorithm: HashSHA256,
		encoding:  EncodingBase64,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	if v.secret == "" {
		return nil, fmt.Errorf("security: webhook secret hash is required")
	}
	if _, err := v.hasher(); err != nil {
		return nil, err
	}
	switch v.encoding {
	case EncodingBase64, EncodingHex:
	default:
		return nil, fmt.Errorf("security: unsupported signature encoding %q", v.encoding)
	}
	return v, nil
}

// Validate reports whether the header-supplied signature matches the HMAC of
// the raw body. Comparison is constant-time.
func (v *WebhookValidator) Validate(rawBody []byte, signature string) bool {
	expected, err := v.GenerateSignature(rawBody)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.TrimSpace(signature))) == 1
}

// GenerateSignature computes the signature for a raw body, used for tests
// and for signing outbound verification requests.
func (v *WebhookValidator) GenerateSignature(rawBody []byte) (string, error) {
	newHash, err := v.hasher()
	if err != nil {
		return "", err
	}
	mac := hmac.New(newHash, []byte(v.secret))
	_, _ = mac.Write(rawBody)
	digest := mac.Sum(nil)

	if v.encoding == EncodingHex {
		return hex.EncodeToString(digest), nil
	}
	return base64.StdEncoding.EncodeToString(digest), nil
}

func (v *WebhookValidator) Algorithm() HashAlgorithm { return v.algorithm }

func (v *WebhookValidator) Encoding() SignatureEncoding { return v.encoding }

func (v *WebhookValidator) hasher() (func() hash.Hash, error) {
	switch v.algorithm {
	case HashSHA256:
		return sha256.New, nil
	case HashSHA512:
		return sha512.New, nil
	case HashSHA1:
		return sha1.New, nil
	default:
		return nil, fmt.Errorf("security: unsupported hash algorithm %q", v.algorithm)
	}
}
