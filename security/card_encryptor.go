package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const nonceLength = 12

// CardDetails are the raw card fields a payment-method creation call starts
// from. They never travel over the wire in this form.
type CardDetails struct {
	CardNumber  string `json:"card_number"`
	CVV         string `json:"cvv"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
}

// EncryptedCardDetails is the wire shape: AES-GCM ciphertext per field plus
// the 12-character nonce used as the IV for all of them.
type EncryptedCardDetails struct {
	Nonce                string `json:"nonce"`
	EncryptedCardNumber  string `json:"encrypted_card_number"`
	EncryptedCVV         string `json:"encrypted_cvv"`
	EncryptedExpiryMonth string `json:"encrypted_expiry_month"`
	EncryptedExpiryYear  string `json:"encrypted_expiry_year"`
}

// CardEncryptor encrypts card fields with a pre-shared AES key.
type CardEncryptor struct {
	key []byte
}

// NewCardEncryptor decodes the base64 pre-shared key and validates its size.
func NewCardEncryptor(base64Key string) (*CardEncryptor, error) {
	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, fmt.Errorf("security: decode encryption key: %w", err)
	}
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("security: encryption key must be 16, 24 or 32 bytes, got %d", len(key))
	}
	return &CardEncryptor{key: key}, nil
}

// EncryptCard replaces every raw card field with its ciphertext, all sealed
// under one freshly generated nonce.
func (e *CardEncryptor) EncryptCard(card CardDetails) (EncryptedCardDetails, error) {
	nonce, err := generateNonce()
	if err != nil {
		return EncryptedCardDetails{}, err
	}
	out := EncryptedCardDetails{Nonce: nonce}

	fields := []struct {
		plaintext string
		target    *string
	}{
		{card.CardNumber, &out.EncryptedCardNumber},
		{card.CVV, &out.EncryptedCVV},
		{card.ExpiryMonth, &out.EncryptedExpiryMonth},
		{card.ExpiryYear, &out.EncryptedExpiryYear},
	}
	for _, field := range fields {
		ciphertext, err := e.Encrypt(field.plaintext, nonce)
		if err != nil {
			return EncryptedCardDetails{}, err
		}
		*field.target = ciphertext
	}
	return out, nil
}

// Encrypt seals one value under the given nonce and returns base64
// ciphertext. The nonce string's bytes are the GCM IV, so it must be exactly
// 12 characters.
func (e *CardEncryptor) Encrypt(plaintext string, nonce string) (string, error) {
	if len(nonce) != nonceLength {
		return "", fmt.Errorf("security: nonce must be exactly %d characters long", nonceLength)
	}
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", fmt.Errorf("security: init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("security: init gcm: %w", err)
	}
	sealed := gcm.Seal(nil, []byte(nonce), []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// generateNonce returns 12 characters drawn from the base64 alphabet, the
// same nonce shape the upstream API expects alongside the ciphertext.
func generateNonce() (string, error) {
	raw := make([]byte, nonceLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("security: generate nonce: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw)[:nonceLength], nil
}
