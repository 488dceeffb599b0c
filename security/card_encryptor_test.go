package security

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"testing"
)

func testKey(t *testing.T) (string, []byte) {
	t.Helper()
	raw := []byte("0123456789abcdef0123456789abcdef")
	return base64.StdEncoding.EncodeToString(raw), raw
}

func gcmOpen(t *testing.T, key []byte, nonce string, ciphertext string) string {
	t.Helper()
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		t.Fatalf("decode ciphertext: %v", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("new gcm: %v", err)
	}
	plaintext, err := gcm.Open(nil, []byte(nonce), sealed, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return string(plaintext)
}

func TestNewCardEncryptorValidatesKey(t *testing.T) {
	if _, err := NewCardEncryptor("not base64!!"); err == nil {
		t.Fatalf("expected decode failure")
	}
	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	if _, err := NewCardEncryptor(short); err == nil {
		t.Fatalf("expected key size failure")
	}
	encoded, _ := testKey(t)
	if _, err := NewCardEncryptor(encoded); err != nil {
		t.Fatalf("valid key rejected: %v", err)
	}
}

func TestEncryptCardRoundTrip(t *testing.T) {
	encoded, raw := testKey(t)
	encryptor, err := NewCardEncryptor(encoded)
	if err != nil {
		t.Fatalf("new encryptor: %v", err)
	}

	card := CardDetails{
		CardNumber:  "4242424242424242",
		CVV:         "123",
		ExpiryMonth: "09",
		ExpiryYear:  "29",
	}
	encrypted, err := encryptor.EncryptCard(card)
	if err != nil {
		t.Fatalf("encrypt card: %v", err)
	}
	if len(encrypted.Nonce) != nonceLength {
		t.Fatalf("nonce length = %d", len(encrypted.Nonce))
	}

	if got := gcmOpen(t, raw, encrypted.Nonce, encrypted.EncryptedCardNumber); got != card.CardNumber {
		t.Fatalf("card number round trip = %q", got)
	}
	if got := gcmOpen(t, raw, encrypted.Nonce, encrypted.EncryptedCVV); got != card.CVV {
		t.Fatalf("cvv round trip = %q", got)
	}
	if got := gcmOpen(t, raw, encrypted.Nonce, encrypted.EncryptedExpiryMonth); got != card.ExpiryMonth {
		t.Fatalf("expiry month round trip = %q", got)
	}
	if got := gcmOpen(t, raw, encrypted.Nonce, encrypted.EncryptedExpiryYear); got != card.ExpiryYear {
		t.Fatalf("expiry year round trip = %q", got)
	}
}

func TestEncryptRejectsWrongNonceLength(t *testing.T) {
	encoded, _ := testKey(t)
	encryptor, err := NewCardEncryptor(encoded)
	if err != nil {
		t.Fatalf("new encryptor: %v", err)
	}
	if _, err := encryptor.Encrypt("value", "short"); err == nil {
		t.Fatalf("expected nonce length failure")
	}
}

func TestEncryptCardUsesFreshNonces(t *testing.T) {
	encoded, _ := testKey(t)
	encryptor, _ := NewCardEncryptor(encoded)
	first, err := encryptor.EncryptCard(CardDetails{CardNumber: "4242"})
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	second, err := encryptor.EncryptCard(CardDetails{CardNumber: "4242"})
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if first.Nonce == second.Nonce {
		t.Fatalf("nonce reuse across calls")
	}
}
