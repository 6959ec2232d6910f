package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required master key size for AES-256 (256 bits / 8 = 32 bytes)
	KeySize = 32

	// keyContext provides HKDF domain separation so the same master key used
	// elsewhere in an application never yields the same AES subkey.
	keyContext = "otpkit-secrets-v1"
)

// Encrypt seals an OTP secret with AES-256-GCM under a subkey derived from
// the 32-byte master key. Returns base64-encoded ciphertext with the nonce
// prepended.
func Encrypt(plaintext string, masterKey []byte) (string, error) {
	aesGCM, err := newGCM(masterKey)
	if err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	cipherText := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(cipherText), nil
}

// Decrypt opens a base64-encoded ciphertext produced by Encrypt.
func Decrypt(cipherTextBase64 string, masterKey []byte) (string, error) {
	cipherText, err := base64.StdEncoding.DecodeString(cipherTextBase64)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	aesGCM, err := newGCM(masterKey)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(cipherText) < nonceSize {
		return "", errors.Join(ErrFailedToDecryptSecret, ErrInvalidCipherTooShort)
	}
	nonce, cipherText := cipherText[:nonceSize], cipherText[nonceSize:]

	plainText, err := aesGCM.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	return string(plainText), nil
}

// newGCM derives the AES subkey from the master key via HKDF-SHA256 and
// returns the sealed-mode cipher.
func newGCM(masterKey []byte) (cipher.AEAD, error) {
	if len(masterKey) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	subKey := make([]byte, KeySize)
	kdf := hkdf.New(sha256.New, masterKey, nil, []byte(keyContext))
	if _, err := io.ReadFull(kdf, subKey); err != nil {
		return nil, errors.Join(ErrFailedToDeriveKey, err)
	}

	block, err := aes.NewCipher(subKey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// GenerateKey creates a new random 32-byte master key suitable for Encrypt.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateKey, err)
	}
	return key, nil
}

// GenerateEncodedKey creates a new random master key as a base64-encoded
// string, the format expected in the OTP_ENCRYPTION_KEY environment variable.
func GenerateEncodedKey() (string, error) {
	key, err := GenerateKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// LoadKey decodes the master key from the environment-driven configuration.
// The key must be a 32-byte base64-encoded string.
func LoadKey() ([]byte, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadKey, err)
	}
	return DecodeKey(config.EncryptionKey)
}

// DecodeKey decodes a base64-encoded master key and checks its length.
func DecodeKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errors.Join(ErrFailedToLoadKey, ErrKeyNotSet)
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadKey, err)
	}

	if len(key) != KeySize {
		return nil, errors.Join(ErrFailedToLoadKey, ErrInvalidKeyLength)
	}

	return key, nil
}
