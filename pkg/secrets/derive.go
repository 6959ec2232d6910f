package secrets

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters, sized for interactive use on current hardware.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1

	// SaltSize is the salt length produced by GenerateSalt.
	SaltSize = 16
)

// DeriveKey stretches a passphrase into a 32-byte master key using scrypt.
// The salt must be stored alongside the ciphertext; the same passphrase and
// salt always yield the same key.
func DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, errors.Join(ErrFailedToDeriveKey, errors.New("salt must not be empty"))
	}
	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, errors.Join(ErrFailedToDeriveKey, err)
	}
	return key, nil
}

// GenerateSalt creates a random salt for DeriveKey.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Join(ErrFailedToDeriveKey, err)
	}
	return salt, nil
}
