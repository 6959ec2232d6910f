package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// GenerateRecoveryCodes creates cryptographically secure backup codes for
// account recovery. Each code carries 64 bits of entropy, formatted as four
// dash-separated groups of four hex characters for readability.
func GenerateRecoveryCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidRecoveryCodeCount
	}

	codes := make([]string, count)
	for i := 0; i < count; i++ {
		codeBytes := make([]byte, 8)
		if _, err := rand.Read(codeBytes); err != nil {
			return nil, errors.Join(ErrFailedToGenerateRecoveryCode, err)
		}
		raw := fmt.Sprintf("%X", codeBytes)
		codes[i] = fmt.Sprintf("%s-%s-%s-%s", raw[0:4], raw[4:8], raw[8:12], raw[12:16])
	}
	return codes, nil
}

// HashRecoveryCode creates a SHA-256 hash for secure storage of recovery
// codes. The code is normalized first so user input with or without dashes
// hashes identically.
func HashRecoveryCode(code string) string {
	hash := sha256.Sum256([]byte(normalizeRecoveryCode(code)))
	return hex.EncodeToString(hash[:])
}

// VerifyRecoveryCode compares a submitted code against its stored hash in
// constant time, so comparison time reveals nothing about where a mismatch
// occurs.
func VerifyRecoveryCode(code, hashedCode string) bool {
	computedHash := HashRecoveryCode(code)
	return subtle.ConstantTimeCompare(
		[]byte(computedHash),
		[]byte(hashedCode),
	) == 1
}

func normalizeRecoveryCode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), "-", ""))
}
