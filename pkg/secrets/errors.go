package secrets

import "errors"

var (
	ErrFailedToEncryptSecret        = errors.New("failed to encrypt OTP secret")
	ErrFailedToDecryptSecret        = errors.New("failed to decrypt OTP secret")
	ErrInvalidCipherTooShort        = errors.New("cipher text too short")
	ErrInvalidKeyLength             = errors.New("invalid encryption key length")
	ErrFailedToGenerateKey          = errors.New("failed to generate encryption key")
	ErrFailedToLoadKey              = errors.New("failed to load encryption key")
	ErrKeyNotSet                    = errors.New("OTP encryption key not set")
	ErrFailedToDeriveKey            = errors.New("failed to derive encryption key")
	ErrInvalidRecoveryCodeCount     = errors.New("invalid recovery code count, must be greater than 0")
	ErrFailedToGenerateRecoveryCode = errors.New("failed to generate recovery code")
)
