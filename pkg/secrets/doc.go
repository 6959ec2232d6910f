// Package secrets provides hardening helpers for OTP shared secrets at rest:
// AES-256-GCM sealing, master-key handling, passphrase stretching, and
// single-use recovery codes.
//
// The package does not persist anything itself. Callers decide where sealed
// secrets and recovery-code hashes live; everything here is a pure function
// over caller-supplied material.
//
// # Architecture
//
//   • seal.go – Encrypt/Decrypt seal a secret string with AES-256-GCM under a
//     subkey derived from the 32-byte master key via HKDF-SHA256, giving
//     domain separation from any other use of the same master key. Key
//     utilities generate random master keys and decode the base64 form used
//     in configuration.
//
//   • derive.go – DeriveKey stretches a passphrase into a master key with
//     scrypt for deployments that key encryption off an operator passphrase
//     instead of a stored key.
//
//   • recovery.go – helpers create, hash and verify single-use recovery codes
//     offered to users in case they permanently lose their authenticator
//     device. Verification is constant time.
//
// The master key is loaded once per process via the env tag aware loader in
// config.go. The required environment variable is OTP_ENCRYPTION_KEY and it
// must contain a Base64 encoded 32-byte key suitable for AES-256.
//
// # Usage
//
//	key, _ := secrets.LoadKey()
//	sealed, _ := secrets.Encrypt(totpSecret, key)
//	// persist sealed in your datastore
//	plain, _ := secrets.Decrypt(sealed, key)
//
// # Error Handling
//
// Every exported operation returns a descriptive error that may be wrapped
// using errors.Join. Inspect errors with errors.Is against package level
// sentinels such as ErrFailedToEncryptSecret, ErrInvalidKeyLength,
// ErrKeyNotSet.
package secrets
