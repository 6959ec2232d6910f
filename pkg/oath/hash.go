package oath

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"
)

// HashFunction selects the HMAC primitive used to compute one-time passwords.
// The numeric values are part of the stable foreign ABI.
type HashFunction int32

const (
	SHA1   HashFunction = 1 // RFC 4226 default
	SHA256 HashFunction = 2
	SHA512 HashFunction = 3
)

// String returns the canonical name used in otpauth:// provisioning URIs.
func (h HashFunction) String() string {
	switch h {
	case SHA256:
		return "SHA256"
	case SHA512:
		return "SHA512"
	default:
		return "SHA1"
	}
}

// factory returns the hash constructor for hmac.New. Unknown values fall back
// to SHA1, the RFC 4226 default, so a finalized config can never panic.
func (h HashFunction) factory() func() hash.Hash {
	switch h {
	case SHA256:
		return sha256.New
	case SHA512:
		return sha512.New
	default:
		return sha1.New
	}
}

// ParseHashFunction resolves a case-insensitive algorithm name such as "sha256".
// The second return value reports whether the name was recognized.
func ParseHashFunction(name string) (HashFunction, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "SHA1", "SHA-1":
		return SHA1, true
	case "SHA256", "SHA-256":
		return SHA256, true
	case "SHA512", "SHA-512":
		return SHA512, true
	default:
		return SHA1, false
	}
}
