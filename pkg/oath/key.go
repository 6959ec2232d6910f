package oath

import (
	"encoding/base32"
	"encoding/hex"
)

// base32NoPadding is the RFC 4648 alphabet without padding, the format used by
// authenticator apps to exchange shared secrets.
var base32NoPadding = base32.StdEncoding.WithPadding(base32.NoPadding)

// DecodeHexKey converts a hexadecimal string into raw secret bytes. Any non-hex
// digit or an odd-length input yields ErrInvalidKey.
func DecodeHexKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidKey
	}
	return key, nil
}

// DecodeBase32Key converts an unpadded RFC 4648 base32 string into raw secret
// bytes. Any symbol outside the alphabet yields ErrInvalidKey.
func DecodeBase32Key(s string) ([]byte, error) {
	key, err := base32NoPadding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidKey
	}
	return key, nil
}

// EncodeBase32Key renders raw secret bytes in the unpadded RFC 4648 alphabet,
// the inverse of DecodeBase32Key.
func EncodeBase32Key(key []byte) string {
	return base32NoPadding.EncodeToString(key)
}
