package oath

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/binary"
)

// HOTP is an immutable, validated counter-based OTP generator (RFC 4226).
// A finalized value is read-only and safe for concurrent use.
type HOTP struct {
	key        []byte
	outputLen  int
	outputBase []byte
	hash       HashFunction
	space      uint64 // radix^outputLen, proven in range at build time
}

// HOTPBuilder accumulates configuration for an HOTP generator. Setters chain
// and never fail immediately; decoding errors surface from Finalize.
type HOTPBuilder struct {
	core builderCore
}

// NewHOTPBuilder returns a builder preloaded with the RFC 4226 defaults:
// six decimal digits and HMAC-SHA1.
func NewHOTPBuilder() *HOTPBuilder {
	return &HOTPBuilder{core: newBuilderCore()}
}

// Key sets the shared secret from raw bytes. The bytes are copied.
func (b *HOTPBuilder) Key(key []byte) *HOTPBuilder {
	b.core.setKey(key)
	return b
}

// ASCIIKey sets the shared secret from an ASCII string, reinterpreted as its
// byte sequence.
func (b *HOTPBuilder) ASCIIKey(key string) *HOTPBuilder {
	b.core.setASCIIKey(key)
	return b
}

// HexKey sets the shared secret from a hexadecimal string.
func (b *HOTPBuilder) HexKey(key string) *HOTPBuilder {
	b.core.setHexKey(key)
	return b
}

// Base32Key sets the shared secret from an unpadded RFC 4648 base32 string.
func (b *HOTPBuilder) Base32Key(key string) *HOTPBuilder {
	b.core.setBase32Key(key)
	return b
}

// OutputLen sets the number of symbols in the rendered code. Default is 6.
func (b *HOTPBuilder) OutputLen(n int) *HOTPBuilder {
	b.core.setOutputLen(n)
	return b
}

// OutputBase sets the ordered symbol alphabet used to render codes; its length
// is the numeric radix. Default is the ten ASCII digits.
func (b *HOTPBuilder) OutputBase(base []byte) *HOTPBuilder {
	b.core.setOutputBase(base)
	return b
}

// HashFunction sets the HMAC primitive. Default is SHA1.
func (b *HOTPBuilder) HashFunction(h HashFunction) *HOTPBuilder {
	b.core.setHashFunction(h)
	return b
}

// Finalize validates the accumulated configuration and freezes it into an
// immutable generator. It reports the first violated rule as an ErrorCode and
// leaves the builder untouched, so it may be called repeatedly.
func (b *HOTPBuilder) Finalize() (*HOTP, error) {
	space, err := b.core.validate()
	if err != nil {
		return nil, err
	}
	return &HOTP{
		key:        append([]byte(nil), b.core.key...),
		outputLen:  b.core.outputLen,
		outputBase: append([]byte(nil), b.core.outputBase...),
		hash:       b.core.hash,
		space:      space,
	}, nil
}

// Generate computes the code for a counter value using RFC 4226 §5.3 dynamic
// truncation. It is a pure function of the config and counter and cannot fail
// on a finalized config.
func (h *HOTP) Generate(counter uint64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(h.hash.factory(), h.key)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	// Dynamic truncation: the low nibble of the last byte selects a 4-byte
	// window, whose top bit is masked to yield a 31-bit big-endian integer.
	offset := digest[len(digest)-1] & 0x0f
	bin := uint64(digest[offset]&0x7f)<<24 |
		uint64(digest[offset+1])<<16 |
		uint64(digest[offset+2])<<8 |
		uint64(digest[offset+3])

	return renderCode(bin%h.space, h.outputBase, h.outputLen)
}

// Verify reports whether code matches the counter's expected code, comparing
// in constant time to avoid leaking the match position.
func (h *HOTP) Verify(code string, counter uint64) bool {
	expected := h.Generate(counter)
	return subtle.ConstantTimeCompare([]byte(code), []byte(expected)) == 1
}

// OutputLen returns the number of symbols in a rendered code.
func (h *HOTP) OutputLen() int {
	return h.outputLen
}

// renderCode writes value in the given radix, most significant digit first,
// left-padded with the alphabet's zero symbol to exactly n symbols.
func renderCode(value uint64, base []byte, n int) string {
	radix := uint64(len(base))
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = base[value%radix]
		value /= radix
	}
	return string(out)
}
