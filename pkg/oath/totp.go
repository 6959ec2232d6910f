package oath

import "time"

// TOTP is an immutable, validated time-based OTP generator (RFC 6238). It
// derives the HOTP counter from wall-clock time and a fixed period. A
// finalized value is read-only and safe for concurrent use.
type TOTP struct {
	hotp      HOTP
	period    uint32
	tolerance uint
}

// TOTPBuilder accumulates configuration for a TOTP generator. Setters chain
// and never fail immediately; decoding errors surface from Finalize.
type TOTPBuilder struct {
	core      builderCore
	period    uint32
	tolerance uint
}

// NewTOTPBuilder returns a builder preloaded with the RFC 6238 defaults:
// six decimal digits, HMAC-SHA1, a 30-second period, and no tolerance window.
func NewTOTPBuilder() *TOTPBuilder {
	return &TOTPBuilder{core: newBuilderCore(), period: DefaultPeriod}
}

// Key sets the shared secret from raw bytes. The bytes are copied.
func (b *TOTPBuilder) Key(key []byte) *TOTPBuilder {
	b.core.setKey(key)
	return b
}

// ASCIIKey sets the shared secret from an ASCII string, reinterpreted as its
// byte sequence.
func (b *TOTPBuilder) ASCIIKey(key string) *TOTPBuilder {
	b.core.setASCIIKey(key)
	return b
}

// HexKey sets the shared secret from a hexadecimal string.
func (b *TOTPBuilder) HexKey(key string) *TOTPBuilder {
	b.core.setHexKey(key)
	return b
}

// Base32Key sets the shared secret from an unpadded RFC 4648 base32 string.
func (b *TOTPBuilder) Base32Key(key string) *TOTPBuilder {
	b.core.setBase32Key(key)
	return b
}

// OutputLen sets the number of symbols in the rendered code. Default is 6.
func (b *TOTPBuilder) OutputLen(n int) *TOTPBuilder {
	b.core.setOutputLen(n)
	return b
}

// OutputBase sets the ordered symbol alphabet used to render codes; its length
// is the numeric radix. Default is the ten ASCII digits.
func (b *TOTPBuilder) OutputBase(base []byte) *TOTPBuilder {
	b.core.setOutputBase(base)
	return b
}

// HashFunction sets the HMAC primitive. Default is SHA1.
func (b *TOTPBuilder) HashFunction(h HashFunction) *TOTPBuilder {
	b.core.setHashFunction(h)
	return b
}

// Period sets the time-step width in seconds. Default is 30.
func (b *TOTPBuilder) Period(seconds uint32) *TOTPBuilder {
	b.period = seconds
	return b
}

// Tolerance sets the verification window to ±n periods around the current
// time step. Default is 0, accepting only the current step's code.
func (b *TOTPBuilder) Tolerance(n uint) *TOTPBuilder {
	b.tolerance = n
	return b
}

// Finalize validates the accumulated configuration and freezes it into an
// immutable generator. It reports the first violated rule as an ErrorCode and
// leaves the builder untouched, so it may be called repeatedly.
func (b *TOTPBuilder) Finalize() (*TOTP, error) {
	space, err := b.core.validate()
	if err != nil {
		return nil, err
	}
	if b.period < 1 {
		return nil, ErrInvalidPeriod
	}
	return &TOTP{
		hotp: HOTP{
			key:        append([]byte(nil), b.core.key...),
			outputLen:  b.core.outputLen,
			outputBase: append([]byte(nil), b.core.outputBase...),
			hash:       b.core.hash,
			space:      space,
		},
		period:    b.period,
		tolerance: b.tolerance,
	}, nil
}

// counterAt maps a wall-clock instant to its HOTP counter: floor(unix/period).
// Instants before the Unix epoch clamp to counter zero.
func (t *TOTP) counterAt(ts time.Time) uint64 {
	sec := ts.Unix()
	if sec < 0 {
		sec = 0
	}
	return uint64(sec) / uint64(t.period)
}

// Generate computes the code for the current time step.
func (t *TOTP) Generate() string {
	return t.GenerateAt(time.Now())
}

// GenerateAt computes the code for the time step containing ts.
func (t *TOTP) GenerateAt(ts time.Time) string {
	return t.hotp.Generate(t.counterAt(ts))
}

// Verify reports whether code is valid for the current time, honoring the
// configured tolerance window.
func (t *TOTP) Verify(code string) bool {
	return t.VerifyAt(code, time.Now())
}

// VerifyAt checks code against every counter in [current-N, current+N] where
// N is the tolerance. Each candidate uses a constant-time comparison; the scan
// may short-circuit across candidates since counters are not secret.
func (t *TOTP) VerifyAt(code string, ts time.Time) bool {
	current := t.counterAt(ts)
	n := uint64(t.tolerance)
	low := uint64(0)
	if current > n {
		low = current - n
	}
	for counter := low; counter <= current+n; counter++ {
		if t.hotp.Verify(code, counter) {
			return true
		}
	}
	return false
}

// OutputLen returns the number of symbols in a rendered code.
func (t *TOTP) OutputLen() int {
	return t.hotp.outputLen
}

// Period returns the time-step width in seconds.
func (t *TOTP) Period() uint32 {
	return t.period
}
