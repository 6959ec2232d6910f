package oath

import "math"

const (
	// DefaultOutputLen is the number of symbols in a rendered code when the
	// caller does not choose one.
	DefaultOutputLen = 6
	// DefaultPeriod is the TOTP time-step width in seconds (RFC 6238).
	DefaultPeriod = 30

	// minCodeSpace is the smallest accepted radix^length. RFC 4226 requires
	// codes equivalent to at least six decimal digits.
	minCodeSpace = 1_000_000
)

// defaultOutputBase returns the ten ASCII digits, the alphabet used when the
// caller does not choose one.
func defaultOutputBase() []byte {
	return []byte("0123456789")
}

// builderCore holds the state and validation logic shared by HOTPBuilder and
// TOTPBuilder. Both builders embed it and expose thin chainable setters, which
// keeps the two variants structurally identical without inheritance.
//
// A setter that can fail records its error here instead of raising it; only
// the first recorded error is kept and it surfaces when the owning builder
// finalizes. Builders are single-owner and not safe for concurrent use.
type builderCore struct {
	key        []byte
	outputLen  int
	outputBase []byte
	hash       HashFunction
	err        error
}

func newBuilderCore() builderCore {
	return builderCore{
		outputLen:  DefaultOutputLen,
		outputBase: defaultOutputBase(),
		hash:       SHA1,
	}
}

func (b *builderCore) setKey(key []byte) {
	b.key = append([]byte(nil), key...)
}

func (b *builderCore) setASCIIKey(key string) {
	b.key = []byte(key)
}

func (b *builderCore) setHexKey(key string) {
	decoded, err := DecodeHexKey(key)
	if err != nil {
		b.recordErr(err)
		return
	}
	b.key = decoded
}

func (b *builderCore) setBase32Key(key string) {
	decoded, err := DecodeBase32Key(key)
	if err != nil {
		b.recordErr(err)
		return
	}
	b.key = decoded
}

func (b *builderCore) setOutputLen(n int) {
	b.outputLen = n
}

func (b *builderCore) setOutputBase(base []byte) {
	b.outputBase = append([]byte(nil), base...)
}

func (b *builderCore) setHashFunction(h HashFunction) {
	b.hash = h
}

// recordErr keeps the first setter failure. Later failures are dropped so a
// chained configuration reports the error closest to its cause.
func (b *builderCore) recordErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// validate checks the accumulated state and returns the code space
// (radix^length) a generator built from it will reduce into. Checks run in a
// fixed order and stop at the first violation. It never mutates the builder,
// so repeated finalize calls are idempotent.
func (b *builderCore) validate() (uint64, error) {
	if len(b.key) == 0 {
		return 0, ErrInvalidKey
	}
	if len(b.outputBase) < 2 {
		return 0, ErrInvalidBaseLen
	}
	if b.err != nil {
		return 0, b.err
	}
	return b.codeSpace()
}

// codeSpace computes radix^outputLen with checked multiplication. Overflow is
// a build-time rejection, never a runtime saturation.
func (b *builderCore) codeSpace() (uint64, error) {
	radix := uint64(len(b.outputBase))
	space := uint64(1)
	for i := 0; i < b.outputLen; i++ {
		if space > math.MaxUint64/radix {
			return 0, ErrCodeTooBig
		}
		space *= radix
	}
	if space < minCodeSpace {
		return 0, ErrCodeTooSmall
	}
	return space, nil
}
