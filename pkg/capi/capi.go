package capi

import (
	"time"
	"unsafe"

	"github.com/otpkit/otpkit/pkg/oath"
)

// Call results shared by every entry point. Success and Valid/Invalid are kept
// distinct from all error codes, which start at 1 and are never returned by
// validity checks.
const (
	Success int32 = 0

	Valid   int32 = 1
	Invalid int32 = 0
)

// HOTPConfig mirrors the C configuration struct for counter-based codes.
// Pointer fields reference caller-owned memory; the caller keeps them alive
// for the duration of a call. Init populates every field before the caller
// mutates individual ones, so no field is ever read uninitialized.
type HOTPConfig struct {
	Key           unsafe.Pointer
	KeyLen        uint64
	OutputLen     uint64
	OutputBase    unsafe.Pointer
	OutputBaseLen uint64
	HashFunction  int32
	Counter       uint64
}

// TOTPConfig mirrors the C configuration struct for time-based codes.
// Timestamp is a Unix time; zero means "use the current clock". Tolerance is
// the verification window in ±periods.
type TOTPConfig struct {
	Key           unsafe.Pointer
	KeyLen        uint64
	OutputLen     uint64
	OutputBase    unsafe.Pointer
	OutputBaseLen uint64
	HashFunction  int32
	Timestamp     int64
	Period        uint32
	Tolerance     uint32
}

// HOTPInit fills cfg with the RFC 4226 defaults: six decimal digits, SHA1,
// counter zero, and null key/base pointers the caller must replace.
func HOTPInit(cfg *HOTPConfig) int32 {
	if cfg == nil {
		return int32(oath.ErrCfgNullPtr)
	}
	*cfg = HOTPConfig{
		OutputLen:    oath.DefaultOutputLen,
		HashFunction: int32(oath.SHA1),
	}
	return Success
}

// TOTPInit fills cfg with the RFC 6238 defaults: six decimal digits, SHA1, a
// 30-second period, no tolerance, and the current clock (timestamp zero).
func TOTPInit(cfg *TOTPConfig) int32 {
	if cfg == nil {
		return int32(oath.ErrCfgNullPtr)
	}
	*cfg = TOTPConfig{
		OutputLen:    oath.DefaultOutputLen,
		HashFunction: int32(oath.SHA1),
		Period:       oath.DefaultPeriod,
	}
	return Success
}

// HOTPGenerate renders the code for cfg's counter into the caller-owned code
// buffer, which must hold at least OutputLen+1 bytes: OutputLen symbols
// followed by one NUL terminator. Returns Success or an error code; on error
// nothing is written.
func HOTPGenerate(cfg *HOTPConfig, code unsafe.Pointer) int32 {
	gen, errno := buildHOTP(cfg)
	if errno != Success {
		return errno
	}
	dest, errno := getMutCode(code, cfg.OutputLen)
	if errno != Success {
		return errno
	}
	writeCode(gen.Generate(cfg.Counter), dest)
	return Success
}

// HOTPIsValid checks a caller-supplied code of exactly cfg.OutputLen bytes
// against cfg's counter. Returns Valid or Invalid; every malformed input
// collapses to Invalid rather than an error.
func HOTPIsValid(cfg *HOTPConfig, code unsafe.Pointer) int32 {
	gen, errno := buildHOTP(cfg)
	if errno != Success {
		return Invalid
	}
	submitted, errno := getCode(code, cfg.OutputLen)
	if errno != Success {
		return Invalid
	}
	if gen.Verify(submitted, cfg.Counter) {
		return Valid
	}
	return Invalid
}

// TOTPGenerate renders the code for cfg's time step into the caller-owned
// code buffer of at least OutputLen+1 bytes. Returns Success or an error
// code; on error nothing is written.
func TOTPGenerate(cfg *TOTPConfig, code unsafe.Pointer) int32 {
	gen, errno := buildTOTP(cfg)
	if errno != Success {
		return errno
	}
	dest, errno := getMutCode(code, cfg.OutputLen)
	if errno != Success {
		return errno
	}
	writeCode(gen.GenerateAt(timestampOf(cfg)), dest)
	return Success
}

// TOTPIsValid checks a caller-supplied code of exactly cfg.OutputLen bytes
// against cfg's time step, honoring the tolerance window. Returns Valid or
// Invalid; every malformed input collapses to Invalid.
func TOTPIsValid(cfg *TOTPConfig, code unsafe.Pointer) int32 {
	gen, errno := buildTOTP(cfg)
	if errno != Success {
		return Invalid
	}
	submitted, errno := getCode(code, cfg.OutputLen)
	if errno != Success {
		return Invalid
	}
	if gen.VerifyAt(submitted, timestampOf(cfg)) {
		return Valid
	}
	return Invalid
}

func buildHOTP(cfg *HOTPConfig) (*oath.HOTP, int32) {
	if cfg == nil {
		return nil, int32(oath.ErrCfgNullPtr)
	}
	key, errno := getKey(cfg.Key, cfg.KeyLen)
	if errno != Success {
		return nil, errno
	}
	base, errno := getOutputBase(cfg.OutputBase, cfg.OutputBaseLen)
	if errno != Success {
		return nil, errno
	}
	gen, err := oath.NewHOTPBuilder().
		Key(key).
		OutputLen(int(cfg.OutputLen)).
		OutputBase(base).
		HashFunction(hashFunctionOf(cfg.HashFunction)).
		Finalize()
	if err != nil {
		return nil, errnoOf(err)
	}
	return gen, Success
}

func buildTOTP(cfg *TOTPConfig) (*oath.TOTP, int32) {
	if cfg == nil {
		return nil, int32(oath.ErrCfgNullPtr)
	}
	key, errno := getKey(cfg.Key, cfg.KeyLen)
	if errno != Success {
		return nil, errno
	}
	base, errno := getOutputBase(cfg.OutputBase, cfg.OutputBaseLen)
	if errno != Success {
		return nil, errno
	}
	gen, err := oath.NewTOTPBuilder().
		Key(key).
		OutputLen(int(cfg.OutputLen)).
		OutputBase(base).
		HashFunction(hashFunctionOf(cfg.HashFunction)).
		Period(cfg.Period).
		Tolerance(uint(cfg.Tolerance)).
		Finalize()
	if err != nil {
		return nil, errnoOf(err)
	}
	return gen, Success
}

func timestampOf(cfg *TOTPConfig) time.Time {
	if cfg.Timestamp == 0 {
		return time.Now()
	}
	return time.Unix(cfg.Timestamp, 0)
}

// hashFunctionOf maps the ABI selector to a HashFunction. Out-of-range values
// normalize to SHA1, the RFC 4226 default.
func hashFunctionOf(raw int32) oath.HashFunction {
	switch h := oath.HashFunction(raw); h {
	case oath.SHA1, oath.SHA256, oath.SHA512:
		return h
	default:
		return oath.SHA1
	}
}

// errnoOf converts a build error into its ABI code. Finalize only ever
// returns oath.ErrorCode values.
func errnoOf(err error) int32 {
	if code, ok := err.(oath.ErrorCode); ok {
		return int32(code)
	}
	return int32(oath.ErrInvalidKey)
}
