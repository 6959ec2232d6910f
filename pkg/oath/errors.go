package oath

import "strconv"

// ErrorCode identifies a single configuration or input failure. The numeric
// values are part of the stable foreign ABI exposed by the C bindings and must
// never be renumbered.
type ErrorCode int32

const (
	ErrCfgNullPtr  ErrorCode = 1
	ErrCodeNullPtr ErrorCode = 2
	ErrKeyNullPtr  ErrorCode = 3

	ErrInvalidBaseLen ErrorCode = 10
	ErrInvalidKeyLen  ErrorCode = 11
	ErrCodeTooSmall   ErrorCode = 12
	ErrCodeTooBig     ErrorCode = 13

	ErrInvalidKey    ErrorCode = 20
	ErrInvalidPeriod ErrorCode = 21

	ErrCodeInvalidUTF8 ErrorCode = 30
)

// Error implements the error interface so codes can be returned directly and
// matched with errors.Is against the package constants.
func (e ErrorCode) Error() string {
	switch e {
	case ErrCfgNullPtr:
		return "configuration pointer is null"
	case ErrCodeNullPtr:
		return "code pointer is null"
	case ErrKeyNullPtr:
		return "key pointer is null"
	case ErrInvalidBaseLen:
		return "output base must contain at least 2 symbols"
	case ErrInvalidKeyLen:
		return "key length must not be zero"
	case ErrCodeTooSmall:
		return "code space is below the one million minimum"
	case ErrCodeTooBig:
		return "code space overflows 64-bit arithmetic"
	case ErrInvalidKey:
		return "key is empty or not a valid encoding"
	case ErrInvalidPeriod:
		return "period must be at least one second"
	case ErrCodeInvalidUTF8:
		return "code is not valid UTF-8"
	default:
		return "unknown error code " + strconv.Itoa(int(e))
	}
}
