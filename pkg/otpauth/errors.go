package otpauth

import "errors"

var (
	ErrMissingSecret             = errors.New("missing secret")
	ErrInvalidSecret             = errors.New("invalid secret")
	ErrMissingAccountName        = errors.New("missing account name")
	ErrMissingIssuer             = errors.New("missing issuer")
	ErrInvalidType               = errors.New("invalid OTP type")
	ErrFailedToGenerateSecretKey = errors.New("failed to generate secret key")
	ErrFailedToGenerateQRCode    = errors.New("failed to generate QR code")
)
