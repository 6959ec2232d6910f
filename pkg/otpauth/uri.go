package otpauth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/otpkit/otpkit/pkg/oath"
)

// Type selects the otpauth URI flavour.
type Type string

const (
	TypeTOTP Type = "totp"
	TypeHOTP Type = "hotp"
)

// ValidateSecretKeyRegex ensures Base32 format: uppercase A-Z, digits 2-7, optional padding
var ValidateSecretKeyRegex = regexp.MustCompile("^[A-Z2-7]+=*$")

// Params describes an enrollment for the Key Uri Format understood by
// authenticator apps:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
type Params struct {
	Type        Type              // totp or hotp (optional, defaults to totp)
	Secret      string            // Base32-encoded shared secret (required)
	AccountName string            // User identifier like email (required)
	Issuer      string            // Service name displayed in authenticator apps (required)
	Algorithm   oath.HashFunction // HMAC algorithm (optional, defaults to SHA1)
	Digits      int               // Number of symbols in generated codes (optional, defaults to 6)
	Period      int               // Code validity period in seconds, TOTP only (optional, defaults to 30)
	Counter     uint64            // Initial counter value, HOTP only
}

// Validate ensures all required parameters are present and well formed.
func (p Params) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if !ValidateSecretKeyRegex.MatchString(p.Secret) {
		return ErrInvalidSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	if p.Type != "" && p.Type != TypeTOTP && p.Type != TypeHOTP {
		return ErrInvalidType
	}
	return nil
}

// GetDefaults returns a copy with the RFC standard defaults applied to
// zero-valued fields.
func (p Params) GetDefaults() Params {
	if p.Type == "" {
		p.Type = TypeTOTP
	}
	if p.Algorithm == 0 {
		p.Algorithm = oath.SHA1
	}
	if p.Digits == 0 {
		p.Digits = oath.DefaultOutputLen
	}
	if p.Period == 0 {
		p.Period = oath.DefaultPeriod
	}
	return p
}

// GenerateSecretKey generates a new Base32-encoded secret key.
func GenerateSecretKey() (string, error) {
	secret := make([]byte, 20) // 160-bit secret (RFC 4226 recommendation for cryptographic strength)
	if _, err := rand.Read(secret); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecretKey, err)
	}
	return oath.EncodeBase32Key(secret), nil
}

// URI creates a properly encoded otpauth:// URI for use with authenticator
// apps such as Google Authenticator and 1Password.
func URI(params Params) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	params = params.GetDefaults()

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", params.Secret)
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", params.Algorithm.String())
	query.Set("digits", fmt.Sprintf("%d", params.Digits))
	switch params.Type {
	case TypeHOTP:
		query.Set("counter", fmt.Sprintf("%d", params.Counter))
	default:
		query.Set("period", fmt.Sprintf("%d", params.Period))
	}

	return fmt.Sprintf("otpauth://%s/%s?%s", params.Type, label, query.Encode()), nil
}
