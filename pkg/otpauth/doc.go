// Package otpauth builds the enrollment surface around the oath generators:
// secret key creation, otpauth:// URI construction compatible with
// authenticator applications, and QR code rendering of those URIs.
//
// # Architecture
//
// Params collects the enrollment attributes, validates them, and fills RFC
// defaults. URI renders a Key-Uri-Format string for either flavour (totp gets
// a period parameter, hotp a counter). QRCode and QRCodeBase64Image delegate
// image generation to github.com/skip2/go-qrcode and post-process the result
// into raw PNG bytes or an HTML-embeddable data-URI.
//
// # Usage
//
//	secret, _ := otpauth.GenerateSecretKey()
//	uri, err := otpauth.URI(otpauth.Params{
//		Secret:      secret,
//		AccountName: "alice@example.com",
//		Issuer:      "Acme",
//	})
//	if err != nil {
//		// handle error
//	}
//	png, _ := otpauth.QRCode(otpauth.Params{Secret: secret, AccountName: "alice@example.com", Issuer: "Acme"}, 256)
//	_ = uri
//	_ = png
//
// # Error Handling
//
// Validation failures are reported as package-level sentinels
// (ErrMissingSecret, ErrInvalidSecret, ErrMissingAccountName, ...) and
// generation failures wrap the upstream cause with errors.Join. Compare with
// errors.Is.
package otpauth
