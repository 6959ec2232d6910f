// Package oath implements the HOTP (RFC 4226) and TOTP (RFC 6238) one-time
// password algorithms with configurable output length, symbol alphabet, and
// HMAC primitive.
//
// The package is self-contained: it depends only on the standard library's
// crypto primitives, keeping services free of third-party OTP implementations
// while remaining bit-exact against the published test vectors.
//
// # Architecture
//
// Configuration and generation are strictly separated.
//
//   • builders – HOTPBuilder and TOTPBuilder accumulate settings through
//     chainable setters. A setter that decodes a key (hex, base32) records its
//     failure on the builder instead of raising it, so a whole configuration
//     chain can be written without intermediate error checks; Finalize
//     surfaces the first recorded problem.
//
//   • validation – Finalize checks the key, the output alphabet, the
//     radix^length code space (checked 64-bit arithmetic), and the TOTP
//     period, in a fixed order, and returns a specific ErrorCode for the
//     first violated rule.
//
//   • generation – a finalized HOTP or TOTP value is immutable and safe to
//     share across goroutines. Generate is a pure function of the config and
//     counter and cannot fail; Verify compares in constant time.
//
// # Usage
//
//	gen, err := oath.NewTOTPBuilder().
//		Base32Key("GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ").
//		OutputLen(8).
//		HashFunction(oath.SHA256).
//		Tolerance(1).
//		Finalize()
//	if err != nil {
//		// handle error
//	}
//	code := gen.Generate()
//	ok := gen.Verify(code)
//
// # Error Handling
//
// Every failure is a permanent input-validation failure reported as an
// ErrorCode constant (ErrInvalidKey, ErrInvalidBaseLen, ErrCodeTooSmall,
// ErrCodeTooBig, ErrInvalidPeriod, ...). ErrorCode implements error and the
// constants compare cleanly with errors.Is. The numeric values double as the
// stable codes of the C ABI; see the capi package.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package oath
