package otpauth_test

import (
	"testing"

	"github.com/otpkit/otpkit/pkg/oath"
	"github.com/otpkit/otpkit/pkg/otpauth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()

	secret, err := otpauth.GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.Regexp(t, otpauth.ValidateSecretKeyRegex, secret)

	// The key must round-trip through the oath decoder.
	raw, err := oath.DecodeBase32Key(secret)
	require.NoError(t, err)
	assert.Len(t, raw, 20)
}

func TestURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  otpauth.Params
		want    string
		wantErr error
	}{
		{
			name: "totp defaults",
			params: otpauth.Params{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test@example.com",
				Issuer:      "TestApp",
			},
			want: "otpauth://totp/TestApp:test@example.com?algorithm=SHA1&digits=6&issuer=TestApp&period=30&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name: "totp with explicit fields",
			params: otpauth.Params{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test@example.com",
				Issuer:      "TestApp",
				Algorithm:   oath.SHA256,
				Digits:      8,
				Period:      60,
			},
			want: "otpauth://totp/TestApp:test@example.com?algorithm=SHA256&digits=8&issuer=TestApp&period=60&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name: "issuer with special characters",
			params: otpauth.Params{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test+user@example.com",
				Issuer:      "Test & App",
			},
			want: "otpauth://totp/Test%20&%20App:test+user@example.com?algorithm=SHA1&digits=6&issuer=Test+%26+App&period=30&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name: "hotp carries a counter instead of a period",
			params: otpauth.Params{
				Type:        otpauth.TypeHOTP,
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test@example.com",
				Issuer:      "TestApp",
				Counter:     5,
			},
			want: "otpauth://hotp/TestApp:test@example.com?algorithm=SHA1&counter=5&digits=6&issuer=TestApp&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name:    "missing secret",
			params:  otpauth.Params{AccountName: "a", Issuer: "b"},
			wantErr: otpauth.ErrMissingSecret,
		},
		{
			name: "secret not base32",
			params: otpauth.Params{
				Secret:      "not-base32!",
				AccountName: "a",
				Issuer:      "b",
			},
			wantErr: otpauth.ErrInvalidSecret,
		},
		{
			name: "missing account name",
			params: otpauth.Params{
				Secret: "ABCDEFGHIJKLMNOP",
				Issuer: "b",
			},
			wantErr: otpauth.ErrMissingAccountName,
		},
		{
			name: "missing issuer",
			params: otpauth.Params{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "a",
			},
			wantErr: otpauth.ErrMissingIssuer,
		},
		{
			name: "unknown type",
			params: otpauth.Params{
				Type:        "steam",
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "a",
				Issuer:      "b",
			},
			wantErr: otpauth.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := otpauth.URI(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCode(t *testing.T) {
	t.Parallel()

	params := otpauth.Params{
		Secret:      "ABCDEFGHIJKLMNOP",
		AccountName: "test@example.com",
		Issuer:      "TestApp",
	}

	png, err := otpauth.QRCode(params, 0)
	require.NoError(t, err)
	assert.True(t, len(png) > 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), png[:8], "output must be a PNG image")

	_, err = otpauth.QRCode(otpauth.Params{}, 256)
	assert.ErrorIs(t, err, otpauth.ErrMissingSecret)
}

func TestQRCodeBase64Image(t *testing.T) {
	t.Parallel()

	params := otpauth.Params{
		Secret:      "ABCDEFGHIJKLMNOP",
		AccountName: "test@example.com",
		Issuer:      "TestApp",
	}

	dataURI, err := otpauth.QRCodeBase64Image(params, 128)
	require.NoError(t, err)
	assert.Contains(t, dataURI, "data:image/png;base64,")
}
