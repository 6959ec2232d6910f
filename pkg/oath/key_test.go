package oath_test

import (
	"encoding/hex"
	"testing"

	"github.com/otpkit/otpkit/pkg/oath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHexKeyRoundTrip(t *testing.T) {
	t.Parallel()

	tests := [][]byte{
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		[]byte("12345678901234567890"),
		{0xff, 0x00, 0x7f, 0x80, 0x01},
	}

	for _, raw := range tests {
		decoded, err := oath.DecodeHexKey(hex.EncodeToString(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
	}
}

func TestDecodeHexKeyRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "odd length", in: "abc"},
		{name: "non-hex digit", in: "zz"},
		{name: "embedded space", in: "ab cd"},
		{name: "unicode", in: "абвг"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, err := oath.DecodeHexKey(tt.in)
			assert.ErrorIs(t, err, oath.ErrInvalidKey)
			assert.Nil(t, key)
		})
	}
}

func TestDecodeBase32Key(t *testing.T) {
	t.Parallel()

	decoded, err := oath.DecodeBase32Key("GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678901234567890"), decoded)
}

func TestDecodeBase32KeyRejectsOutOfAlphabetSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "lowercase", in: "gezdgnbv"},
		{name: "digit one", in: "GEZD1NBV"},
		{name: "digit zero", in: "GEZD0NBV"},
		{name: "punctuation", in: "GEZD!NBV"},
		{name: "padding", in: "MZXW6==="},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, err := oath.DecodeBase32Key(tt.in)
			assert.ErrorIs(t, err, oath.ErrInvalidKey)
			assert.Nil(t, key)
		})
	}
}

func TestEncodeBase32KeyInvertsDecode(t *testing.T) {
	t.Parallel()

	encoded := oath.EncodeBase32Key([]byte("12345678901234567890"))
	assert.Equal(t, "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", encoded)

	decoded, err := oath.DecodeBase32Key(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678901234567890"), decoded)
}

func TestParseHashFunction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want oath.HashFunction
		ok   bool
	}{
		{in: "sha1", want: oath.SHA1, ok: true},
		{in: "SHA-256", want: oath.SHA256, ok: true},
		{in: " sha512 ", want: oath.SHA512, ok: true},
		{in: "md5", want: oath.SHA1, ok: false},
		{in: "", want: oath.SHA1, ok: false},
	}

	for _, tt := range tests {
		tt := tt
		got, ok := oath.ParseHashFunction(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
