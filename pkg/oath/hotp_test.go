package oath_test

import (
	"testing"

	"github.com/otpkit/otpkit/pkg/oath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rfc4226Key is the shared secret of the RFC 4226 Appendix D reference vectors.
const rfc4226Key = "12345678901234567890"

func TestHOTPGenerateRFC4226Vectors(t *testing.T) {
	t.Parallel()

	want := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}

	gen, err := oath.NewHOTPBuilder().ASCIIKey(rfc4226Key).Finalize()
	require.NoError(t, err)

	for counter, expected := range want {
		assert.Equal(t, expected, gen.Generate(uint64(counter)), "counter %d", counter)
	}
}

func TestHOTPGenerateDeterministic(t *testing.T) {
	t.Parallel()

	gen, err := oath.NewHOTPBuilder().
		HexKey("3132333435363738393031323334353637383930").
		OutputLen(8).
		HashFunction(oath.SHA256).
		Finalize()
	require.NoError(t, err)

	for _, counter := range []uint64{0, 1, 42, 1<<63 + 7} {
		assert.Equal(t, gen.Generate(counter), gen.Generate(counter))
	}
}

func TestHOTPGenerateCustomBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		n    int
	}{
		{name: "hex alphabet", base: "0123456789abcdef", n: 6},
		{name: "uppercase letters", base: "ABCDEFGHIJKLMNOPQRSTUVWXYZ", n: 5},
		{name: "binary", base: "01", n: 26},
		{name: "base62", base: "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", n: 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen, err := oath.NewHOTPBuilder().
				ASCIIKey(rfc4226Key).
				OutputBase([]byte(tt.base)).
				OutputLen(tt.n).
				Finalize()
			require.NoError(t, err)

			for counter := uint64(0); counter < 32; counter++ {
				code := gen.Generate(counter)
				require.Len(t, code, tt.n)
				for _, sym := range []byte(code) {
					assert.Contains(t, tt.base, string(sym))
				}
			}
		})
	}
}

func TestHOTPVerify(t *testing.T) {
	t.Parallel()

	gen, err := oath.NewHOTPBuilder().ASCIIKey(rfc4226Key).Finalize()
	require.NoError(t, err)

	assert.True(t, gen.Verify("755224", 0))
	assert.True(t, gen.Verify("520489", 9))
	assert.False(t, gen.Verify("755224", 1))
	assert.False(t, gen.Verify("75522", 0), "truncated code must not match")
	assert.False(t, gen.Verify("", 0))
}

func TestHOTPBuilderValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func() (*oath.HOTP, error)
		wantErr oath.ErrorCode
	}{
		{
			name:    "no key",
			build:   func() (*oath.HOTP, error) { return oath.NewHOTPBuilder().Finalize() },
			wantErr: oath.ErrInvalidKey,
		},
		{
			name: "empty key",
			build: func() (*oath.HOTP, error) {
				return oath.NewHOTPBuilder().Key(nil).Finalize()
			},
			wantErr: oath.ErrInvalidKey,
		},
		{
			name: "single symbol base",
			build: func() (*oath.HOTP, error) {
				return oath.NewHOTPBuilder().ASCIIKey(rfc4226Key).OutputBase([]byte("0")).Finalize()
			},
			wantErr: oath.ErrInvalidBaseLen,
		},
		{
			name: "empty base",
			build: func() (*oath.HOTP, error) {
				return oath.NewHOTPBuilder().ASCIIKey(rfc4226Key).OutputBase(nil).Finalize()
			},
			wantErr: oath.ErrInvalidBaseLen,
		},
		{
			name: "code space below minimum",
			build: func() (*oath.HOTP, error) {
				return oath.NewHOTPBuilder().ASCIIKey(rfc4226Key).OutputLen(5).Finalize()
			},
			wantErr: oath.ErrCodeTooSmall,
		},
		{
			name: "zero output length",
			build: func() (*oath.HOTP, error) {
				return oath.NewHOTPBuilder().ASCIIKey(rfc4226Key).OutputLen(0).Finalize()
			},
			wantErr: oath.ErrCodeTooSmall,
		},
		{
			name: "code space overflows",
			build: func() (*oath.HOTP, error) {
				base := []byte("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
				return oath.NewHOTPBuilder().ASCIIKey(rfc4226Key).OutputBase(base).OutputLen(11).Finalize()
			},
			wantErr: oath.ErrCodeTooBig,
		},
		{
			name: "bad hex key",
			build: func() (*oath.HOTP, error) {
				return oath.NewHOTPBuilder().HexKey("zz").Finalize()
			},
			wantErr: oath.ErrInvalidKey,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen, err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, gen, "a failed build must never produce a usable config")
		})
	}
}

func TestHOTPBuilderDeferredErrorSurvivesLaterSetters(t *testing.T) {
	t.Parallel()

	// A failing key setter poisons the builder even when a valid key is
	// supplied afterwards; the first error wins.
	gen, err := oath.NewHOTPBuilder().
		Base32Key("not base32!").
		Key([]byte(rfc4226Key)).
		Finalize()
	require.Error(t, err)
	assert.ErrorIs(t, err, oath.ErrInvalidKey)
	assert.Nil(t, gen)
}

func TestHOTPBuilderFinalizeIdempotent(t *testing.T) {
	t.Parallel()

	builder := oath.NewHOTPBuilder().ASCIIKey(rfc4226Key)

	first, err := builder.Finalize()
	require.NoError(t, err)
	second, err := builder.Finalize()
	require.NoError(t, err)

	assert.Equal(t, first.Generate(3), second.Generate(3))
}

func TestHOTPConfigImmutableAfterFinalize(t *testing.T) {
	t.Parallel()

	key := []byte(rfc4226Key)
	builder := oath.NewHOTPBuilder().Key(key)
	gen, err := builder.Finalize()
	require.NoError(t, err)

	reference := gen.Generate(0)

	// Mutating the caller's slice or reusing the builder must not reach into
	// the finalized config.
	key[0] = 'x'
	builder.ASCIIKey("another key entirely")

	assert.Equal(t, reference, gen.Generate(0))
}
