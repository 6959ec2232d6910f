package capi

import (
	"unicode/utf8"
	"unsafe"

	"github.com/otpkit/otpkit/pkg/oath"
)

// This file is the only place that dereferences foreign memory. Every helper
// validates its pointer and length before touching bytes and copies into
// Go-owned memory, so no business logic ever sees a raw pointer.

// getKey copies a caller-owned key into Go memory. A null pointer and a zero
// length are distinct failures.
func getKey(ptr unsafe.Pointer, n uint64) ([]byte, int32) {
	if ptr == nil {
		return nil, int32(oath.ErrKeyNullPtr)
	}
	if n == 0 {
		return nil, int32(oath.ErrInvalidKeyLen)
	}
	return copyBytes(ptr, n), Success
}

// getOutputBase copies a caller-owned alphabet into Go memory. A null pointer
// selects the default decimal alphabet; lengths 0 and 1 cannot form a radix.
func getOutputBase(ptr unsafe.Pointer, n uint64) ([]byte, int32) {
	if ptr == nil {
		return []byte("0123456789"), Success
	}
	if n == 0 || n == 1 {
		return nil, int32(oath.ErrInvalidBaseLen)
	}
	return copyBytes(ptr, n), Success
}

// getCode copies n bytes of a caller-owned code buffer and validates them as
// UTF-8 text.
func getCode(ptr unsafe.Pointer, n uint64) (string, int32) {
	if ptr == nil {
		return "", int32(oath.ErrCodeNullPtr)
	}
	code := copyBytes(ptr, n)
	if !utf8.Valid(code) {
		return "", int32(oath.ErrCodeInvalidUTF8)
	}
	return string(code), Success
}

// getMutCode exposes a caller-owned output buffer of exactly n+1 bytes, the
// extra byte holding the NUL terminator.
func getMutCode(ptr unsafe.Pointer, n uint64) ([]byte, int32) {
	if ptr == nil {
		return nil, int32(oath.ErrCodeNullPtr)
	}
	return unsafe.Slice((*byte)(ptr), n+1), Success
}

// writeCode copies the rendered code into dest and appends the terminating
// NUL. The caller guarantees len(dest) >= len(code)+1; this is the documented
// precondition of the output-buffer convention, not checked here.
func writeCode(code string, dest []byte) {
	n := copy(dest, code)
	dest[n] = 0
}

func copyBytes(ptr unsafe.Pointer, n uint64) []byte {
	return append([]byte(nil), unsafe.Slice((*byte)(ptr), n)...)
}
