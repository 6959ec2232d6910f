// Package capi is the unsafe boundary between the oath generators and foreign
// callers. It translates raw pointer/length pairs into validated, Go-owned
// values and maps every failure to one integer from the stable error-code set,
// never panicking on malformed input.
//
// # Architecture
//
// All pointer handling is isolated here; nothing outside this package imports
// unsafe. The helpers in bytes.go validate and copy foreign memory, the entry
// points in capi.go assemble oath builders from the C-mirroring config
// structs. The cmd/libotp shim exports these entry points over cgo for a
// c-shared build.
//
// Call conventions, stable across versions:
//
//   • Init functions populate every config field with defaults and return
//     Success, or CfgNullPtr for a nil config.
//   • Generate functions write OutputLen symbol bytes plus one NUL terminator
//     into a caller-owned buffer of at least OutputLen+1 bytes and return
//     Success (0) or a positive error code; on error nothing is written.
//   • IsValid functions return Valid (1) or Invalid (0); malformed input
//     collapses to Invalid so the result is always a usable boolean.
//
// # Error Handling
//
// Error codes are the numeric values of oath.ErrorCode: null pointers map to
// CfgNullPtr/KeyNullPtr/CodeNullPtr, a zero key length to InvalidKeyLen, a
// degenerate alphabet to InvalidBaseLen, non-UTF-8 code bytes to
// CodeInvalidUTF8, and build failures to their oath code. Success (0) is
// disjoint from all error codes; IsValid calls never return error codes at
// all, only Valid or Invalid.
package capi
