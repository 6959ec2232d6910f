// Command libotp builds the C shared library exposing the otpkit generators:
//
//	go build -buildmode=c-shared -o libotp.so ./cmd/libotp
//
// Every exported function is a thin conversion layer over pkg/capi, which owns
// all pointer validation. The declarations live in libotp.h.
package main

/*
#include "libotp.h"
*/
import "C"

import (
	"unsafe"

	"github.com/otpkit/otpkit/pkg/capi"
)

//export libotp_hotp_init
func libotp_hotp_init(cfg *C.libotp_hotp_cfg) C.int32_t {
	if cfg == nil {
		return C.int32_t(capi.HOTPInit(nil))
	}
	var g capi.HOTPConfig
	if rc := capi.HOTPInit(&g); rc != capi.Success {
		return C.int32_t(rc)
	}
	storeHOTP(cfg, &g)
	return C.int32_t(capi.Success)
}

//export libotp_hotp_generate
func libotp_hotp_generate(cfg *C.libotp_hotp_cfg, code *C.uint8_t) C.int32_t {
	if cfg == nil {
		return C.int32_t(capi.HOTPGenerate(nil, unsafe.Pointer(code)))
	}
	g := loadHOTP(cfg)
	return C.int32_t(capi.HOTPGenerate(&g, unsafe.Pointer(code)))
}

//export libotp_hotp_is_valid
func libotp_hotp_is_valid(cfg *C.libotp_hotp_cfg, code *C.uint8_t) C.int32_t {
	if cfg == nil {
		return C.int32_t(capi.HOTPIsValid(nil, unsafe.Pointer(code)))
	}
	g := loadHOTP(cfg)
	return C.int32_t(capi.HOTPIsValid(&g, unsafe.Pointer(code)))
}

//export libotp_totp_init
func libotp_totp_init(cfg *C.libotp_totp_cfg) C.int32_t {
	if cfg == nil {
		return C.int32_t(capi.TOTPInit(nil))
	}
	var g capi.TOTPConfig
	if rc := capi.TOTPInit(&g); rc != capi.Success {
		return C.int32_t(rc)
	}
	storeTOTP(cfg, &g)
	return C.int32_t(capi.Success)
}

//export libotp_totp_generate
func libotp_totp_generate(cfg *C.libotp_totp_cfg, code *C.uint8_t) C.int32_t {
	if cfg == nil {
		return C.int32_t(capi.TOTPGenerate(nil, unsafe.Pointer(code)))
	}
	g := loadTOTP(cfg)
	return C.int32_t(capi.TOTPGenerate(&g, unsafe.Pointer(code)))
}

//export libotp_totp_is_valid
func libotp_totp_is_valid(cfg *C.libotp_totp_cfg, code *C.uint8_t) C.int32_t {
	if cfg == nil {
		return C.int32_t(capi.TOTPIsValid(nil, unsafe.Pointer(code)))
	}
	g := loadTOTP(cfg)
	return C.int32_t(capi.TOTPIsValid(&g, unsafe.Pointer(code)))
}

func loadHOTP(cfg *C.libotp_hotp_cfg) capi.HOTPConfig {
	return capi.HOTPConfig{
		Key:           unsafe.Pointer(cfg.key),
		KeyLen:        uint64(cfg.key_len),
		OutputLen:     uint64(cfg.output_len),
		OutputBase:    unsafe.Pointer(cfg.output_base),
		OutputBaseLen: uint64(cfg.output_base_len),
		HashFunction:  int32(cfg.hash_function),
		Counter:       uint64(cfg.counter),
	}
}

func storeHOTP(dst *C.libotp_hotp_cfg, src *capi.HOTPConfig) {
	dst.key = (*C.uint8_t)(src.Key)
	dst.key_len = C.size_t(src.KeyLen)
	dst.output_len = C.size_t(src.OutputLen)
	dst.output_base = (*C.uint8_t)(src.OutputBase)
	dst.output_base_len = C.size_t(src.OutputBaseLen)
	dst.hash_function = C.int32_t(src.HashFunction)
	dst.counter = C.uint64_t(src.Counter)
}

func loadTOTP(cfg *C.libotp_totp_cfg) capi.TOTPConfig {
	return capi.TOTPConfig{
		Key:           unsafe.Pointer(cfg.key),
		KeyLen:        uint64(cfg.key_len),
		OutputLen:     uint64(cfg.output_len),
		OutputBase:    unsafe.Pointer(cfg.output_base),
		OutputBaseLen: uint64(cfg.output_base_len),
		HashFunction:  int32(cfg.hash_function),
		Timestamp:     int64(cfg.timestamp),
		Period:        uint32(cfg.period),
		Tolerance:     uint32(cfg.tolerance),
	}
}

func storeTOTP(dst *C.libotp_totp_cfg, src *capi.TOTPConfig) {
	dst.key = (*C.uint8_t)(src.Key)
	dst.key_len = C.size_t(src.KeyLen)
	dst.output_len = C.size_t(src.OutputLen)
	dst.output_base = (*C.uint8_t)(src.OutputBase)
	dst.output_base_len = C.size_t(src.OutputBaseLen)
	dst.hash_function = C.int32_t(src.HashFunction)
	dst.timestamp = C.int64_t(src.Timestamp)
	dst.period = C.uint32_t(src.Period)
	dst.tolerance = C.uint32_t(src.Tolerance)
}

func main() {}
