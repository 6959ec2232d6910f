package otpauth

import (
	"encoding/base64"
	"errors"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"
)

// defaultQRSize is the size in pixels used when no size is specified
const defaultQRSize = 256

// QRCode renders the enrollment URI for params as a PNG image.
// Returns the image as a byte slice or an error if generation fails.
func QRCode(params Params, size int) ([]byte, error) {
	uri, err := URI(params)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultQRSize
	}
	png, err := skipqrcode.Encode(uri, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// QRCodeBase64Image renders the enrollment URI for params as a base64 PNG
// data-URI that can be embedded directly in an <img> tag.
func QRCodeBase64Image(params Params, size int) (string, error) {
	png, err := QRCode(params, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
