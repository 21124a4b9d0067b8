package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"regexp"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// The voter-ID back face carries a QR whose payload is a verification URL
// embedding the CIC.
var reCIC = regexp.MustCompile(`(?i)cic[=/]?(\d{6,12})`)

// DecodeCIC tries to read the QR code on a back-face image and pull the CIC
// out of its payload. Callers treat failure as absence: the OCR path does
// not depend on the QR being readable.
func DecodeCIC(imageData []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	qrReader := qrcode.NewQRCodeReader()
	result, err := qrReader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	m := reCIC.FindStringSubmatch(result.GetText())
	if len(m) < 2 {
		return "", fmt.Errorf("QR payload carries no CIC")
	}
	return m[1], nil
}
