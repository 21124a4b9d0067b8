package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient is the optional local fallback recognizer, used when the
// remote recognition API is unreachable and the fallback is enabled.
type TesseractClient struct {
	dataPath string
	language string
}

func NewTesseractClient(dataPath, language string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
		language: language,
	}
}

// RecognizeBase64 decodes the base64 image and runs local Tesseract on it.
func (tc *TesseractClient) RecognizeBase64(ctx context.Context, base64Image string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)
	if err := client.SetLanguage(tc.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR extraction failed: %w", err)
	}

	return text, nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
