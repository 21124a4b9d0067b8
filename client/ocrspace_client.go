package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// OCRSpaceClient calls an OCR.space-compatible text recognition API. One
// base64 image per call; the response carries the recognized text per
// parsed result. Engine 2 handles the dense, mixed-orientation layouts of
// identity credentials better than the default.
type OCRSpaceClient struct {
	apiURL     string
	apiKey     string
	language   string
	httpClient *http.Client
}

func NewOCRSpaceClient(apiURL, apiKey, language string, timeout time.Duration) *OCRSpaceClient {
	return &OCRSpaceClient{
		apiURL:   apiURL,
		apiKey:   apiKey,
		language: language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// recognizeResponse mirrors the OCR.space response envelope.
type recognizeResponse struct {
	ParsedResults []struct {
		ParsedText        string  `json:"ParsedText"`
		FileParseExitCode int     `json:"FileParseExitCode"`
		ErrorMessage      *string `json:"ErrorMessage"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage"`
}

// RecognizeBase64 sends one bare base64-encoded image to the recognition
// API and returns the recognized text for it. Any explicit processing error
// from the API is surfaced as an error.
func (c *OCRSpaceClient) RecognizeBase64(ctx context.Context, base64Image string) (string, error) {
	form := url.Values{}
	form.Set("base64Image", base64Image)
	form.Set("language", c.language)
	form.Set("OCREngine", "2")
	form.Set("isOverlayRequired", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build recognition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("recognition API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("recognition API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode recognition response: %w", err)
	}

	if result.IsErroredOnProcessing {
		return "", fmt.Errorf("recognition API reported a processing error: %s", string(result.ErrorMessage))
	}

	var textBuilder strings.Builder
	for _, parsed := range result.ParsedResults {
		if parsed.ErrorMessage != nil && *parsed.ErrorMessage != "" {
			continue
		}
		textBuilder.WriteString(parsed.ParsedText)
		textBuilder.WriteString("\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("recognition API returned no text")
	}

	return text, nil
}
