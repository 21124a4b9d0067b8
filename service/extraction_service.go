package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"
	"strings"
	"sync"

	"github.com/registromx/ocr-credential-extraction/dto"
	"github.com/registromx/ocr-credential-extraction/utils"
)

// minEmbeddedTextLen is the point below which a PDF text layer is considered
// junk and the page images go through the recognizer instead.
const minEmbeddedTextLen = 40

// ExtractionService turns one or two credential faces into a structured
// identity record. Stateless per request; nothing is cached or persisted.
type ExtractionService struct {
	recognizer    TextRecognizer
	fallback      TextRecognizer
	pdfProcessor  PDFProcessor
	centuryCutoff int
}

func NewExtractionService(recognizer, fallback TextRecognizer, pdfProcessor PDFProcessor, centuryCutoff int) *ExtractionService {
	return &ExtractionService{
		recognizer:    recognizer,
		fallback:      fallback,
		pdfProcessor:  pdfProcessor,
		centuryCutoff: centuryCutoff,
	}
}

// ExtractFields recognizes the supplied faces (concurrently when both are
// present), classifies the document when the caller did not, and runs the
// extraction chains. Returns dto.ErrNoImageSupplied when neither face is
// present and wraps any recognition failure in dto.ErrRecognitionFailed.
// Partial or empty extraction is a result, not an error.
func (s *ExtractionService) ExtractFields(ctx context.Context, req *dto.ExtractRequest) (*dto.ExtractedIdentity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		frontText, backText string
		frontErr, backErr   error
		wg                  sync.WaitGroup
	)

	if req.FrontImage != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			frontText, frontErr = s.recognizeFace(ctx, req.FrontImage)
		}()
	}
	if req.BackImage != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backText, backErr = s.recognizeFace(ctx, req.BackImage)
		}()
	}
	wg.Wait()

	if frontErr != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrRecognitionFailed, frontErr)
	}
	if backErr != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrRecognitionFailed, backErr)
	}

	docType := req.DocumentType
	if docType == "" {
		docType, _, _ = utils.ClassifyText(utils.NormalizeText(frontText))
		log.Printf("Document type not supplied, classified as %s", docType)
	}

	record := utils.ExtractIdentity(docType, frontText, backText, s.centuryCutoff)

	if docType == dto.DocTypeVoterID && req.BackImage != "" {
		record.CIC = s.cicFromBackFace(req.BackImage)
	}

	return &record, nil
}

// recognizeFace resolves one face: PDFs go through the PDF processor,
// images through the recognizer with the optional local fallback.
func (s *ExtractionService) recognizeFace(ctx context.Context, face string) (string, error) {
	mediaType, payload := utils.ParseDataURI(face)

	if strings.Contains(mediaType, "pdf") {
		return s.recognizePDF(ctx, payload)
	}

	text, err := s.recognizer.RecognizeBase64(ctx, payload)
	if err != nil && s.fallback != nil {
		log.Printf("Primary recognizer failed (%v), trying local fallback", err)
		text, err = s.fallback.RecognizeBase64(ctx, payload)
	}
	return text, err
}

func (s *ExtractionService) recognizePDF(ctx context.Context, payload string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 PDF: %w", err)
	}

	if text, err := s.pdfProcessor.ExtractText(data); err == nil && len(strings.TrimSpace(text)) >= minEmbeddedTextLen {
		log.Println("PDF face has a usable text layer, skipping recognition")
		return text, nil
	}

	images, err := s.pdfProcessor.ExtractImages(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract images from PDF: %w", err)
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no usable content in PDF")
	}

	var combined strings.Builder
	for idx, img := range images {
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, img); err != nil {
			log.Printf("Failed to encode PDF page image %d: %v", idx+1, err)
			continue
		}

		pageText, err := s.recognizer.RecognizeBase64(ctx, base64.StdEncoding.EncodeToString(buf.Bytes()))
		if err != nil {
			return "", err
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	return combined.String(), nil
}

// cicFromBackFace tries the back-face QR. QR failure is silent; the record
// simply carries no CIC.
func (s *ExtractionService) cicFromBackFace(backImage string) string {
	mediaType, payload := utils.ParseDataURI(backImage)
	if strings.Contains(mediaType, "pdf") {
		return ""
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ""
	}

	cic, err := DecodeCIC(data)
	if err != nil {
		log.Printf("Back-face QR decode skipped: %v", err)
		return ""
	}
	return cic
}
