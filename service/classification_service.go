package service

import (
	"context"
	"log"

	"github.com/registromx/ocr-credential-extraction/dto"
	"github.com/registromx/ocr-credential-extraction/utils"
)

// TextRecognizer is the external recognition collaborator: one base64 image
// in, recognized text out.
type TextRecognizer interface {
	RecognizeBase64(ctx context.Context, base64Image string) (string, error)
}

// ClassificationService decides voter-id vs license from the front face.
type ClassificationService struct {
	recognizer TextRecognizer
	fallback   TextRecognizer
}

// NewClassificationService wires the primary recognizer and an optional
// local fallback (may be nil).
func NewClassificationService(recognizer, fallback TextRecognizer) *ClassificationService {
	return &ClassificationService{
		recognizer: recognizer,
		fallback:   fallback,
	}
}

// ClassifyDocument never fails observably: a wrong default is recoverable
// downstream (the user confirms the type), a blocked registration is not.
// Recognition errors yield the voter-id default with zero scores.
func (s *ClassificationService) ClassifyDocument(ctx context.Context, frontImage string) *dto.ClassificationResult {
	_, payload := utils.ParseDataURI(frontImage)

	text, err := s.recognizer.RecognizeBase64(ctx, payload)
	if err != nil && s.fallback != nil {
		log.Printf("Primary recognizer failed (%v), trying local fallback", err)
		text, err = s.fallback.RecognizeBase64(ctx, payload)
	}
	if err != nil {
		log.Printf("Classification recognition failed, defaulting to voter-id: %v", err)
		return &dto.ClassificationResult{DocumentType: dto.DocTypeVoterID}
	}

	docType, voterScore, licenseScore := utils.ClassifyText(utils.NormalizeText(text))
	return &dto.ClassificationResult{
		DocumentType: docType,
		Confidence: dto.Confidence{
			VoterIDScore: voterScore,
			LicenseScore: licenseScore,
		},
	}
}
