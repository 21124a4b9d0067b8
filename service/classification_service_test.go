package service

import (
	"context"
	"errors"
	"testing"

	"github.com/registromx/ocr-credential-extraction/dto"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDocumentVoterID(t *testing.T) {
	recognizer := &fakeRecognizer{texts: map[string]string{"FRONT": voterIDText}}
	service := NewClassificationService(recognizer, nil)

	result := service.ClassifyDocument(context.Background(), "FRONT")

	assert.Equal(t, dto.DocTypeVoterID, result.DocumentType)
	assert.Greater(t, result.Confidence.VoterIDScore, result.Confidence.LicenseScore)
}

func TestClassifyDocumentLicense(t *testing.T) {
	recognizer := &fakeRecognizer{texts: map[string]string{"FRONT": licenseText}}
	service := NewClassificationService(recognizer, nil)

	result := service.ClassifyDocument(context.Background(), "FRONT")

	assert.Equal(t, dto.DocTypeLicense, result.DocumentType)
	assert.Greater(t, result.Confidence.LicenseScore, result.Confidence.VoterIDScore)
}

func TestClassifyDocumentDefaultsOnRecognitionFailure(t *testing.T) {
	recognizer := &fakeRecognizer{err: errors.New("upstream down")}
	service := NewClassificationService(recognizer, nil)

	result := service.ClassifyDocument(context.Background(), "FRONT")

	assert.Equal(t, dto.DocTypeVoterID, result.DocumentType)
	assert.Zero(t, result.Confidence.VoterIDScore)
	assert.Zero(t, result.Confidence.LicenseScore)
}

func TestClassifyDocumentUsesFallback(t *testing.T) {
	primary := &fakeRecognizer{err: errors.New("unreachable")}
	fallback := &fakeRecognizer{texts: map[string]string{"FRONT": licenseText}}
	service := NewClassificationService(primary, fallback)

	result := service.ClassifyDocument(context.Background(), "FRONT")

	assert.Equal(t, dto.DocTypeLicense, result.DocumentType)
}
