package dto

import "errors"

// Custom errors
var (
	ErrNoImageSupplied   = errors.New("at least one document image is required")
	ErrRecognitionFailed = errors.New("text recognition service failed")
)

// ClassifyRequest carries the base64-encoded front face of a credential.
type ClassifyRequest struct {
	FrontImage string `json:"front_image" binding:"required"`
}

func (r *ClassifyRequest) Validate() error {
	if r.FrontImage == "" {
		return ErrNoImageSupplied
	}
	return nil
}

// ExtractRequest carries one or both base64-encoded faces of a credential.
// Images may be prefixed with a data-URI media-type header
// ("data:image/png;base64,..."), which is stripped before the recognition
// call. DocumentType may be empty, in which case the front face is
// classified first.
type ExtractRequest struct {
	DocumentType DocumentType `json:"document_type"`
	FrontImage   string       `json:"front_image"`
	BackImage    string       `json:"back_image"`
}

func (r *ExtractRequest) Validate() error {
	if r.FrontImage == "" && r.BackImage == "" {
		return ErrNoImageSupplied
	}
	if r.DocumentType != "" && r.DocumentType != DocTypeVoterID && r.DocumentType != DocTypeLicense {
		return errors.New("document_type must be voter-id or license")
	}
	return nil
}
