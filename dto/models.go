package dto

type DocumentType string

const (
	DocTypeVoterID DocumentType = "voter-id"
	DocTypeLicense DocumentType = "license"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ClassificationResult carries the chosen document type plus both raw
// vocabulary scores so the caller can decide whether to ask the user to
// confirm the guess.
type ClassificationResult struct {
	DocumentType DocumentType `json:"document_type"`
	Confidence   Confidence   `json:"confidence"`
}

type Confidence struct {
	VoterIDScore int `json:"voter_id_score"`
	LicenseScore int `json:"license_score"`
}

// ExtractedIdentity is the structured record produced from the recognized
// text of one credential. Fields that could not be recovered stay empty;
// DataFound reports whether at least one of name, CURP or the
// electoral/license code was recovered.
type ExtractedIdentity struct {
	DocumentType  DocumentType `json:"document_type"`
	Name          string       `json:"name"`
	CURP          string       `json:"curp"`
	ClaveElector  string       `json:"clave_elector,omitempty"`
	Seccion       string       `json:"seccion,omitempty"`
	LicenseNumber string       `json:"license_number,omitempty"`
	LicenseType   string       `json:"license_type,omitempty"`
	ExpiryDate    string       `json:"expiry_date,omitempty"`
	BirthDate     string       `json:"birth_date"`     // dd/mm/yyyy for display
	BirthDateISO  string       `json:"birth_date_iso"` // yyyy-mm-dd for storage
	Sex           string       `json:"sex"`
	Address       string       `json:"address"`
	CIC           string       `json:"cic,omitempty"`
	DataFound     bool         `json:"data_found"`
	RawTextFront  string       `json:"raw_text_front,omitempty"`
	RawTextBack   string       `json:"raw_text_back,omitempty"`
}
