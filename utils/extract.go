package utils

import (
	"strings"

	"github.com/registromx/ocr-credential-extraction/dto"
)

// ExtractIdentity runs the field-chain table for the given document type
// over the recognized text of one or two faces and assembles the structured
// record. The per-face raw text rides along so a caller can show it for
// manual correction when confidence is low. Extraction itself never fails;
// unrecovered fields stay empty and DataFound reports the outcome.
func ExtractIdentity(docType dto.DocumentType, frontRaw, backRaw string, centuryCutoff int) dto.ExtractedIdentity {
	if docType == "" {
		docType = dto.DocTypeVoterID
	}

	d := NewDocument(NormalizeFaces(frontRaw, backRaw))

	var chains []FieldChain
	if docType == dto.DocTypeLicense {
		chains = LicenseChains(centuryCutoff)
	} else {
		chains = VoterIDChains(centuryCutoff)
	}
	RunChains(d, chains)

	curp := d.Field(FieldCURP)
	birth := d.Field(FieldBirthDate)

	record := dto.ExtractedIdentity{
		DocumentType:  docType,
		Name:          strings.TrimSpace(d.Field(FieldName)),
		CURP:          curp,
		ClaveElector:  d.Field(FieldClave),
		Seccion:       d.Field(FieldSeccion),
		LicenseNumber: d.Field(FieldLicenseNum),
		LicenseType:   d.Field(FieldLicenseType),
		ExpiryDate:    d.Field(FieldExpiry),
		BirthDate:     birth,
		BirthDateISO:  ToISODate(birth),
		Sex:           DecodeSexFromCURP(curp),
		Address:       strings.TrimSpace(d.Field(FieldAddress)),
		RawTextFront:  frontRaw,
		RawTextBack:   backRaw,
	}

	record.DataFound = record.Name != "" || record.CURP != "" ||
		record.ClaveElector != "" || record.LicenseNumber != ""

	return record
}
