package utils

import (
	"regexp"
	"strings"

	"github.com/registromx/ocr-credential-extraction/dto"
)

// Keyword signals score with the keyword length so that longer, more
// specific phrases dominate. The exact numbers are tunable; only the
// ordering strong-literal > compound > structural matters.
var voterKeywords = []string{
	"INSTITUTO NACIONAL ELECTORAL",
	"INSTITUTO FEDERAL ELECTORAL",
	"CREDENCIAL PARA VOTAR",
}

var licenseKeywords = []string{
	"LICENCIA PARA CONDUCIR",
	"LICENCIA DE CONDUCIR",
	"SECRETARIA DE MOVILIDAD",
	"AUTOMOVILISTA",
	"CONDUCIR",
	"CHOFER",
}

var reSeccionPattern = regexp.MustCompile(`SECCION\D{0,6}\d{4}`)
var reClassToken = regexp.MustCompile(`\b(?:TIPO|CLASE)\s*[:\-]?\s*[A-E]\b`)

const (
	compoundSignalWeight    = 15
	structuralSignalWeight  = 10
	licenciaLiteralBonus    = 50
	missingElectoralPenalty = 25
)

// ClassifyText scores the normalized front-face text against the voter-ID
// and license vocabularies and returns the winning type with both raw
// scores. License wins only on a strictly greater score.
func ClassifyText(lines []string) (dto.DocumentType, int, int) {
	text := strings.Join(lines, "\n")

	voterScore := 0
	for _, kw := range voterKeywords {
		if strings.Contains(text, kw) {
			voterScore += len(kw)
		}
	}
	if strings.Contains(text, "CURP") && strings.Contains(text, "CLAVE") {
		voterScore += compoundSignalWeight
	}
	if reSeccionPattern.MatchString(text) {
		voterScore += structuralSignalWeight
	}
	// ELECTORAL or VOTAR is near-mandatory on authentic voter IDs.
	if !strings.Contains(text, "ELECTORAL") && !strings.Contains(text, "VOTAR") {
		voterScore -= missingElectoralPenalty
	}

	licenseScore := 0
	for _, kw := range licenseKeywords {
		if strings.Contains(text, kw) {
			licenseScore += len(kw)
		}
	}
	if reClassToken.MatchString(text) {
		licenseScore += structuralSignalWeight
	}
	// Driver's licenses reliably carry the literal word; close to a
	// sufficient condition on its own.
	if strings.Contains(text, "LICENCIA") {
		licenseScore += licenciaLiteralBonus
	}

	if licenseScore > voterScore {
		return dto.DocTypeLicense, voterScore, licenseScore
	}
	return dto.DocTypeVoterID, voterScore, licenseScore
}
