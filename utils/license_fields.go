package utils

import (
	"regexp"
	"strings"
)

// License-number label phrasings plus one raw shape pattern. The raw shape
// is the least trusted and runs last.
var reLicenseNumberLabels = []*regexp.Regexp{
	regexp.MustCompile(`(?:NO|NUM|NUMERO)\.?\s*(?:DE\s+)?LICENCIA\s*[:\-]?\s*([A-Z0-9\-]{6,15})`),
	regexp.MustCompile(`LICENCIA\s*[:\-]\s*([A-Z0-9\-]{6,15})`),
	regexp.MustCompile(`FOLIO\s*[:\-]?\s*([A-Z0-9\-]{6,15})`),
}

var reLicenseNumberShape = regexp.MustCompile(`\b[A-Z]{0,3}\d{6,12}\b`)

var reTipoLabels = []*regexp.Regexp{
	regexp.MustCompile(`TIPO\s*[:\-]?\s*([A-E])\b`),
	regexp.MustCompile(`CLASE\s*[:\-]?\s*([A-E])\b`),
}

// Operation-category words printed verbatim on some state layouts, mapped
// to their single-letter class codes.
var categoryToClass = []struct {
	word  string
	class string
}{
	{"AUTOMOVILISTA", "A"},
	{"MOTOCICLISTA", "M"},
	{"CHOFER", "B"},
	{"OPERADOR", "C"},
}

var expiryLabels = []string{"VIGENCIA", "VENCIMIENTO", "VALIDA HASTA"}

// validLicenseNumber rejects the classic false positives: a candidate with
// no digit at all (usually the bare word LICENCIA), the word for "driver"
// mis-captured from "licencia de conducir para CONDUCTOR", and fragments of
// the CURP.
func validLicenseNumber(candidate string, d *Document) bool {
	if !strings.ContainsAny(candidate, "0123456789") {
		return false
	}
	if strings.Contains(candidate, "CONDUCTOR") {
		return false
	}
	if curp := d.Field(FieldCURP); curp != "" && strings.Contains(curp, candidate) {
		return false
	}
	return true
}

func licenseNumberStrategies() []Strategy {
	strategies := make([]Strategy, 0, len(reLicenseNumberLabels)+1)
	for _, re := range reLicenseNumberLabels {
		re := re
		strategies = append(strategies, func(d *Document) string {
			if m := re.FindStringSubmatch(d.Text); len(m) > 1 && validLicenseNumber(m[1], d) {
				return m[1]
			}
			return ""
		})
	}
	strategies = append(strategies, func(d *Document) string {
		for _, candidate := range reLicenseNumberShape.FindAllString(d.Text, -1) {
			if validLicenseNumber(candidate, d) {
				return candidate
			}
		}
		return ""
	})
	return strategies
}

func licenseTypeStrategies() []Strategy {
	strategies := make([]Strategy, 0, len(reTipoLabels)+1)
	for _, re := range reTipoLabels {
		re := re
		strategies = append(strategies, func(d *Document) string {
			if m := re.FindStringSubmatch(d.Text); len(m) > 1 {
				return m[1]
			}
			return ""
		})
	}
	strategies = append(strategies, func(d *Document) string {
		for _, entry := range categoryToClass {
			if strings.Contains(d.Text, entry.word) {
				return entry.class
			}
		}
		return ""
	})
	return strategies
}

// expiryStrategies try the label phrasings first and a bare date last. OCR
// frequently duplicates the birth date into the expiry slot, so a candidate
// equal to the derived birth date is discarded and the chain moves on; an
// exhausted chain leaves expiry empty.
func expiryStrategies() []Strategy {
	strategies := make([]Strategy, 0, len(expiryLabels)+1)
	for _, label := range expiryLabels {
		label := label
		strategies = append(strategies, func(d *Document) string {
			date := FindDateAfterLabel(d.Text, label)
			if date == "" || date == d.Field(FieldBirthDate) {
				return ""
			}
			return date
		})
	}
	strategies = append(strategies, func(d *Document) string {
		for _, date := range AllDates(d.Text) {
			if date != d.Field(FieldBirthDate) {
				return date
			}
		}
		return ""
	})
	return strategies
}

// LicenseChains is the field table for driver's licenses. Same runner as
// voter IDs, different data.
func LicenseChains(centuryCutoff int) []FieldChain {
	return []FieldChain{
		{Field: FieldCURP, Strategies: []Strategy{matchCURPStrategy}},
		{Field: FieldBirthDate, Strategies: []Strategy{birthFromCURPStrategy(centuryCutoff), explicitBirthStrategy}},
		{Field: FieldLicenseNum, Strategies: licenseNumberStrategies()},
		{Field: FieldLicenseType, Strategies: licenseTypeStrategies()},
		{Field: FieldExpiry, Strategies: expiryStrategies()},
		{Field: FieldName, Strategies: []Strategy{nameAfterLabelStrategy, nameByShapeStrategy}},
		{Field: FieldAddress, Strategies: []Strategy{addressAfterLabel(true), addressByMarkersStrategy}},
	}
}
