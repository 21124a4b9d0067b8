package utils

import (
	"regexp"
	"strings"
)

// Section label phrasings seen on voter IDs, most specific first. SECCI0N is
// the usual OCR confusion of the O.
var reSeccionLabels = []*regexp.Regexp{
	regexp.MustCompile(`SECCION\s+ELECTORAL\D{0,4}(\d{4})`),
	regexp.MustCompile(`SECCION\s*[:\-]?\s*(\d{4})`),
	regexp.MustCompile(`SECCI0N\D{0,4}(\d{4})`),
	regexp.MustCompile(`SECC\s*[:\-]?\s*(\d{4})`),
}

var reLeadingZeroSection = regexp.MustCompile(`\b0\d{3}\b`)

func seccionLabelStrategies() []Strategy {
	strategies := make([]Strategy, 0, len(reSeccionLabels))
	for _, re := range reSeccionLabels {
		re := re
		strategies = append(strategies, func(d *Document) string {
			if m := re.FindStringSubmatch(d.Text); len(m) > 1 {
				return m[1]
			}
			return ""
		})
	}
	return strategies
}

// seccionFallbackStrategy picks a leading-zero 4-digit token that is not a
// fragment of the identity or electoral code.
func seccionFallbackStrategy(d *Document) string {
	curp := d.Field(FieldCURP)
	clave := d.Field(FieldClave)
	for _, candidate := range reLeadingZeroSection.FindAllString(d.Text, -1) {
		if curp != "" && strings.Contains(curp, candidate) {
			continue
		}
		if clave != "" && strings.Contains(clave, candidate) {
			continue
		}
		return candidate
	}
	return ""
}

// VoterIDChains is the field table for voter IDs. Codes come first so date
// and section strategies can lean on them; name and address close the table.
func VoterIDChains(centuryCutoff int) []FieldChain {
	return []FieldChain{
		{Field: FieldCURP, Strategies: []Strategy{matchCURPStrategy}},
		{Field: FieldClave, Strategies: []Strategy{matchClaveStrategy}},
		{Field: FieldBirthDate, Strategies: []Strategy{birthFromCURPStrategy(centuryCutoff), explicitBirthStrategy}},
		{Field: FieldSeccion, Strategies: append(seccionLabelStrategies(), seccionFallbackStrategy)},
		{Field: FieldName, Strategies: []Strategy{nameAfterLabelStrategy, nameByShapeStrategy}},
		{Field: FieldAddress, Strategies: []Strategy{addressAfterLabel(false), addressByMarkersStrategy}},
	}
}
