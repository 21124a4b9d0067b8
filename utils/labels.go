package utils

import (
	"regexp"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// labelSimilarityThreshold is the Jaro-Winkler score above which a garbled
// OCR token ("N0MBRE") still counts as a field label ("NOMBRE").
const labelSimilarityThreshold = 0.86

// terminatorLabels end a labeled-line collection: once one of these shows up
// in a line, the lines that follow belong to another field.
var terminatorLabels = []string{
	"NOMBRE", "DOMICILIO", "FECHA", "SEXO", "CLAVE", "CURP", "SECCION",
	"LOCALIDAD", "MUNICIPIO", "ESTADO", "EMISION", "VIGENCIA", "REGISTRO",
	"FOLIO", "LICENCIA", "TIPO", "ANO",
}

// reDigitRun also terminates a collection; long digit runs belong to codes,
// sections or registry numbers, never to names or street lines.
var reDigitRun = regexp.MustCompile(`\d{4,}`)

var reNonLetter = regexp.MustCompile(`[^A-ZÑ]+`)

var jaroWinkler = metrics.NewJaroWinkler()

// LineHasLabel reports whether the line contains the given label, either
// verbatim or as a token whose similarity to the label survives OCR noise.
func LineHasLabel(line, label string) bool {
	if strings.Contains(line, label) {
		return true
	}
	for _, token := range strings.Fields(line) {
		token = strings.Trim(token, ":.-,|")
		if len(token) < len(label)-1 || len(token) > len(label)+1 {
			continue
		}
		if strutil.Similarity(token, label, jaroWinkler) >= labelSimilarityThreshold {
			return true
		}
	}
	return false
}

// isTerminatorLine reports whether a line belongs to another field: it
// carries a known label or a long digit run.
func isTerminatorLine(line string) bool {
	for _, label := range terminatorLabels {
		if strings.Contains(line, label) {
			return true
		}
	}
	return reDigitRun.MatchString(line)
}

// CollectAfterLabel finds the first line containing the label and gathers up
// to maxLines of the following lines, stopping at the first terminator line.
// Text trailing the label on the label line itself is included when present.
func CollectAfterLabel(lines []string, label string, maxLines int) []string {
	for i, line := range lines {
		if !LineHasLabel(line, label) {
			continue
		}

		var collected []string
		if rest := textAfterLabel(line, label); rest != "" && !isTerminatorLine(rest) {
			collected = append(collected, rest)
		}
		for j := i + 1; j < len(lines) && len(collected) < maxLines; j++ {
			if isTerminatorLine(lines[j]) {
				break
			}
			collected = append(collected, lines[j])
		}
		return collected
	}
	return nil
}

func textAfterLabel(line, label string) string {
	idx := strings.Index(line, label)
	if idx < 0 {
		return ""
	}
	rest := line[idx+len(label):]
	return strings.Trim(rest, " :.-|")
}

// boilerplateWords are document boilerplate terms that disqualify a line
// from being read as a personal name or address fragment.
var boilerplateWords = map[string]bool{
	"INSTITUTO": true, "NACIONAL": true, "ELECTORAL": true, "FEDERAL": true,
	"CREDENCIAL": true, "VOTAR": true, "MEXICO": true, "ESTADOS": true,
	"UNIDOS": true, "MEXICANOS": true, "REGISTRO": true, "LICENCIA": true,
	"CONDUCIR": true, "SECRETARIA": true, "MOVILIDAD": true, "TRANSPORTE": true,
	"GOBIERNO": true, "ESTADO": true, "DOMICILIO": true, "NOMBRE": true,
	"SEXO": true, "FECHA": true, "NACIMIENTO": true, "VIGENCIA": true,
	"EMISION": true, "SECCION": true, "LOCALIDAD": true, "MUNICIPIO": true,
	"CLAVE": true, "ELECTOR": true, "CURP": true, "FOLIO": true, "TIPO": true,
	"ADDRESS": true, "NAME": true,
}

// LooksLikePersonName reports whether a line reads as a personal name:
// 2 to 4 all-letter uppercase words, under 40 characters, none of them
// document boilerplate.
func LooksLikePersonName(line string) bool {
	if len(line) >= 40 {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if reNonLetter.MatchString(w) {
			return false
		}
		if boilerplateWords[w] {
			return false
		}
	}
	return true
}

// streetMarkers flag a line as a likely address fragment.
var streetMarkers = []string{"CALLE ", "AVENIDA ", "AV ", "AV.", "COLONIA ", "COL ", "COL.", "C.P", "CP ", "PRIV ", "BLVD"}

// LooksLikeAddressLine reports whether the line carries a street, avenue or
// colony marker token.
func LooksLikeAddressLine(line string) bool {
	for _, marker := range streetMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
