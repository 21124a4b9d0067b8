package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

// CURP grammar: 4 letters, 6 birth-date digits (YYMMDD), sex letter H/M,
// 5 letters, 1 alphanumeric, 1 digit. 18 characters total.
var reCURP = regexp.MustCompile(`[A-Z]{4}[0-9]{6}[HM][A-Z]{5}[A-Z0-9][0-9]`)

// Clave de elector grammar: 6 letters, 8 digits, sex letter H/M, 3 digits.
// Also 18 characters, printed only on voter IDs.
var reClaveElector = regexp.MustCompile(`[A-Z]{6}[0-9]{8}[HM][0-9]{3}`)

// MatchCURP returns the first grammar-conforming CURP found anywhere in the
// normalized text, or "" when none is present. OCR noise can produce several
// apparent matches; the first one wins.
func MatchCURP(text string) string {
	return reCURP.FindString(text)
}

// MatchClaveElector returns the first clave de elector in the text that is
// not identical to the already-matched CURP. The two grammars can overlap on
// garbled input, so a candidate equal to the CURP is discarded.
func MatchClaveElector(text, curp string) string {
	for _, candidate := range reClaveElector.FindAllString(text, -1) {
		if curp != "" && candidate == curp {
			continue
		}
		return candidate
	}
	return ""
}

// DecodeBirthFromCURP decodes the YYMMDD digits embedded at offsets 4-9 of
// the CURP into a dd/mm/yyyy string. Two-digit years above centuryCutoff
// resolve to the 1900s, the rest to the 2000s. Returns "" when the code is
// too short or the digits are not a plausible calendar date.
func DecodeBirthFromCURP(curp string, centuryCutoff int) string {
	if len(curp) < 10 {
		return ""
	}

	yy, errY := strconv.Atoi(curp[4:6])
	mm, errM := strconv.Atoi(curp[6:8])
	dd, errD := strconv.Atoi(curp[8:10])
	if errY != nil || errM != nil || errD != nil {
		return ""
	}
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return ""
	}

	year := 2000 + yy
	if yy > centuryCutoff {
		year = 1900 + yy
	}

	return fmt.Sprintf("%02d/%02d/%04d", dd, mm, year)
}

// DecodeSexFromCURP returns the sex character of the CURP ("H" or "M").
// Sex is never extracted independently from the document text.
func DecodeSexFromCURP(curp string) string {
	if len(curp) < 11 {
		return ""
	}
	switch curp[10] {
	case 'H':
		return "H"
	case 'M':
		return "M"
	}
	return ""
}
