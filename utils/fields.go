package utils

import (
	"strings"
)

// Shared strategies used by both document-type tables.

func matchCURPStrategy(d *Document) string {
	return MatchCURP(d.Text)
}

func matchClaveStrategy(d *Document) string {
	return MatchClaveElector(d.Text, d.Field(FieldCURP))
}

// birthFromCURPStrategy decodes the birth date embedded in the CURP. The
// code is the more reliable source once it passes grammar validation, so it
// outranks any independently matched date token.
func birthFromCURPStrategy(centuryCutoff int) Strategy {
	return func(d *Document) string {
		return DecodeBirthFromCURP(d.Field(FieldCURP), centuryCutoff)
	}
}

func explicitBirthStrategy(d *Document) string {
	return FindExplicitBirthDate(d.Text)
}

// nameAfterLabelStrategy joins the lines collected after a NOMBRE label.
// Bilingual layouts print the English gloss next to the label; the gloss is
// not part of the name.
func nameAfterLabelStrategy(d *Document) string {
	parts := CollectAfterLabel(d.Lines, "NOMBRE", 3)
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, " /")
		if p == "" || p == "NAME" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, " ")
}

func nameByShapeStrategy(d *Document) string {
	for _, line := range d.Lines {
		if LooksLikePersonName(line) {
			return line
		}
	}
	return ""
}

// addressAfterLabel collects the lines following a DOMICILIO label. License
// layouts are bilingual, so there the label must co-occur with its English
// gloss on the same line to avoid matching stray boilerplate.
func addressAfterLabel(requireGloss bool) Strategy {
	return func(d *Document) string {
		for i, line := range d.Lines {
			if !LineHasLabel(line, "DOMICILIO") {
				continue
			}
			if requireGloss && !strings.Contains(line, "ADDRESS") {
				continue
			}

			var collected []string
			if rest := strings.Trim(textAfterLabel(line, "DOMICILIO"), " /"); rest != "" && rest != "ADDRESS" && !isTerminatorLine(rest) {
				collected = append(collected, rest)
			}
			for j := i + 1; j < len(d.Lines) && len(collected) < 3; j++ {
				if isTerminatorLine(d.Lines[j]) {
					break
				}
				collected = append(collected, d.Lines[j])
			}
			return strings.Join(collected, ", ")
		}
		return ""
	}
}

func addressByMarkersStrategy(d *Document) string {
	var collected []string
	for _, line := range d.Lines {
		if LooksLikeAddressLine(line) {
			collected = append(collected, line)
			if len(collected) == 3 {
				break
			}
		}
	}
	return strings.Join(collected, ", ")
}
