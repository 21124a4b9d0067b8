package utils

import "strings"

// accentFolder maps accented Spanish vowels to their plain forms. Runs
// after uppercasing, so only uppercase forms appear. Ñ is kept as-is since
// it is a distinct letter in names.
var accentFolder = strings.NewReplacer(
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U",
)

// NormalizeFaces concatenates the recognized text of the available document
// faces (front first, then back), uppercases and accent-folds the result,
// and splits it into trimmed lines. Blank lines and one/two-character noise
// lines are dropped. Empty input yields an empty slice.
func NormalizeFaces(frontText, backText string) []string {
	combined := frontText
	if backText != "" {
		if combined != "" {
			combined += "\n"
		}
		combined += backText
	}
	return NormalizeText(combined)
}

// NormalizeText splits one block of recognized text into the canonical line
// sequence used by all extraction strategies.
func NormalizeText(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	text = accentFolder.Replace(strings.ToUpper(text))

	rawLines := strings.Split(text, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, l := range rawLines {
		l = strings.TrimSpace(l)
		if len(l) <= 2 {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// ParseDataURI splits a possible data-URI payload ("data:image/png;base64,...")
// into its media type and the bare base64 payload. Plain base64 input is
// returned unchanged with an empty media type.
func ParseDataURI(s string) (mediaType, payload string) {
	if !strings.HasPrefix(s, "data:") {
		return "", s
	}
	comma := strings.Index(s, ",")
	if comma < 0 {
		return "", s
	}
	header := s[len("data:"):comma]
	if semi := strings.Index(header, ";"); semi >= 0 {
		header = header[:semi]
	}
	return header, s[comma+1:]
}
