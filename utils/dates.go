package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// reDate matches day/month/year tokens with 2-2-4 digit grouping and the
// separator variants OCR tends to produce.
var reDate = regexp.MustCompile(`\b(\d{2})[/\-\.](\d{2})[/\-\.](\d{4})\b`)

var reBirthLabeledDate = regexp.MustCompile(`FECHA\s+DE\s+NACIMIENTO\D{0,10}(\d{2}[/\-\.]\d{2}[/\-\.]\d{4})`)

// FindExplicitBirthDate looks for a date token in the text, preferring one
// preceded by a birth-date label over any bare date.
func FindExplicitBirthDate(text string) string {
	if m := reBirthLabeledDate.FindStringSubmatch(text); len(m) > 1 {
		return normalizeDateSeparators(m[1])
	}
	if m := reDate.FindString(text); m != "" {
		return normalizeDateSeparators(m)
	}
	return ""
}

// FindDateAfterLabel returns the first date token that appears after the
// given label anywhere in the text, or "".
func FindDateAfterLabel(text, label string) string {
	idx := strings.Index(text, label)
	if idx < 0 {
		return ""
	}
	if m := reDate.FindString(text[idx+len(label):]); m != "" {
		return normalizeDateSeparators(m)
	}
	return ""
}

// AllDates returns every 2-2-4 date token in order of appearance.
func AllDates(text string) []string {
	matches := reDate.FindAllString(text, -1)
	for i, m := range matches {
		matches[i] = normalizeDateSeparators(m)
	}
	return matches
}

func normalizeDateSeparators(s string) string {
	s = strings.ReplaceAll(s, "-", "/")
	return strings.ReplaceAll(s, ".", "/")
}

// ToISODate converts a dd/mm/yyyy string into yyyy-mm-dd. Both forms derive
// from the same digits; no calendar validation happens here beyond shape.
func ToISODate(ddmmyyyy string) string {
	m := reDate.FindStringSubmatch(ddmmyyyy)
	if len(m) < 4 {
		return ""
	}
	dd, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	yyyy, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%04d-%02d-%02d", yyyy, mm, dd)
}
