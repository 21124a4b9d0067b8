package utils

import "strings"

// Field keys shared by the per-document-type chain tables.
const (
	FieldCURP        = "curp"
	FieldClave       = "clave_elector"
	FieldSeccion     = "seccion"
	FieldName        = "nombre"
	FieldAddress     = "domicilio"
	FieldBirthDate   = "nacimiento"
	FieldLicenseNum  = "licencia"
	FieldLicenseType = "tipo"
	FieldExpiry      = "vigencia"
)

// Document is the working state of one extraction: the normalized line
// sequence, the joined text for whole-text pattern matching, and the fields
// already won. Later strategies consult earlier fields, so chain order in a
// table is significant (codes before dates, dates before expiry).
type Document struct {
	Lines  []string
	Text   string
	Fields map[string]string
}

func NewDocument(lines []string) *Document {
	return &Document{
		Lines:  lines,
		Text:   strings.Join(lines, "\n"),
		Fields: make(map[string]string),
	}
}

// Field returns an already-extracted field value, or "".
func (d *Document) Field(name string) string {
	return d.Fields[name]
}

// Strategy is one extraction heuristic for a single field. It returns ""
// when it yields nothing plausible.
type Strategy func(d *Document) string

// FieldChain is the ordered strategy list for one field. The first strategy
// producing a non-empty value wins; later ones are not consulted.
type FieldChain struct {
	Field      string
	Strategies []Strategy
}

// RunChains evaluates every chain in order against the document, storing
// each winning value. Extraction never fails; fields simply stay empty.
func RunChains(d *Document, chains []FieldChain) {
	for _, chain := range chains {
		for _, strategy := range chain.Strategies {
			if v := strings.TrimSpace(strategy(d)); v != "" {
				d.Fields[chain.Field] = v
				break
			}
		}
	}
}
