package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindExplicitBirthDatePrefersLabeledDate(t *testing.T) {
	text := "VIGENCIA 15/08/2027\nFECHA DE NACIMIENTO 01/01/1990"

	assert.Equal(t, "01/01/1990", FindExplicitBirthDate(text))
}

func TestFindExplicitBirthDateFallsBackToBareDate(t *testing.T) {
	assert.Equal(t, "20/05/1985", FindExplicitBirthDate("EMITIDA 20-05-1985"))
	assert.Equal(t, "", FindExplicitBirthDate("SIN FECHAS AQUI"))
}

func TestFindDateAfterLabel(t *testing.T) {
	text := "FECHA DE NACIMIENTO 01/01/1990\nVIGENCIA 15/08/2027"

	assert.Equal(t, "15/08/2027", FindDateAfterLabel(text, "VIGENCIA"))
	assert.Equal(t, "", FindDateAfterLabel(text, "VENCIMIENTO"))
}

func TestAllDates(t *testing.T) {
	text := "01/01/1990 ALGO 15.08.2027"

	assert.Equal(t, []string{"01/01/1990", "15/08/2027"}, AllDates(text))
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "1985-05-20", ToISODate("20/05/1985"))
	assert.Equal(t, "", ToISODate(""))
	assert.Equal(t, "", ToISODate("no date"))
}
