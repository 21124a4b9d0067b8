package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFaces(t *testing.T) {
	lines := NormalizeFaces("nombre\ngomez castillo", "clave de elector")

	assert.Equal(t, []string{"NOMBRE", "GOMEZ CASTILLO", "CLAVE DE ELECTOR"}, lines)
}

func TestNormalizeTextDropsNoiseLines(t *testing.T) {
	lines := NormalizeText("NOMBRE\n\n..\nA\n  GOMEZ  ")

	assert.Equal(t, []string{"NOMBRE", "GOMEZ"}, lines)
}

func TestNormalizeTextFoldsAccents(t *testing.T) {
	lines := NormalizeText("sección 0412\nmuñoz")

	assert.Equal(t, []string{"SECCION 0412", "MUÑOZ"}, lines)
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, NormalizeFaces("", ""))
}

func TestParseDataURI(t *testing.T) {
	mediaType, payload := ParseDataURI("data:image/png;base64,AAAA")
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, "AAAA", payload)

	mediaType, payload = ParseDataURI("AAAA")
	assert.Equal(t, "", mediaType)
	assert.Equal(t, "AAAA", payload)
}
