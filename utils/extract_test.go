package utils

import (
	"testing"

	"github.com/registromx/ocr-credential-extraction/dto"
	"github.com/stretchr/testify/assert"
)

const voterIDFrontText = `INSTITUTO NACIONAL ELECTORAL
MEXICO
CREDENCIAL PARA VOTAR
NOMBRE
GOMEZ
CASTILLO
MARIA
DOMICILIO
CALLE PINO SUAREZ 15
COL CENTRO
CLAVE DE ELECTOR GMCSMR85052009M100
CURP GOMC850520MDFRRL08
SECCION 0412`

const licenseFrontText = `GOBIERNO DEL ESTADO DE JALISCO
SECRETARIA DE MOVILIDAD
LICENCIA DE CONDUCIR
NOMBRE / NAME
HERNANDEZ LOPEZ JUAN
DOMICILIO / ADDRESS
AV JUAREZ 120
COL AMERICANA
NO. DE LICENCIA JAL1234567
TIPO A
CURP HELJ900101HJCRPN05
FECHA DE NACIMIENTO 01/01/1990
VIGENCIA 15/08/2027`

func TestExtractVoterID(t *testing.T) {
	record := ExtractIdentity(dto.DocTypeVoterID, voterIDFrontText, "", 30)

	assert.Equal(t, "GOMC850520MDFRRL08", record.CURP)
	assert.Equal(t, "GMCSMR85052009M100", record.ClaveElector)
	assert.Equal(t, "0412", record.Seccion)
	assert.Equal(t, "GOMEZ CASTILLO MARIA", record.Name)
	assert.Equal(t, "CALLE PINO SUAREZ 15, COL CENTRO", record.Address)
	assert.Equal(t, "20/05/1985", record.BirthDate)
	assert.Equal(t, "1985-05-20", record.BirthDateISO)
	assert.Equal(t, "M", record.Sex)
	assert.True(t, record.DataFound)
	assert.Equal(t, voterIDFrontText, record.RawTextFront)
}

func TestExtractVoterIDBirthDateComesFromCURP(t *testing.T) {
	// An independently printed date must not override the CURP digits.
	text := "CURP GOMC850520MDFRRL08\nFECHA DE NACIMIENTO 11/11/1911"

	record := ExtractIdentity(dto.DocTypeVoterID, text, "", 30)

	assert.Equal(t, "20/05/1985", record.BirthDate)
}

func TestExtractVoterIDSeccionFallback(t *testing.T) {
	// No section label anywhere; the leading-zero token wins, but never a
	// fragment of the identity code.
	text := "INSTITUTO NACIONAL ELECTORAL\nCURP GOMC050520MDFRRL08\nLOCALIDAD 0735"

	record := ExtractIdentity(dto.DocTypeVoterID, text, "", 30)

	assert.Equal(t, "0735", record.Seccion)
}

func TestExtractVoterIDNameShapeFallback(t *testing.T) {
	text := "INSTITUTO NACIONAL ELECTORAL\nGOMEZ CASTILLO MARIA\nCURP GOMC850520MDFRRL08"

	record := ExtractIdentity(dto.DocTypeVoterID, text, "", 30)

	assert.Equal(t, "GOMEZ CASTILLO MARIA", record.Name)
}

func TestExtractVoterIDEmptyInput(t *testing.T) {
	record := ExtractIdentity(dto.DocTypeVoterID, "", "", 30)

	assert.False(t, record.DataFound)
	assert.Empty(t, record.Name)
	assert.Empty(t, record.CURP)
}

func TestExtractMergesFrontAndBackFaces(t *testing.T) {
	front := "CREDENCIAL PARA VOTAR\nNOMBRE\nGOMEZ\nCASTILLO\nMARIA"
	back := "CURP GOMC850520MDFRRL08"

	record := ExtractIdentity(dto.DocTypeVoterID, front, back, 30)

	assert.Equal(t, "GOMEZ CASTILLO MARIA", record.Name)
	assert.Equal(t, "GOMC850520MDFRRL08", record.CURP)
	assert.Equal(t, back, record.RawTextBack)
}

func TestExtractLicense(t *testing.T) {
	record := ExtractIdentity(dto.DocTypeLicense, licenseFrontText, "", 30)

	assert.Equal(t, "HELJ900101HJCRPN05", record.CURP)
	assert.Equal(t, "JAL1234567", record.LicenseNumber)
	assert.Equal(t, "A", record.LicenseType)
	assert.Equal(t, "15/08/2027", record.ExpiryDate)
	assert.Equal(t, "01/01/1990", record.BirthDate)
	assert.Equal(t, "H", record.Sex)
	assert.Equal(t, "HERNANDEZ LOPEZ JUAN", record.Name)
	assert.Equal(t, "AV JUAREZ 120, COL AMERICANA", record.Address)
	assert.True(t, record.DataFound)
}

func TestExtractLicenseExpiryEqualToBirthDateIsDiscarded(t *testing.T) {
	// OCR frequently duplicates the birth date into the expiry slot.
	text := "LICENCIA DE CONDUCIR\nCURP HELJ900101HJCRPN05\nVIGENCIA 01/01/1990"

	record := ExtractIdentity(dto.DocTypeLicense, text, "", 30)

	assert.Equal(t, "01/01/1990", record.BirthDate)
	assert.Empty(t, record.ExpiryDate)
}

func TestExtractLicenseNumberRequiresDigit(t *testing.T) {
	text := "LICENCIA: CONDUCTOR\nNOMBRE\nHERNANDEZ LOPEZ JUAN"

	record := ExtractIdentity(dto.DocTypeLicense, text, "", 30)

	assert.Empty(t, record.LicenseNumber)
}

func TestExtractLicenseTypeFromCategoryWord(t *testing.T) {
	text := "LICENCIA DE CONDUCIR\nAUTOMOVILISTA\nFOLIO JAL1234567"

	record := ExtractIdentity(dto.DocTypeLicense, text, "", 30)

	assert.Equal(t, "A", record.LicenseType)
}

func TestExtractLicenseAddressNeedsBilingualLabel(t *testing.T) {
	// Without the English gloss next to DOMICILIO, only the street-marker
	// fallback fires.
	text := "LICENCIA DE CONDUCIR\nDOMICILIO\nSIN MARCADOR 99\nAV JUAREZ 120"

	record := ExtractIdentity(dto.DocTypeLicense, text, "", 30)

	assert.Equal(t, "AV JUAREZ 120", record.Address)
}

func TestExtractIsIdempotent(t *testing.T) {
	first := ExtractIdentity(dto.DocTypeVoterID, voterIDFrontText, "", 30)
	second := ExtractIdentity(dto.DocTypeVoterID, voterIDFrontText, "", 30)

	assert.Equal(t, first, second)
}

func TestExtractDefaultsToVoterID(t *testing.T) {
	record := ExtractIdentity("", voterIDFrontText, "", 30)

	assert.Equal(t, dto.DocTypeVoterID, record.DocumentType)
}

func TestLineHasLabelSurvivesOCRNoise(t *testing.T) {
	assert.True(t, LineHasLabel("N0MBRE", "NOMBRE"))
	assert.True(t, LineHasLabel("NOMBRE:", "NOMBRE"))
	assert.False(t, LineHasLabel("DOMICILIO", "NOMBRE"))
}
