package http_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	apphttp "github.com/jhoicas/clientes-api/internal/interfaces/http"
)

func validRequest() dto.ClienteRequest {
	return dto.ClienteRequest{
		Nombre:          "Juan",
		Apellido:        "Pérez",
		RazonSocial:     "Pérez S.A.",
		CUIT:            "20-12345678-6",
		FechaNacimiento: dto.NewDate(1990, time.May, 15),
		TelefonoCelular: "+54 11 2345-6789",
		Email:           "juan@email.com",
	}
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *apphttp.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestRequestValidator_Valido(t *testing.T) {
	v := apphttp.NewRequestValidator(apphttp.ValidatorOptions{})
	assert.NoError(t, v.Validate(validRequest()))

	in := validRequest()
	in.TelefonoCelular = ""
	assert.NoError(t, v.Validate(in), "el teléfono es opcional")
}

func TestRequestValidator_Telefono(t *testing.T) {
	v := apphttp.NewRequestValidator(apphttp.ValidatorOptions{})
	for _, tel := range []string{"+54 11 2345-6789", "1123456789", "11 4567.8901", "+1-555-1234567"} {
		in := validRequest()
		in.TelefonoCelular = tel
		assert.NoError(t, v.Validate(in), tel)
	}
	for _, tel := range []string{"abc", "12", "+54 11 2345-6789 int 22"} {
		in := validRequest()
		in.TelefonoCelular = tel
		assert.Equal(t, "El teléfono tiene un formato inválido", fields(t, v.Validate(in))["telefonoCelular"], tel)
	}
}

func TestRequestValidator_FechaNacimiento(t *testing.T) {
	hoy := time.Date(2026, 2, 17, 15, 0, 0, 0, time.UTC)
	v := apphttp.NewRequestValidator(apphttp.ValidatorOptions{Now: func() time.Time { return hoy }})

	in := validRequest()
	in.FechaNacimiento = dto.NewDate(2026, time.February, 17)
	assert.Equal(t, "La fecha de nacimiento debe ser anterior a hoy", fields(t, v.Validate(in))["fechaNacimiento"])

	in.FechaNacimiento = dto.NewDate(2026, time.February, 16)
	assert.NoError(t, v.Validate(in))

	in.FechaNacimiento = dto.Date{}
	assert.Equal(t, "La fecha de nacimiento es obligatoria", fields(t, v.Validate(in))["fechaNacimiento"])
}

func TestRequestValidator_CUITEstricto(t *testing.T) {
	laxo := apphttp.NewRequestValidator(apphttp.ValidatorOptions{})
	estricto := apphttp.NewRequestValidator(apphttp.ValidatorOptions{StrictCUIT: true})

	in := validRequest()
	in.CUIT = "20-12345678-9" // dígito verificador incorrecto
	assert.NoError(t, laxo.Validate(in))
	assert.Equal(t, "El CUIT debe tener el formato XX-XXXXXXXX-X", fields(t, estricto.Validate(in))["cuit"])

	in.CUIT = "27-30123456-8"
	assert.NoError(t, estricto.Validate(in))
}

func TestRequestValidator_LongitudesEnCaracteres(t *testing.T) {
	v := apphttp.NewRequestValidator(apphttp.ValidatorOptions{})

	in := validRequest()
	in.Nombre = "Ñu" // 2 caracteres, 3 bytes
	assert.NoError(t, v.Validate(in))

	in.Email = strings.Repeat("a", 141) + "@email.com"
	got := fields(t, v.Validate(in))
	assert.Contains(t, got, "email")
}

func TestRequestValidator_EmailUpdate(t *testing.T) {
	v := apphttp.NewRequestValidator(apphttp.ValidatorOptions{})
	assert.NoError(t, v.Validate(dto.EmailUpdateRequest{NuevoEmail: "a@b.com"}))
	assert.Equal(t,
		map[string]string{"nuevoEmail": "El email debe tener un formato válido"},
		fields(t, v.Validate(dto.EmailUpdateRequest{NuevoEmail: "a@"})))
}
