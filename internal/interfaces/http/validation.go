package http

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/cuit"
)

var phonePattern = regexp.MustCompile(`^\+?\d{1,4}?[-.\s]?\(?\d{1,4}\)?[-.\s]?[\d\s-]{4,15}$`)

// Mensajes por campo (nombre JSON) y regla. Las reglas sin entrada usan el mensaje genérico del campo.
var fieldMessages = map[string]map[string]string{
	"nombre": {
		"notblank": "El nombre es obligatorio",
		"min":      "El nombre debe tener entre 2 y 100 caracteres",
		"max":      "El nombre debe tener entre 2 y 100 caracteres",
	},
	"apellido": {
		"notblank": "El apellido es obligatorio",
		"min":      "El apellido debe tener entre 2 y 100 caracteres",
		"max":      "El apellido debe tener entre 2 y 100 caracteres",
	},
	"razonSocial": {
		"notblank": "La razón social es obligatoria",
		"min":      "La razón social debe tener entre 2 y 150 caracteres",
		"max":      "La razón social debe tener entre 2 y 150 caracteres",
	},
	"cuit": {
		"notblank": "El CUIT es obligatorio",
		"cuit":     "El CUIT debe tener el formato XX-XXXXXXXX-X",
	},
	"fechaNacimiento": {
		"required": "La fecha de nacimiento es obligatoria",
		"pastdate": "La fecha de nacimiento debe ser anterior a hoy",
	},
	"telefonoCelular": {
		"max":   "El teléfono tiene un formato inválido",
		"phone": "El teléfono tiene un formato inválido",
	},
	"email": {
		"notblank": "El email es obligatorio",
		"email":    "El email debe tener un formato válido",
		"max":      "El email no puede superar los 150 caracteres",
	},
}

func init() {
	fieldMessages["nuevoEmail"] = fieldMessages["email"]
}

// ValidatorOptions reglas configurables.
type ValidatorOptions struct {
	// StrictCUIT además del formato exige el dígito verificador.
	StrictCUIT bool
	// Now reloj para "anterior a hoy"; nil = time.Now.
	Now func() time.Time
}

// RequestValidator valida bodies con go-playground/validator y devuelve errores por campo.
type RequestValidator struct {
	validate *validator.Validate
	strict   bool
	now      func() time.Time
}

// NewRequestValidator registra las reglas propias una sola vez.
func NewRequestValidator(opts ValidatorOptions) *RequestValidator {
	rv := &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		strict:   opts.StrictCUIT,
		now:      opts.Now,
	}
	if rv.now == nil {
		rv.now = time.Now
	}

	rv.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// dto.Date se valida como su texto ISO ("" si no vino).
	rv.validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		if d, ok := v.Interface().(dto.Date); ok {
			return d.ISO()
		}
		return nil
	}, dto.Date{})

	mustRegister(rv.validate, "notblank", validators.NotBlank)
	mustRegister(rv.validate, "cuit", rv.validCUIT)
	mustRegister(rv.validate, "pastdate", rv.pastDate)
	mustRegister(rv.validate, "phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || phonePattern.MatchString(s)
	})
	return rv
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registrar validación %s: %v", tag, err))
	}
}

// Validate devuelve *ValidationError con un mensaje por campo, o nil.
func (rv *RequestValidator) Validate(data any) error {
	err := rv.validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = messageFor(e)
	}
	return &ValidationError{Fields: fields}
}

func (rv *RequestValidator) validCUIT(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !cuit.HasCanonicalFormat(s) {
		return false
	}
	return !rv.strict || cuit.Valid(s)
}

func (rv *RequestValidator) pastDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	d, err := time.Parse(dto.DateInputLayout, s)
	if err != nil {
		return false
	}
	today := dto.DateOf(rv.now().In(dto.DisplayLocation))
	return d.Before(today.Time)
}

func messageFor(e validator.FieldError) string {
	if byTag, ok := fieldMessages[e.Field()]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}
	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("El campo %s es obligatorio", e.Field())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("El campo %s no puede superar los %s caracteres", e.Field(), e.Param())
	}
	return fmt.Sprintf("El campo %s es inválido", e.Field())
}
