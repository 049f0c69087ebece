package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Formatos de fecha usados en la API.
const (
	DateInputLayout    = "2006-01-02"          // fechaNacimiento en requests (ISO)
	DateOutputLayout   = "02/01/2006"          // fechaNacimiento en responses
	DateTimeLayout     = "02/01/2006 15:04:05" // auditoría en responses
	ErrorTimeLayout    = "2006-01-02 15:04:05" // timestamp de ApiErrorResponse
	displayZoneName    = "America/Argentina/Buenos_Aires"
	displayZoneFixedHr = -3
)

// DisplayLocation zona en la que se muestran las marcas de tiempo.
var DisplayLocation = loadDisplayLocation()

func loadDisplayLocation() *time.Location {
	loc, err := time.LoadLocation(displayZoneName)
	if err != nil {
		// Argentina no aplica horario de verano desde 2009.
		return time.FixedZone("ART", displayZoneFixedHr*60*60)
	}
	return loc
}

// Date fecha de calendario sin hora. Acepta yyyy-MM-dd o dd/MM/yyyy; se serializa dd/MM/yyyy.
type Date struct {
	time.Time
}

// NewDate construye una Date a medianoche UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta la hora de t.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ISO devuelve la fecha como yyyy-MM-dd ("" si es cero).
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateInputLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateOutputLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("fecha inválida: %w", err)
	}
	for _, layout := range []string{DateInputLayout, DateOutputLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("fecha inválida %q: se espera yyyy-MM-dd", raw)
}

// DateTime instante mostrado en hora de Buenos Aires con formato dd/MM/yyyy HH:mm:ss.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.In(DisplayLocation).Format(DateTimeLayout))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t, err := time.ParseInLocation(DateTimeLayout, raw, DisplayLocation)
	if err != nil {
		return fmt.Errorf("fecha-hora inválida %q: %w", raw, err)
	}
	d.Time = t
	return nil
}

// PageMetadata metadatos de página en respuestas paginadas.
type PageMetadata struct {
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
}

// PagedResponse contenido de una página más sus metadatos. Content nunca es null.
type PagedResponse[T any] struct {
	Content []T          `json:"content"`
	Page    PageMetadata `json:"page"`
}

// NewPagedResponse arma la respuesta garantizando un slice no nulo.
func NewPagedResponse[T any](content []T, size, number int, totalElements int64, totalPages int) *PagedResponse[T] {
	if content == nil {
		content = []T{}
	}
	return &PagedResponse[T]{
		Content: content,
		Page: PageMetadata{
			Size:          size,
			TotalElements: totalElements,
			TotalPages:    totalPages,
			Number:        number,
		},
	}
}

// ErrorTimestamp marca de tiempo del error, formato yyyy-MM-dd HH:mm:ss.
type ErrorTimestamp struct {
	time.Time
}

func (e ErrorTimestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.In(DisplayLocation).Format(ErrorTimeLayout))
}

func (e *ErrorTimestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t, err := time.ParseInLocation(ErrorTimeLayout, raw, DisplayLocation)
	if err != nil {
		return err
	}
	e.Time = t
	return nil
}

// ApiErrorResponse cuerpo estándar de error HTTP.
type ApiErrorResponse struct {
	Status           int               `json:"status" example:"400"`
	Error            string            `json:"error" example:"Bad Request"`
	Message          string            `json:"message" example:"Error de validación en los datos enviados"`
	Path             string            `json:"path" example:"/api/clientes"`
	Timestamp        ErrorTimestamp    `json:"timestamp" swaggertype:"string" example:"2026-02-17 19:30:45"`
	ValidationErrors map[string]string `json:"validationErrors"`
}
