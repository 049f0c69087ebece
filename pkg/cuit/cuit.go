// Package cuit valida y normaliza la Clave Única de Identificación Tributaria (AFIP, Argentina).
//
// Formato canónico: DD-DDDDDDDD-D (prefijo de tipo, documento, dígito verificador).
package cuit

import (
	"fmt"
	"regexp"
	"unicode"
)

// pesos del algoritmo módulo 11 de AFIP, aplicados a los 10 primeros dígitos.
var weights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

var canonical = regexp.MustCompile(`^\d{2}-\d{8}-\d$`)

// HasCanonicalFormat indica si s respeta exactamente el formato DD-DDDDDDDD-D.
func HasCanonicalFormat(s string) bool {
	return canonical.MatchString(s)
}

// Normalize devuelve solo los dígitos de s.
func Normalize(s string) string {
	out := make([]rune, 0, 11)
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// Format convierte un CUIT de 11 dígitos (con o sin separadores) al formato canónico.
func Format(s string) (string, error) {
	d := Normalize(s)
	if len(d) != 11 {
		return "", fmt.Errorf("cuit: se esperaban 11 dígitos, se encontraron %d", len(d))
	}
	return d[:2] + "-" + d[2:10] + "-" + d[10:], nil
}

// CheckDigit calcula el dígito verificador para los 10 primeros dígitos.
// Un resto de 11 da 0; un resto de 10 da 9 (AFIP reasigna esos casos al prefijo 23/24).
func CheckDigit(s string) (byte, error) {
	d := Normalize(s)
	if len(d) < 10 {
		return 0, fmt.Errorf("cuit: se requieren al menos 10 dígitos, se encontraron %d", len(d))
	}
	var sum int
	for i := 0; i < 10; i++ {
		sum += int(d[i]-'0') * weights[i]
	}
	switch r := 11 - sum%11; r {
	case 11:
		return '0', nil
	case 10:
		return '9', nil
	default:
		return byte('0' + r), nil
	}
}

// Valid exige formato canónico y dígito verificador correcto.
func Valid(s string) bool {
	if !HasCanonicalFormat(s) {
		return false
	}
	expected, err := CheckDigit(s)
	if err != nil {
		return false
	}
	return s[len(s)-1] == expected
}
