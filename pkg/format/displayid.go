// Package format convierte valores de dominio a su forma de presentación y viceversa:
// IDs con prefijo (P007), montos en pesos (₱1,234.50) y fechas en formato de 12 horas.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefijos de ID de presentación por entidad.
const (
	PrefixProduct   = "P"
	PrefixCategory  = "C"
	PrefixSupplier  = "S"
	PrefixWarehouse = "W"
	PrefixOrder     = "O"
	PrefixUser      = "U"
	PrefixOrderItem = "OI"
)

// ID devuelve el ID de presentación: prefijo + número con al menos 3 dígitos (P007, P1234).
func ID(prefix string, id int64) string {
	return fmt.Sprintf("%s%03d", prefix, id)
}

// ParseID acepta "7", "007", "P007" u "OI012" y devuelve el número.
// Se descartan las letras iniciales, cualquiera sea el prefijo.
func ParseID(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	digits := strings.TrimLeftFunc(raw, func(r rune) bool {
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	})
	if digits == "" {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return n, nil
}
