package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PesoSign símbolo usado en los montos de presentación.
const PesoSign = "₱"

// Peso formatea un monto como ₱ + miles con coma + 2 decimales.
func Peso(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	return PesoSign + p.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// PesoNull igual que Peso; un valor nulo se presenta como monto cero.
func PesoNull(d decimal.NullDecimal) string {
	if !d.Valid {
		return Peso(decimal.Zero)
	}
	return Peso(d.Decimal)
}

// ParseMoney acepta "1234.5", "1,234.50" o "₱1,234.50".
func ParseMoney(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer(PesoSign, "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
