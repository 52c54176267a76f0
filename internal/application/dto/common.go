package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-orders-api/pkg/format"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// StatusErrorResponse cuerpo de error de las rutas que responden con status/message.
type StatusErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// MessageResponse confirmación de borrado.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FlexID ID de entrada que acepta 7, "7" o "P007". Vacío o null deja Valid en false.
type FlexID struct {
	Value int64
	Valid bool
}

// NewFlexID atajo para tests y llamadas internas.
func NewFlexID(v int64) FlexID { return FlexID{Value: v, Valid: true} }

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = FlexID{}
		return nil
	}
	var raw string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			*f = FlexID{}
			return nil
		}
	} else {
		raw = string(b)
	}
	n, err := format.ParseID(raw)
	if err != nil {
		return err
	}
	*f = FlexID{Value: n, Valid: true}
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(f.Value, 10)), nil
}

// Ptr devuelve nil si no viene el ID.
func (f FlexID) Ptr() *int64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// FlexInt entero que acepta 5 o "5".
type FlexInt struct {
	Value int
	Valid bool
}

// NewFlexInt atajo para tests y llamadas internas.
func NewFlexInt(v int) FlexInt { return FlexInt{Value: v, Valid: true} }

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = FlexInt{}
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*f = FlexInt{}
			return nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %q", raw)
	}
	*f = FlexInt{Value: n, Valid: true}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// Money monto de entrada: número o texto con ₱ y separadores de miles.
type Money struct {
	Amount decimal.Decimal
	Valid  bool
}

// NewMoney atajo para tests y llamadas internas.
func NewMoney(d decimal.Decimal) Money { return Money{Amount: d, Valid: true} }

func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*m = Money{}
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			*m = Money{}
			return nil
		}
	}
	d, err := format.ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = Money{Amount: d, Valid: true}
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return []byte(m.Amount.String()), nil
}

// OrZero monto o cero si no vino.
func (m Money) OrZero() decimal.Decimal {
	if !m.Valid {
		return decimal.Zero
	}
	return m.Amount
}

// Or monto o el valor actual si no vino.
func (m Money) Or(current decimal.Decimal) decimal.Decimal {
	if !m.Valid {
		return current
	}
	return m.Amount
}
