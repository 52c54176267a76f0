package format

import "time"

// DateTimeLayout fecha y hora de 12 horas usada en las respuestas.
const DateTimeLayout = "2006-01-02 03:04:05 PM"

// DateTime formatea t con DateTimeLayout; el cero se presenta vacío.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}
