package ledger

import "time"

// Formatos de fecha aceptados. El formato canónico es el que se persiste.
const (
	LayoutDateTime = "2006-01-02 15:04:05"
	LayoutDateOnly = "2006-01-02"
)

// Resolution resultado etiquetado del parseo de una fecha de movimiento.
type Resolution int

const (
	// Unresolved el valor no coincide con ninguna gramática aceptada.
	Unresolved Resolution = iota
	// ResolvedDateTime fecha y hora completas.
	ResolvedDateTime
	// ResolvedDateOnly solo fecha; la hora se normaliza a medianoche.
	ResolvedDateOnly
)

// ParseTimestamp intenta parsear un valor con la gramática "YYYY-MM-DD HH:MM:SS"
// y luego "YYYY-MM-DD". Devuelve el instante y la etiqueta del resultado; el
// caller decide la política de fallback (aquí no se esconde nada en un catch-all).
func ParseTimestamp(raw string) (time.Time, Resolution) {
	if t, err := time.ParseInLocation(LayoutDateTime, raw, time.Local); err == nil {
		return t, ResolvedDateTime
	}
	if t, err := time.ParseInLocation(LayoutDateOnly, raw, time.Local); err == nil {
		return t, ResolvedDateOnly
	}
	return time.Time{}, Unresolved
}

// Normalize aplica la política de fecha de los movimientos: vacío o no parseable
// cae a `now`; una fecha sin hora queda a medianoche. Siempre devuelve el
// formato canónico "YYYY-MM-DD HH:MM:SS". Nunca es un error para el caller.
func Normalize(raw string, now time.Time) string {
	if raw == "" {
		return now.Format(LayoutDateTime)
	}
	t, res := ParseTimestamp(raw)
	if res == Unresolved {
		return now.Format(LayoutDateTime)
	}
	return t.Format(LayoutDateTime)
}
