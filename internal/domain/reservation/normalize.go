package reservation

import (
	"encoding/json"
	"strconv"

	"frv-web/internal/pkg/patch"
)

// CreatedIDFallback is shown when the creation response carries no identifier.
const CreatedIDFallback = "OK"

// The API answers with either capitalized or lowercase keys depending on the endpoint.
var (
	keysID       = []string{"Id", "id"}
	keysName     = []string{"Nombre", "nombre"}
	keysPhone    = []string{"Telefono", "telefono"}
	keysAddress  = []string{"Direccion", "direccion"}
	keysProvince = []string{"Provincia", "provincia"}
	keysDate     = []string{"Fecha", "fecha"}
	keysTime     = []string{"Hora", "hora"}
	keysProblem  = []string{"Problema", "problema"}
	keysAmount   = []string{"Costo", "costo", "Monto", "monto"}
	keysStatus   = []string{"Estado", "estado", "Status", "status"}
)

// Normalize maps one raw API object onto the canonical record. raw is not modified.
func Normalize(raw map[string]any) Reservation {
	return Reservation{
		ID:       text(raw, keysID...),
		Name:     text(raw, keysName...),
		Phone:    text(raw, keysPhone...),
		Address:  text(raw, keysAddress...),
		Province: text(raw, keysProvince...),
		Date:     text(raw, keysDate...),
		Time:     text(raw, keysTime...),
		Problem:  text(raw, keysProblem...),
		Amount:   text(raw, keysAmount...),
		Status:   Status(text(raw, keysStatus...)),
	}
}

func NormalizeAll(raws []map[string]any) []Reservation {
	out := make([]Reservation, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

// CreatedID extracts the identifier of a freshly created reservation.
func CreatedID(raw map[string]any) string {
	if id := text(raw, "id", "Id"); id != "" {
		return id
	}
	return CreatedIDFallback
}

func text(raw map[string]any, keys ...string) string {
	v, ok := patch.Pick(raw, keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
