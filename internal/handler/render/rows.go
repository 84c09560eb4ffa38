package render

import (
	"html/template"
	"net/url"
	"strings"

	"frv-web/internal/domain/reservation"
)

// Columns is the number of cells of a reservation row, action cell included.
const Columns = 8

const emptyRow = `<tr><td colspan="8" style="padding:12px;opacity:.7">No hay reservas.</td></tr>`

// Rows renders the body of the admin reservations table.
// The action buttons submit the form that encloses the table; each one targets its reservation.
func Rows(reservations []reservation.Reservation) template.HTML {
	if len(reservations) == 0 {
		return template.HTML(emptyRow)
	}

	var b strings.Builder
	for _, r := range reservations {
		writeRow(&b, r)
	}
	return template.HTML(b.String())
}

func writeRow(b *strings.Builder, r reservation.Reservation) {
	id := Escape(r.ID)
	base := Escape("/admin/reservas/" + url.PathEscape(r.ID))

	b.WriteString("<tr>")
	for _, cell := range []string{
		r.Name,
		r.Phone,
		r.Province,
		r.Address,
		r.ShortTime(),
		r.Amount,
		r.Status.String(),
	} {
		b.WriteString("<td>")
		b.WriteString(Escape(cell))
		b.WriteString("</td>")
	}

	disabled := ""
	if r.Status.IsCompleted() {
		disabled = " disabled"
	}

	b.WriteString("<td>")
	b.WriteString(`<button type="submit" class="btn-complete btn btn-ghost" data-id="` + id + `" formaction="` + base + `&#x2F;completar"` + disabled + `>Completar</button>`)
	b.WriteString(`<button type="submit" class="btn-delete btn btn-ghost" data-id="` + id + `" formaction="` + base + `&#x2F;eliminar">Eliminar</button>`)
	b.WriteString("</td>")
	b.WriteString("</tr>")
}
