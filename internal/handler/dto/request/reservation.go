package request

// ReservationForm is the public reservation form. Presence checks live in the domain draft,
// so a half-filled form still binds and gets re-rendered with its values.
type ReservationForm struct {
	Name     string `form:"nombre"`
	Phone    string `form:"telefono"`
	Address  string `form:"direccion"`
	Province string `form:"provincia"`
	Date     string `form:"fecha"`
	Time     string `form:"hora"`
	Problem  string `form:"problema"`
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required"`
}
