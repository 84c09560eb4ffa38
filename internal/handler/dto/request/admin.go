package request

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// ActionForm accompanies the complete and delete buttons of the reservations table.
type ActionForm struct {
	Date    string `form:"date"`
	Confirm string `form:"confirm"`
}

// Confirmed is true when the user already answered the delete prompt.
func (f ActionForm) Confirmed() bool {
	return f.Confirm == "si"
}

type FilterQuery struct {
	Date string `form:"date"`
}
