package reservation

// Reservation is the canonical record every API response is normalized into.
// All fields are kept as text exactly as the API reported them.
type Reservation struct {
	ID       string
	Name     string
	Phone    string
	Address  string
	Province string
	Date     string
	Time     string
	Problem  string
	Amount   string
	Status   Status
}

// ShortTime is the HH:MM prefix of Time.
func (r Reservation) ShortTime() string {
	runes := []rune(r.Time)
	if len(runes) > 5 {
		return string(runes[:5])
	}
	return r.Time
}
