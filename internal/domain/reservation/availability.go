package reservation

import "fmt"

// Availability is derived per date query and never stored.
type Availability struct {
	Available int `json:"available"`
	Capacity  int `json:"capacity"`
}

func (a Availability) CanBook() bool {
	return a.Available > 0
}

func (a Availability) String() string {
	return fmt.Sprintf("%d / %d", a.Available, a.Capacity)
}
