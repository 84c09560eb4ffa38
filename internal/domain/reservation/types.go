package reservation

// Status is the lifecycle label the API keeps per booking. It is free text;
// the constants are the values this frontend writes or expects to see.
type Status string

const (
	StatusPending   Status = "PENDIENTE"
	StatusCompleted Status = "COMPLETADA"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}
