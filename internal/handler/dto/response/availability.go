package response

type AvailabilityResponse struct {
	Date          string `json:"date"`
	Message       string `json:"message"`
	SubmitEnabled bool   `json:"submitEnabled"`
}
