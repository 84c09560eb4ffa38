package reservationapi

type loginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type statusRequest struct {
	Status string `json:"Status"`
}

// errorResponse covers the error shapes the API produces.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorResponse) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
