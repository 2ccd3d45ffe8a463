package models

// ErrorBody is the only shape an error ever takes on the wire.
type ErrorBody struct {
	Message string `json:"message"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Message: message}
}
