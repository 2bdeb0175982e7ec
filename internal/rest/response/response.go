package response

// DateTimeFormat renders timestamps as ISO 8601 with milliseconds.
const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// ServerErrorMessage is shown for every unexpected failure.
const ServerErrorMessage = "terjadi kegagalan pada server kami"

// Body is the envelope of every JSON response.
type Body struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Body {
	return Body{Status: "success", Data: data}
}

func SuccessMessage(msg string) Body {
	return Body{Status: "success", Message: msg}
}

// Fail reports a client error.
func Fail(msg string) Body {
	return Body{Status: "fail", Message: msg}
}

func Error() Body {
	return Body{Status: "error", Message: ServerErrorMessage}
}
