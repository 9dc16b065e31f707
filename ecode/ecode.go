package ecode

// Business codes carried in error envelopes alongside the HTTP status.
const (
	OK               = 0
	RequestErr       = -400
	NothingFound     = -404
	UnprocessableErr = -422
	ServerErr        = -500
)

var messages = map[int]string{
	OK:               "success",
	RequestErr:       "invalid request",
	NothingFound:     "resource not found",
	UnprocessableErr: "unprocessable payload",
	ServerErr:        "internal server error",
}

// Text returns the human-readable message for the given business code.
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}
