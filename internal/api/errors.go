package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// StatusError is an API response with a non-2xx status. The message comes
// from the response body's error/message field when the server provides one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %s", http.StatusText(e.Code))
}

// IsStatus reports whether err is a StatusError with the given status code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// statusError builds a StatusError from an error response body. The API
// reports failures as {"error": ...} or {"message": ...}.
func statusError(code int, body []byte) *StatusError {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(body, &errResp) == nil {
		msg = errResp.Error
		if msg == "" {
			msg = errResp.Message
		}
	}
	return &StatusError{Code: code, Message: msg}
}
