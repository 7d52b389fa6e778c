// Package handler exposes the HTTP handlers of the booking API.  Every
// response, success or failure, uses the same envelope so clients can
// parse uniformly.
package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response body: {status_code, message, data}.
// Data is an object on success and an empty object on errors.
type Envelope struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

func respond(c echo.Context, status int, message string, data any) error {
	if data == nil {
		data = map[string]any{}
	}
	return c.JSON(status, Envelope{StatusCode: status, Message: message, Data: data})
}

// ErrorHandler maps any error escaping a handler into the envelope with
// an empty data object.  Unclassified errors become 500 so storage
// trouble never leaks partial state to the caller.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := "Internal Server Error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}
	_ = c.JSON(code, Envelope{StatusCode: code, Message: message, Data: map[string]any{}})
}
