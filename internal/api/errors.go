package api

import (
	stderrors "errors"
	"net/http"

	"hellod/internal/errors"
)

// WriteText writes a plain text response
func WriteText(w http.ResponseWriter, body string, status int) {
	Text(status, body).Respond(w)
}

// MapErrorToStatus maps error codes to HTTP status codes
func MapErrorToStatus(code errors.ErrorCode) int {
	switch code {
	case errors.InvalidPathParam:
		return http.StatusBadRequest // 400
	case errors.RejectedInput:
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}

// WriteError writes err as a plain text response. Parameter errors carry their
// own message as the body; anything else is reported as a bare 500.
func WriteError(w http.ResponseWriter, err error) {
	var paramErr *errors.ParamError
	if stderrors.As(err, &paramErr) {
		WriteText(w, paramErr.Error(), MapErrorToStatus(paramErr.Code()))
		return
	}

	var coded *errors.Error
	if stderrors.As(err, &coded) && coded.Code != errors.InternalError {
		WriteText(w, coded.Message, MapErrorToStatus(coded.Code))
		return
	}

	InternalError(w, "Internal server error")
}

// InternalError writes a 500 Internal Server Error
func InternalError(w http.ResponseWriter, message string) {
	WriteText(w, message, http.StatusInternalServerError)
}
