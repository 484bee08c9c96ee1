package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/models/dtos"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: elapsed(initTime),
		Data:         data,
	}

	writeJSON(w, code, response)
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      msg,
		ResponseTime: elapsed(initTime),
	}

	writeJSON(w, code, response)
}

// RespondServiceError maps a service error onto its HTTP status. Storage
// failures are logged and answered with a generic message.
func RespondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	response := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      err.Error(),
		ResponseTime: elapsed(initTime),
	}

	var (
		validation *apperr.ValidationError
		notFound   *apperr.NotFoundError
		capacity   *apperr.CapacityExceededError
		locked     *apperr.LockedError
		conflict   *apperr.ConflictError
		authErr    *apperr.AuthError
	)

	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &validation):
		code = http.StatusBadRequest
		response.Message = "Validation failed"
		response.Errors = validation.Fields
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &capacity):
		code = http.StatusUnprocessableEntity
	case errors.As(err, &locked), errors.As(err, &conflict):
		code = http.StatusConflict
	case errors.As(err, &authErr):
		code = http.StatusUnauthorized
	default:
		logging.Error("Request failed", "error", err)
		response.Message = constants.MsgInternalError
	}

	writeJSON(w, code, response)
}

// elapsed renders handler time for the envelope, e.g. "12ms".
func elapsed(since time.Time) string {
	return strconv.FormatInt(time.Since(since).Milliseconds(), 10) + "ms"
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err)
	}
}
