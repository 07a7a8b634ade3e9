package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"witnessconsole/internal/api"
	middlewarex "witnessconsole/internal/http/middleware"
	"witnessconsole/internal/notify"
	"witnessconsole/internal/views"
)

// Envelope wraps every view response
type Envelope struct {
	Data          any                   `json:"data,omitempty"`
	Error         string                `json:"error,omitempty"`
	Message       string                `json:"message,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	env.Notifications = middlewarex.Notifier(r.Context()).Drain()
	if env.Notifications == nil {
		env.Notifications = []notify.Notification{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respond(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusOK, Envelope{Data: data})
}

// respondError maps view errors to status codes
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		formErr    *views.FormError
		missingErr *api.MissingParameterError
		httpErr    *api.HTTPError
		opErr      *api.OperationError
	)

	status, code, msg := http.StatusInternalServerError, "internal_error", "internal error"
	switch {
	case errors.As(err, &formErr):
		status, code, msg = http.StatusBadRequest, "invalid_input", formErr.Error()
	case errors.As(err, &missingErr):
		status, code, msg = http.StatusInternalServerError, "missing_parameter", missingErr.Error()
	case api.IsNotFound(err):
		status, code, msg = http.StatusNotFound, "not_found", "backend has no such record"
	case errors.As(err, &httpErr):
		status, code = http.StatusBadGateway, "backend_error"
		if httpErr.StatusCode == 0 {
			msg = "backend unreachable"
		} else {
			msg = fmt.Sprintf("backend responded with status %d", httpErr.StatusCode)
		}
	case errors.As(err, &opErr):
		status, code, msg = http.StatusInternalServerError, "unknown_operation", opErr.Error()
	}

	if status >= 500 {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("view failed")
	}
	writeJSON(w, r, status, Envelope{Error: code, Message: msg})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &views.FormError{Field: "body", Message: "invalid JSON body"}
	}
	return nil
}
