package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/internal/core/service"
)

const (
	maxJSONBody     = 32 << 20
	msgInvalidJSON  = "invalid JSON data"
	msgFormBusy     = "this form is already being submitted"
	msgWriteFailure = "failed to write response body"
)

// feedback carries either the success message or the error, never both.
type feedback struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

var badRequestErrs = []error{
	service.ErrInvalidLoginResponse,
	service.ErrUnknownOrderStatus,
	service.ErrInvalidIdentifier,
	domain.ErrInvalidJSON,
	domain.ErrNotAList,
	domain.ErrEmptyBatch,
	domain.ErrNameRequired,
	domain.ErrPriceRequired,
	domain.ErrDescriptionRequired,
	domain.ErrImageRequired,
	domain.ErrImageType,
	domain.ErrImageTooLarge,
	domain.ErrEmptyPatch,
	domain.ErrCategoryNameRequired,
	domain.ErrCredentialsRequired,
}

// statusFor maps a service error to the response status. Session errors
// are checked before backend ones, an expired session carries both.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrSessionExpired),
		errors.Is(err, port.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrTransitionNotAllowed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, port.ErrBackend):
		return http.StatusBadGateway
	}
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(msgWriteFailure, "err", err)
	}
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, feedback{Message: msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, feedback{Error: msg})
}

// writeFailure answers err with its mapped status and the operator
// facing message.
func writeFailure(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error(fallback, "err", err)
	} else {
		log.Warn(fallback, "status", status, "err", err)
	}
	writeError(w, status, service.Message(err, fallback))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	return json.NewDecoder(r.Body).Decode(v)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidIdentifier
	}
	return id, nil
}

// optionalID parses an optional positive id; blank means none.
func optionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, service.ErrInvalidIdentifier
	}
	return &id, nil
}
