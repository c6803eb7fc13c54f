package http

import (
	"encoding/json"
	"net/http"

	"arena-backend/internal/domain"
	"arena-backend/internal/logger"
)

// envelope is the JSON shape every endpoint responds with.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

func respond(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{
		Success: status < 400,
		Data:    data,
		Message: message,
	}); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// respondError translates the domain error taxonomy to HTTP statuses in
// one place. DuplicateMember and WriteFailure deliberately map to 500:
// the platform has always reported them as server errors, and clients
// depend on that classification.
func respondError(w http.ResponseWriter, err error) {
	var status int
	switch domain.KindOf(err) {
	case domain.ErrInvalidInput:
		status = http.StatusBadRequest
	case domain.ErrUnauthorized:
		status = http.StatusUnauthorized
	case domain.ErrNotFound:
		status = http.StatusNotFound
	case domain.ErrConflict:
		status = http.StatusConflict
	case domain.ErrAlreadyProcessed:
		status = http.StatusNotFound
	case domain.ErrDuplicateMember, domain.ErrWriteFailure:
		status = http.StatusInternalServerError
	default:
		status = http.StatusInternalServerError
	}
	respond(w, status, nil, domain.MessageOf(err))
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Wrap(domain.ErrInvalidInput, "invalid JSON body", err)
	}
	return nil
}
