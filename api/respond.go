package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/tripstack/tripstack/auth"
	"github.com/tripstack/tripstack/internal/logutil"
	"github.com/tripstack/tripstack/store"
)

type (
	errorResponse struct {
		Error string `json:"error"`
	}

	okResponse struct {
		OK bool `json:"ok"`
	}
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// fail maps domain errors to their HTTP status. Anything unexpected is
// a storage level failure and surfaces as 500 with the stringified
// cause, never silently swallowed.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr auth.ValidationError
	var conflict store.Conflict
	var notFound store.NotFound
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, auth.ErrNoSession):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.As(err, &conflict):
		writeError(w, http.StatusConflict, conflict.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		logger := logutil.ForRequest(r)
		logger.Error().Err(err).Msg("Request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// readJSON tolerates an empty body, a malformed one fails the request.
func readJSON(r *http.Request, out interface{}) error {
	err := json.NewDecoder(r.Body).Decode(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return auth.ValidationError{Msg: "invalid JSON payload"}
	}
	return nil
}
