package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmahub/stores"
)

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func RespondWithMessage(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"message": msg})
}

// RespondWithError translates a store error into its HTTP status code.
func RespondWithError(w http.ResponseWriter, err error) {
	var ve stores.ValidationError
	switch {
	case errors.As(err, &ve):
		RespondWithMessage(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, stores.ErrNotFound):
		RespondWithMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, stores.ErrConflict):
		RespondWithMessage(w, http.StatusConflict, "Already exists")
	case errors.Is(err, stores.ErrForbidden):
		RespondWithMessage(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, stores.ErrInvalidTransition):
		RespondWithMessage(w, http.StatusBadRequest, "Invalid status transition")
	default:
		RespondWithMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

type M map[string]interface{}
