package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogCPT/internal/repository"
)

// ErrorResponse - standard error body
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps domain errors onto status codes. Missing entities come
// back as 400 with the fixed description, anything else is a server error.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrPostNotFound) || errors.Is(err, repository.ErrCommentNotFound) {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	WriteError(w, err.Error(), http.StatusInternalServerError)
}
