package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// apiResponse is the standard REST response envelope.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// sendResponse writes a standardized API response.
func sendResponse(w http.ResponseWriter, statusCode int, success bool, message string, data any) {
	respondJSON(w, statusCode, apiResponse{Success: success, Message: message, Data: data})
}

func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
