package common

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// MessageResponse is the body of every non-2xx response.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger zerolog.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Int("status", status).Msg("encode json response")
	}
}

// WriteMessage writes {"msg": msg} with status.
func WriteMessage(logger zerolog.Logger, w http.ResponseWriter, status int, msg string) {
	WriteJSON(logger, w, status, MessageResponse{Msg: msg})
}
