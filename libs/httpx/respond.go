package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response shape shared by every API endpoint:
// {success, data?, message?, error?}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, Envelope{Success: true, Data: data})
}

func Message(w http.ResponseWriter, status int, msg string) {
	writeEnvelope(w, status, Envelope{Success: true, Message: msg})
}

func Error(w http.ResponseWriter, status int, msg string) {
	writeEnvelope(w, status, Envelope{Success: false, Error: msg})
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
