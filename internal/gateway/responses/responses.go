package responses

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prf-platform/prfweb/internal/logger"
)

// ErrorResponse is the JSON error shape the gateway returns for failures it
// raises itself (the backend's own error bodies pass through the proxy untouched)
type ErrorResponse struct {
	Message string `json:"message"`
}

func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	requestLogger := logger.ContextRequestLogger(r.Context())

	switch {
	case statusCode >= 500:
		requestLogger.Error("request failed", slog.Int("status", statusCode), slog.String("error_message", message))
	case statusCode >= 400:
		requestLogger.Warn("request failed", slog.Int("status", statusCode), slog.String("error_message", message))
	}

	RespondWithJSON(w, statusCode, ErrorResponse{Message: message})
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
