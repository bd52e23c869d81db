package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// writeJSON сериализует ответ в JSON с указанным статусом
func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("failed to encode response", zap.Error(err))
	}
}

// writeError отправляет ошибку в формате {"error": "..."}
func writeError(w http.ResponseWriter, log *zap.Logger, status int, message string) {
	writeJSON(w, log, status, map[string]string{"error": message})
}
