package http

import (
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ContactHandler обработчик контактной информации сайта (единый документ)
type ContactHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewContactHandler создает новый обработчик контактов
func NewContactHandler(storage repository.Storage, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		storage: storage,
		log:     log,
	}
}

// contactDocument обертка документа контактной информации
type contactDocument struct {
	Contact *domain.ContactData `json:"contact"`
}

// Handle разводит GET (чтение) и PUT (полная замена)
func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *ContactHandler) get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.storage.GetContact(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, h.log, http.StatusNotFound, "No contact info found")
			return
		}
		h.log.Error("failed to load contact info", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to fetch contact info")
		return
	}
	writeJSON(w, h.log, http.StatusOK, contactDocument{Contact: contact})
}

func (h *ContactHandler) put(w http.ResponseWriter, r *http.Request) {
	var doc contactDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || doc.Contact == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.PutContact(r.Context(), doc.Contact); err != nil {
		h.log.Error("failed to update contact info", zap.Error(err))
		writeJSON(w, h.log, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to update contact info",
		})
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{
		"success": true,
		"data":    doc,
	})
}
