package http

import (
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// PartnersHandler обработчик списка партнеров.
// Идентификаторы числовые строки, выдаются сервером как max+1.
type PartnersHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewPartnersHandler создает новый обработчик партнеров
func NewPartnersHandler(storage repository.Storage, log *zap.Logger) *PartnersHandler {
	return &PartnersHandler{
		storage: storage,
		log:     log,
	}
}

// partnerMutationRequest структура запроса создания/изменения партнера
type partnerMutationRequest struct {
	Partner *domain.Partner `json:"partner"`
	ID      string          `json:"id"`
}

// reorderPartnersRequest структура запроса изменения порядка
type reorderPartnersRequest struct {
	Partners []*domain.Partner `json:"partners"`
}

// Handle разводит CRUD-методы коллекции партнеров
func (h *PartnersHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *PartnersHandler) list(w http.ResponseWriter, r *http.Request) {
	partners, err := h.storage.ListPartners(r.Context())
	if err != nil {
		h.log.Error("failed to list partners", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to fetch partners")
		return
	}
	writeJSON(w, h.log, http.StatusOK, map[string][]*domain.Partner{"partners": partners})
}

func (h *PartnersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req partnerMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Partner == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Идентификатор назначает хранилище
	if err := h.storage.CreatePartner(r.Context(), req.Partner); err != nil {
		h.log.Error("failed to create partner", zap.Error(err))
		writeJSON(w, h.log, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to create partner",
		})
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{
		"success": true,
		"partner": req.Partner,
	})
}

func (h *PartnersHandler) update(w http.ResponseWriter, r *http.Request) {
	var req partnerMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Partner == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.UpdatePartner(r.Context(), req.ID, req.Partner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, h.log, http.StatusNotFound, map[string]any{
				"success": false,
				"error":   "Partner not found",
			})
			return
		}
		h.log.Error("failed to update partner", zap.String("id", req.ID), zap.Error(err))
		writeJSON(w, h.log, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to update partner",
		})
		return
	}

	req.Partner.ID = req.ID
	writeJSON(w, h.log, http.StatusOK, map[string]any{
		"success": true,
		"partner": req.Partner,
	})
}

func (h *PartnersHandler) delete(w http.ResponseWriter, r *http.Request) {
	var req partnerMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.DeletePartner(r.Context(), req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, h.log, http.StatusNotFound, map[string]any{
				"success": false,
				"error":   "Partner not found",
			})
			return
		}
		h.log.Error("failed to delete partner", zap.String("id", req.ID), zap.Error(err))
		writeJSON(w, h.log, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to delete partner",
		})
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{"success": true})
}

// Reorder полностью заменяет список партнеров присланным порядком
func (h *PartnersHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req reorderPartnersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Partners == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.ReplacePartners(r.Context(), req.Partners); err != nil {
		h.log.Error("failed to reorder partners", zap.Error(err))
		writeJSON(w, h.log, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to reorder partners",
		})
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{
		"success":  true,
		"partners": req.Partners,
	})
}
