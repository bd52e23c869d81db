package http

import (
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ServicesHandler обработчик услуг озвучивания.
// Каждая операция записи возвращает итоговый список целиком.
type ServicesHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewServicesHandler создает новый обработчик услуг
func NewServicesHandler(storage repository.Storage, log *zap.Logger) *ServicesHandler {
	return &ServicesHandler{
		storage: storage,
		log:     log,
	}
}

// serviceMutationRequest структура запроса создания/изменения услуги
type serviceMutationRequest struct {
	Service *domain.VoiceService `json:"service"`
	ID      string               `json:"id"`
}

// reorderServicesRequest структура запроса изменения порядка
type reorderServicesRequest struct {
	Services []*domain.VoiceService `json:"services"`
}

// Handle разводит CRUD-методы коллекции услуг
func (h *ServicesHandler) Handle(w http.ResponseWriter, r *http.Request) {
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

// writeServices отправляет текущий список услуг
func (h *ServicesHandler) writeServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.storage.ListServices(r.Context())
	if err != nil {
		h.log.Error("failed to list services", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to fetch services")
		return
	}
	writeJSON(w, h.log, http.StatusOK, map[string][]*domain.VoiceService{"services": services})
}

func (h *ServicesHandler) list(w http.ResponseWriter, r *http.Request) {
	h.writeServices(w, r)
}

func (h *ServicesHandler) create(w http.ResponseWriter, r *http.Request) {
	var req serviceMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Service == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Хранилище присваивает timestamp-идентификатор
	if err := h.storage.CreateService(r.Context(), req.Service); err != nil {
		h.log.Error("failed to create service", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to add service")
		return
	}

	h.writeServices(w, r)
}

func (h *ServicesHandler) update(w http.ResponseWriter, r *http.Request) {
	var req serviceMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Service == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.UpdateService(r.Context(), req.ID, req.Service); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, h.log, http.StatusNotFound, "Service not found")
			return
		}
		h.log.Error("failed to update service", zap.String("id", req.ID), zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to update service")
		return
	}

	h.writeServices(w, r)
}

func (h *ServicesHandler) delete(w http.ResponseWriter, r *http.Request) {
	var req serviceMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Удаление несуществующего ID не считается ошибкой
	if err := h.storage.DeleteService(r.Context(), req.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.log.Error("failed to delete service", zap.String("id", req.ID), zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	h.writeServices(w, r)
}

// Reorder полностью заменяет список услуг присланным порядком
func (h *ServicesHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req reorderServicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Services == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.ReplaceServices(r.Context(), req.Services); err != nil {
		h.log.Error("failed to reorder services", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to reorder services")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string][]*domain.VoiceService{"services": req.Services})
}
