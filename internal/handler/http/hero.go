package http

import (
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// HeroHandler обработчик hero-секции главной страницы (единый документ)
type HeroHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewHeroHandler создает новый обработчик hero-секции
func NewHeroHandler(storage repository.Storage, log *zap.Logger) *HeroHandler {
	return &HeroHandler{
		storage: storage,
		log:     log,
	}
}

// heroDocument обертка документа hero-секции
type heroDocument struct {
	Hero *domain.HeroData `json:"hero"`
}

// Handle разводит GET (чтение) и PUT (полная замена)
func (h *HeroHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *HeroHandler) get(w http.ResponseWriter, r *http.Request) {
	hero, err := h.storage.GetHero(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, h.log, http.StatusNotFound, "No hero data found")
			return
		}
		h.log.Error("failed to load hero data", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to fetch hero data")
		return
	}
	writeJSON(w, h.log, http.StatusOK, heroDocument{Hero: hero})
}

func (h *HeroHandler) put(w http.ResponseWriter, r *http.Request) {
	var doc heroDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}
	if doc.Hero == nil {
		writeError(w, h.log, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.storage.PutHero(r.Context(), doc.Hero); err != nil {
		h.log.Error("failed to update hero data", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to update hero data")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]string{"message": "Hero data updated successfully"})
}
