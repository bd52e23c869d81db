package http

import (
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository"
	"VoiceTalent-Backend/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MessagesHandler обработчик сообщений формы обратной связи.
// Сохраняет сообщение и асинхронно пересылает его на email получателя.
type MessagesHandler struct {
	storage repository.Storage
	mailer  *service.Mailer
	log     *zap.Logger
}

// NewMessagesHandler создает новый обработчик сообщений
func NewMessagesHandler(storage repository.Storage, mailer *service.Mailer, log *zap.Logger) *MessagesHandler {
	return &MessagesHandler{
		storage: storage,
		mailer:  mailer,
		log:     log,
	}
}

// createMessageRequest структура запроса отправки сообщения
type createMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	To      string `json:"to"`
}

// setReadRequest структура запроса изменения статуса прочтения
type setReadRequest struct {
	IsRead *bool `json:"isRead"`
}

// Handle разводит GET (список) и POST (новое сообщение)
func (h *MessagesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *MessagesHandler) list(w http.ResponseWriter, r *http.Request) {
	messages, err := h.storage.ListMessages(r.Context())
	if err != nil {
		h.log.Error("failed to list messages", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	writeJSON(w, h.log, http.StatusOK, map[string][]*domain.ContactMessage{"messages": messages})
}

func (h *MessagesHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" || req.To == "" {
		writeError(w, h.log, http.StatusBadRequest, "Missing required fields")
		return
	}

	message := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		To:        req.To,
		CreatedAt: time.Now().UTC(),
		IsRead:    false,
	}

	if err := h.storage.CreateMessage(r.Context(), message); err != nil {
		h.log.Error("failed to save message", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to add message")
		return
	}

	// Пересылка на email выполняется в фоне и не влияет на ответ
	h.mailer.Enqueue(&service.Notification{
		ReplyTo: req.Email,
		To:      req.To,
		Subject: fmt.Sprintf("[Voice Talent] Liên hệ từ %s", req.Name),
		Text:    req.Message,
	})

	writeJSON(w, h.log, http.StatusOK, map[string]*domain.ContactMessage{"message": message})
}

// HandleByID обрабатывает PATCH/DELETE для /api/contact-messages/{id}
func (h *MessagesHandler) HandleByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/contact-messages/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, h.log, http.StatusNotFound, "Message not found")
		return
	}

	switch r.Method {
	case http.MethodPatch:
		h.setRead(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *MessagesHandler) setRead(w http.ResponseWriter, r *http.Request, id string) {
	var req setReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsRead == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.storage.SetMessageRead(r.Context(), id, *req.IsRead)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, h.log, http.StatusNotFound, "Message not found")
			return
		}
		h.log.Error("failed to update message", zap.String("id", id), zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{
		"success": true,
		"message": message,
	})
}

func (h *MessagesHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.storage.DeleteMessage(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, h.log, http.StatusNotFound, "Message not found")
			return
		}
		h.log.Error("failed to delete message", zap.String("id", id), zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]bool{"success": true})
}
