package http

import (
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ProjectsHandler обработчик портфолио проектов.
// Проекты адресуются позицией в отсортированном списке, а не ключом.
type ProjectsHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewProjectsHandler создает новый обработчик проектов
func NewProjectsHandler(storage repository.Storage, log *zap.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		storage: storage,
		log:     log,
	}
}

// projectMutationRequest структура запроса создания/изменения проекта
type projectMutationRequest struct {
	Project *domain.Project `json:"project"`
	ID      int             `json:"id"`
}

// reorderProjectsRequest структура запроса изменения порядка
type reorderProjectsRequest struct {
	Projects []*domain.Project `json:"projects"`
}

// Handle разводит CRUD-методы коллекции проектов
func (h *ProjectsHandler) Handle(w http.ResponseWriter, r *http.Request) {
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

func (h *ProjectsHandler) list(w http.ResponseWriter, r *http.Request) {
	projects, err := h.storage.ListProjects(r.Context())
	if err != nil {
		h.log.Error("failed to list projects", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to load projects")
		return
	}
	writeJSON(w, h.log, http.StatusOK, map[string][]*domain.Project{"projects": projects})
}

func (h *ProjectsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req projectMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Project == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.CreateProject(r.Context(), req.Project); err != nil {
		h.log.Error("failed to create project", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to create project")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]string{"message": "Project created successfully"})
}

func (h *ProjectsHandler) update(w http.ResponseWriter, r *http.Request) {
	var req projectMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Project == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.UpdateProjectAt(r.Context(), req.ID, req.Project); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, h.log, http.StatusNotFound, "Project not found")
			return
		}
		h.log.Error("failed to update project", zap.Int("index", req.ID), zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to update project")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]string{"message": "Project updated successfully"})
}

func (h *ProjectsHandler) delete(w http.ResponseWriter, r *http.Request) {
	var req projectMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.DeleteProjectAt(r.Context(), req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, h.log, http.StatusNotFound, "Project not found")
			return
		}
		h.log.Error("failed to delete project", zap.Int("index", req.ID), zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

// Reorder полностью заменяет список проектов присланным порядком
func (h *ProjectsHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req reorderProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Projects == nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.storage.ReplaceProjects(r.Context(), req.Projects); err != nil {
		h.log.Error("failed to reorder projects", zap.Error(err))
		writeJSON(w, h.log, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to reorder projects",
		})
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{
		"success":  true,
		"projects": req.Projects,
	})
}
