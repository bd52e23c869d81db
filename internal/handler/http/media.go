package http

import (
	"VoiceTalent-Backend/internal/media"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// maxUploadSize лимит размера multipart-загрузки (32 MB)
const maxUploadSize = 32 << 20

// MediaHandler обработчик файлового менеджера админки
type MediaHandler struct {
	manager *media.Manager
	log     *zap.Logger
}

// NewMediaHandler создает новый обработчик файлового менеджера
func NewMediaHandler(manager *media.Manager, log *zap.Logger) *MediaHandler {
	return &MediaHandler{
		manager: manager,
		log:     log,
	}
}

// renameRequest структура запроса переименования/перемещения
type renameRequest struct {
	OldPath string `json:"oldPath"`
	NewPath string `json:"newPath"`
}

// fileOperationRequest структура запроса файловой операции
type fileOperationRequest struct {
	Path        string `json:"path"`
	Operation   string `json:"operation"`
	Destination string `json:"destination"`
}

// Handle разводит операции файлового менеджера по HTTP методам
func (h *MediaHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.upload(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	case http.MethodPatch:
		h.rename(w, r)
	case http.MethodPut:
		h.operate(w, r)
	default:
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *MediaHandler) list(w http.ResponseWriter, r *http.Request) {
	dir := r.URL.Query().Get("dir")

	files, err := h.manager.List(dir)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrInvalidPath):
			writeError(w, h.log, http.StatusBadRequest, "Invalid path")
		case errors.Is(err, media.ErrNotDirectory):
			writeError(w, h.log, http.StatusBadRequest, "Not a directory")
		default:
			h.log.Error("failed to read directory", zap.String("dir", dir), zap.Error(err))
			writeError(w, h.log, http.StatusInternalServerError, "Failed to read directory")
		}
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string][]media.FileInfo{"files": files})
}

func (h *MediaHandler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	dir := r.FormValue("dir")

	path, err := h.manager.Save(dir, header.Filename, file)
	if err != nil {
		if errors.Is(err, media.ErrInvalidPath) {
			writeError(w, h.log, http.StatusBadRequest, "Invalid path")
			return
		}
		h.log.Error("failed to save file", zap.String("name", header.Filename), zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to save file")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{
		"success": true,
		"path":    path,
	})
}

func (h *MediaHandler) delete(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, h.log, http.StatusBadRequest, "No path provided")
		return
	}

	if err := h.manager.Delete(path); err != nil {
		if errors.Is(err, media.ErrInvalidPath) {
			writeError(w, h.log, http.StatusBadRequest, "Invalid path")
			return
		}
		h.log.Error("failed to delete path", zap.String("path", path), zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to delete")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]bool{"success": true})
}

func (h *MediaHandler) rename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.OldPath == "" || req.NewPath == "" {
		writeError(w, h.log, http.StatusBadRequest, "Missing path information")
		return
	}

	newPath, err := h.manager.Rename(req.OldPath, req.NewPath)
	if err != nil {
		if errors.Is(err, media.ErrInvalidPath) {
			writeError(w, h.log, http.StatusBadRequest, "Invalid path")
			return
		}
		h.log.Error("failed to rename path",
			zap.String("from", req.OldPath),
			zap.String("to", req.NewPath),
			zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to move/rename")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{
		"success": true,
		"newPath": newPath,
	})
}

func (h *MediaHandler) operate(w http.ResponseWriter, r *http.Request) {
	var req fileOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Path == "" || req.Operation == "" {
		writeError(w, h.log, http.StatusBadRequest, "Missing required information")
		return
	}

	if req.Operation != "copy" || req.Destination == "" {
		writeError(w, h.log, http.StatusBadRequest, "Invalid operation")
		return
	}

	newPath, err := h.manager.Copy(req.Path, req.Destination)
	if err != nil {
		if errors.Is(err, media.ErrInvalidPath) {
			writeError(w, h.log, http.StatusBadRequest, "Invalid path")
			return
		}
		h.log.Error("failed to copy file",
			zap.String("from", req.Path),
			zap.String("to", req.Destination),
			zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Operation failed")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{
		"success": true,
		"newPath": newPath,
	})
}

// Logos возвращает список файлов изображений из директории логотипов
func (h *MediaHandler) Logos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	logos, err := h.manager.ListLogos()
	if err != nil {
		h.log.Error("failed to list logos", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to get logos")
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string][]media.Logo{"logos": logos})
}
