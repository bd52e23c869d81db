package http

import (
	"VoiceTalent-Backend/internal/service"
	"VoiceTalent-Backend/internal/visitor"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// AnalyticsHandler обработчик статистики посещений
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	log       *zap.Logger
}

// NewAnalyticsHandler создает новый обработчик аналитики
func NewAnalyticsHandler(analytics *service.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		log:       log,
	}
}

// RecordVisitRequest структура запроса регистрации посещения
type RecordVisitRequest struct {
	Page      string `json:"page"`
	UserAgent string `json:"userAgent"`
}

// RecordVisitResponse структура ответа регистрации посещения
type RecordVisitResponse struct {
	Success bool `json:"success"`
	Counted bool `json:"counted"`
}

// Handle разводит GET (сводка) и POST (регистрация посещения)
func (h *AnalyticsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getSummary(w, r)
	case http.MethodPost:
		h.recordVisit(w, r)
	default:
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// getSummary возвращает сводку посещаемости
//
//	@Summary		Get visit analytics
//	@Description	Returns visit totals, per-day stats for the recent window and today's row
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	analytics.Summary	"Analytics summary"
//	@Failure		500	{object}	map[string]string	"Internal error"
//	@Router			/api/analytics [get]
func (h *AnalyticsHandler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analytics.Summary(r.Context())
	if err != nil {
		h.log.Error("failed to build analytics summary", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to get analytics")
		return
	}
	writeJSON(w, h.log, http.StatusOK, summary)
}

// recordVisit регистрирует посещение страницы
//
//	@Summary		Record a visit
//	@Description	Records a page visit, deduplicated per IP and session within the current day
//	@Tags			Analytics
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecordVisitRequest	true	"Visit info"
//	@Success		200		{object}	RecordVisitResponse	"Visit recorded"
//	@Failure		500		{object}	map[string]string	"Internal error"
//	@Router			/api/analytics [post]
func (h *AnalyticsHandler) recordVisit(w http.ResponseWriter, r *http.Request) {
	var req RecordVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid visit request body", zap.Error(err))
		// Тело не обязательно: считаем посещение корня
		req = RecordVisitRequest{}
	}

	ip, ok := visitor.IPFromContext(r.Context())
	if !ok {
		ip = visitor.ClientIP(r)
	}
	sessionID, ok := visitor.SessionFromContext(r.Context())
	if !ok {
		sessionID = visitor.SessionFromRequest(r)
	}
	if sessionID == "" {
		sessionID = "unknown"
	}
	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = r.UserAgent()
	}

	counted, err := h.analytics.RecordVisit(r.Context(), req.Page, userAgent, ip, sessionID)
	if err != nil {
		h.log.Error("failed to record visit", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to record visit")
		return
	}

	writeJSON(w, h.log, http.StatusOK, RecordVisitResponse{Success: true, Counted: counted})
}

// Devices возвращает распределение посещений по типам устройств
//
//	@Summary		Device breakdown
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	map[string]map[string]int	"Visits per device type"
//	@Router			/api/analytics/devices [get]
func (h *AnalyticsHandler) Devices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	devices, err := h.analytics.DeviceBreakdown(r.Context())
	if err != nil {
		h.log.Error("failed to compute device breakdown", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, "Failed to get analytics")
		return
	}
	writeJSON(w, h.log, http.StatusOK, map[string]map[string]int{"devices": devices})
}
