package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"VoiceTalent-Backend/internal/config"
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository/memory"
	"VoiceTalent-Backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func jsonRequest(method, target string, payload any) *http.Request {
	var buf bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&buf).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Projects ---

func TestProjectsHandler_CRUD(t *testing.T) {
	store := memory.New()
	h := NewProjectsHandler(store, zap.NewNop())

	// Create
	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPost, "/api/projects", map[string]any{
		"project": map[string]any{"title": "TVC Vinamilk", "year": "2024"},
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project created successfully", decodeBody(t, rec)["message"])

	// List
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	projects := body["projects"].([]any)
	require.Len(t, projects, 1)
	assert.Equal(t, "TVC Vinamilk", projects[0].(map[string]any)["title"])

	// Update by index
	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPut, "/api/projects", map[string]any{
		"project": map[string]any{"title": "Renamed"},
		"id":      0,
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project updated successfully", decodeBody(t, rec)["message"])

	// Update off-range index
	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPut, "/api/projects", map[string]any{
		"project": map[string]any{"title": "x"},
		"id":      5,
	}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Delete
	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodDelete, "/api/projects", map[string]any{"id": 0}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project deleted successfully", decodeBody(t, rec)["message"])

	// Delete on the now-empty list
	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodDelete, "/api/projects", map[string]any{"id": 0}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectsHandler_Reorder(t *testing.T) {
	store := memory.New()
	h := NewProjectsHandler(store, zap.NewNop())

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, store.CreateProject(context.Background(), &domain.Project{Title: title}))
	}

	rec := httptest.NewRecorder()
	h.Reorder(rec, jsonRequest(http.MethodPost, "/api/projects/reorder", map[string]any{
		"projects": []map[string]any{{"title": "c"}, {"title": "a"}, {"title": "b"}},
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	projects, err := store.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "c", projects[0].Title)
	assert.Equal(t, "a", projects[1].Title)
	assert.Equal(t, "b", projects[2].Title)
}

// --- Partners ---

func TestPartnersHandler_CreateAssignsID(t *testing.T) {
	h := NewPartnersHandler(memory.New(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPost, "/api/partners", map[string]any{
		"partner": map[string]any{"name": "Studio One"},
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	partner := body["partner"].(map[string]any)
	assert.Equal(t, "1", partner["id"])
	assert.Equal(t, "Studio One", partner["name"])
}

func TestPartnersHandler_NotFound(t *testing.T) {
	h := NewPartnersHandler(memory.New(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPut, "/api/partners", map[string]any{
		"partner": map[string]any{"name": "ghost"},
		"id":      "42",
	}))
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Partner not found", body["error"])
}

// --- Services ---

func TestServicesHandler_WritesReturnFullList(t *testing.T) {
	h := NewServicesHandler(memory.New(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPost, "/api/services", map[string]any{
		"service": map[string]any{"title": "TVC", "features": []string{"north", "south"}},
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	services := decodeBody(t, rec)["services"].([]any)
	require.Len(t, services, 1)
	created := services[0].(map[string]any)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "TVC", created["title"])

	// Update an unknown id yields 404
	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPut, "/api/services", map[string]any{
		"service": map[string]any{"title": "x"},
		"id":      "0",
	}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Delete returns the remaining list
	rec = httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodDelete, "/api/services", map[string]any{
		"id": created["id"],
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["services"])
}

// --- Hero / Contact ---

func TestHeroHandler_PutRequiresHeroField(t *testing.T) {
	h := NewHeroHandler(memory.New(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPut, "/api/hero", map[string]any{"other": 1}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, rec)["error"])
}

func TestHeroHandler_RoundTrip(t *testing.T) {
	h := NewHeroHandler(memory.New(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPut, "/api/hero", map[string]any{
		"hero": map[string]any{
			"photo":       "/images/hero.jpg",
			"description": "voice artist",
			"title":       map[string]any{"line1": "Giong noi", "line2": "chuyen nghiep"},
		},
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hero data updated successfully", decodeBody(t, rec)["message"])

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/hero", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	hero := decodeBody(t, rec)["hero"].(map[string]any)
	assert.Equal(t, "voice artist", hero["description"])
}

func TestContactHandler_NotFoundOnEmptyStore(t *testing.T) {
	h := NewContactHandler(memory.New(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No contact info found", decodeBody(t, rec)["error"])
}

func TestContactHandler_RoundTrip(t *testing.T) {
	h := NewContactHandler(memory.New(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPut, "/api/contact", map[string]any{
		"contact": map[string]any{
			"social": map[string]any{
				"email": map[string]any{"name": "Email", "url": "mailto:voice@example.com"},
			},
		},
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	contact := decodeBody(t, rec)["contact"].(map[string]any)
	social := contact["social"].(map[string]any)
	email := social["email"].(map[string]any)
	assert.Equal(t, "mailto:voice@example.com", email["url"])
}

// --- Messages ---

func newTestMessagesHandler() *MessagesHandler {
	mailer := service.NewMailer(config.SMTP{}, service.DefaultMailerConfig(), zap.NewNop())
	return NewMessagesHandler(memory.New(), mailer, zap.NewNop())
}

func TestMessagesHandler_CreateValidatesFields(t *testing.T) {
	h := newTestMessagesHandler()

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPost, "/api/contact-messages", map[string]any{
		"name":  "Anh",
		"email": "anh@example.com",
		// message and to missing
	}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, rec)["error"])
}

func TestMessagesHandler_CreateListToggleDelete(t *testing.T) {
	h := newTestMessagesHandler()

	rec := httptest.NewRecorder()
	h.Handle(rec, jsonRequest(http.MethodPost, "/api/contact-messages", map[string]any{
		"name":    "Anh",
		"email":   "anh@example.com",
		"message": "Xin chao",
		"to":      "studio@example.com",
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody(t, rec)["message"].(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, false, created["isRead"])

	// List
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/contact-messages", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	messages := decodeBody(t, rec)["messages"].([]any)
	require.Len(t, messages, 1)

	// Toggle read
	rec = httptest.NewRecorder()
	h.HandleByID(rec, jsonRequest(http.MethodPatch, "/api/contact-messages/"+id, map[string]any{"isRead": true}))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["message"].(map[string]any)["isRead"])

	// Non-boolean isRead
	rec = httptest.NewRecorder()
	h.HandleByID(rec, jsonRequest(http.MethodPatch, "/api/contact-messages/"+id, map[string]any{"isRead": "yes"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Delete
	rec = httptest.NewRecorder()
	h.HandleByID(rec, httptest.NewRequest(http.MethodDelete, "/api/contact-messages/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	// Unknown id
	rec = httptest.NewRecorder()
	h.HandleByID(rec, httptest.NewRequest(http.MethodDelete, "/api/contact-messages/"+id, nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Message not found", decodeBody(t, rec)["error"])
}

// --- Analytics ---

func TestAnalyticsHandler_RecordAndSummary(t *testing.T) {
	store := memory.New()
	svc := service.NewAnalyticsService(store, nil, zap.NewNop(), 30)
	h := NewAnalyticsHandler(svc, zap.NewNop())

	record := func(ip, session string) map[string]any {
		req := jsonRequest(http.MethodPost, "/api/analytics", map[string]any{
			"page":      "/portfolio",
			"userAgent": "test-agent",
		})
		req.Header.Set("X-Forwarded-For", ip)
		req.AddCookie(&http.Cookie{Name: "visitor_session", Value: session})
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return decodeBody(t, rec)
	}

	assert.Equal(t, true, record("1.1.1.1", "X")["counted"])
	assert.Equal(t, true, record("1.1.1.1", "Y")["counted"])
	assert.Equal(t, true, record("2.2.2.2", "X")["counted"])

	body := record("1.1.1.1", "Y")
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["counted"])

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	summary := decodeBody(t, rec)
	assert.Equal(t, float64(3), summary["totalVisits"])
	assert.Equal(t, float64(2), summary["totalUniqueIPs"])
	assert.Equal(t, float64(2), summary["totalUniqueSessions"])

	today := summary["today"].(map[string]any)
	assert.Equal(t, float64(3), today["visits"])
	assert.Equal(t, float64(2), today["uniqueIPVisits"])
	assert.Equal(t, float64(2), today["uniqueSessionVisits"])

	dailyStats := summary["dailyStats"].([]any)
	require.Len(t, dailyStats, 1)
}

func TestAnalyticsHandler_EmptyBody(t *testing.T) {
	store := memory.New()
	svc := service.NewAnalyticsService(store, nil, zap.NewNop(), 30)
	h := NewAnalyticsHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(""))
	req.Header.Set("X-Forwarded-For", "1.1.1.1")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["counted"])

	visits, err := store.ListVisits(context.Background())
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "/", visits[0].Page)
	assert.Equal(t, "unknown", visits[0].SessionID)
}

func TestAnalyticsHandler_Devices(t *testing.T) {
	store := memory.New()
	svc := service.NewAnalyticsService(store, nil, zap.NewNop(), 30)
	h := NewAnalyticsHandler(svc, zap.NewNop())

	for i, ua := range []string{
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
	} {
		require.NoError(t, store.AppendVisit(context.Background(), &domain.Visit{
			UserAgent: ua,
			IP:        fmt.Sprintf("10.0.0.%d", i),
			SessionID: fmt.Sprintf("s%d", i),
		}))
	}

	rec := httptest.NewRecorder()
	h.Devices(rec, httptest.NewRequest(http.MethodGet, "/api/analytics/devices", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	devices := decodeBody(t, rec)["devices"].(map[string]any)
	assert.Equal(t, float64(1), devices["mobile"])
	assert.Equal(t, float64(1), devices["desktop"])
}
