package auth

import (
	"VoiceTalent-Backend/internal/config"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// CookieName имя cookie админской сессии
const CookieName = "admin_token"

// AuthHandlers обработчики входа и выхода из админки
type AuthHandlers struct {
	admin     config.Admin
	tokens    *TokenService
	passwords *PasswordService
	log       *zap.Logger
	secure    bool
	maxAge    int
}

// NewAuthHandlers создает новые обработчики аутентификации
func NewAuthHandlers(admin config.Admin, tokens *TokenService, passwords *PasswordService, log *zap.Logger, secure bool, maxAge int) *AuthHandlers {
	return &AuthHandlers{
		admin:     admin,
		tokens:    tokens,
		passwords: passwords,
		log:       log,
		secure:    secure,
		maxAge:    maxAge,
	}
}

// LoginRequest структура запроса входа
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ErrorResponse структура ошибки
type ErrorResponse struct {
	Message string `json:"message"`
}

// HandleLogin обрабатывает /api/auth/login: POST — вход, DELETE — выход
func (h *AuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.login(w, r)
	case http.MethodDelete:
		h.logout(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// login проверяет учетные данные и выставляет admin_token cookie
//
//	@Summary		Admin login
//	@Description	Validate admin credentials and set an HTTP-only session cookie
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest		true	"Login request"
//	@Success		200		{object}	map[string]bool		"Login successful"
//	@Failure		401		{object}	ErrorResponse		"Invalid credentials"
//	@Router			/api/auth/login [post]
func (h *AuthHandlers) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid login request", zap.Error(err))
		h.writeError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// Проверяем имя пользователя и пароль
	if req.Username != h.admin.Username {
		h.log.Debug("unknown admin username", zap.String("username", req.Username))
		h.writeError(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	if err := h.passwords.VerifyCredential(h.admin.PasswordHash, h.admin.Password, req.Password); err != nil {
		h.log.Debug("invalid admin password", zap.String("username", req.Username))
		h.writeError(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.Generate(req.Username)
	if err != nil {
		h.log.Error("failed to generate admin token", zap.Error(err))
		h.writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.log.Info("admin logged in", zap.String("username", req.Username))
	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// logout сбрасывает admin_token cookie
//
//	@Summary		Admin logout
//	@Description	Clear the admin session cookie
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	{object}	map[string]bool	"Logged out"
//	@Router			/api/auth/login [delete]
func (h *AuthHandlers) logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// Helper methods

func (h *AuthHandlers) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *AuthHandlers) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}
