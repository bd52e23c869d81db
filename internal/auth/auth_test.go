package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"VoiceTalent-Backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTokenService() *TokenService {
	return NewTokenService(&TokenConfig{
		SecretKey:  []byte("test-secret"),
		SessionTTL: time.Hour,
		Issuer:     "test",
	})
}

func TestTokenService_GenerateValidate(t *testing.T) {
	tokens := newTestTokenService()

	token, err := tokens.Generate("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestTokenService_RejectsTampered(t *testing.T) {
	tokens := newTestTokenService()

	token, err := tokens.Generate("admin")
	require.NoError(t, err)

	_, err = tokens.Validate(token + "x")
	assert.Error(t, err)

	other := NewTokenService(&TokenConfig{
		SecretKey:  []byte("different-secret"),
		SessionTTL: time.Hour,
		Issuer:     "test",
	})
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_Expiry(t *testing.T) {
	tokens := NewTokenService(&TokenConfig{
		SecretKey:  []byte("test-secret"),
		SessionTTL: -time.Minute,
		Issuer:     "test",
	})

	token, err := tokens.Generate("admin")
	require.NoError(t, err)

	_, err = tokens.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyCredential(t *testing.T) {
	passwords := NewPasswordService()

	hash, err := passwords.HashPassword("s3cret")
	require.NoError(t, err)

	// Hash takes priority over the plaintext setting
	assert.NoError(t, passwords.VerifyCredential(hash, "other", "s3cret"))
	assert.Error(t, passwords.VerifyCredential(hash, "other", "other"))

	// Plaintext comparison when no hash is configured
	assert.NoError(t, passwords.VerifyCredential("", "plain", "plain"))
	assert.Error(t, passwords.VerifyCredential("", "plain", "wrong"))

	// No credentials configured at all rejects everything
	assert.ErrorIs(t, passwords.VerifyCredential("", "", ""), ErrInvalidPassword)
}

func newTestHandlers() *AuthHandlers {
	admin := config.Admin{Username: "admin", Password: "letmein"}
	return NewAuthHandlers(admin, newTestTokenService(), NewPasswordService(), zap.NewNop(), false, 3600)
}

func loginRequest(username, password string) *http.Request {
	body, _ := json.Marshal(LoginRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleLogin_SetsCookie(t *testing.T) {
	h := newTestHandlers()

	rec := httptest.NewRecorder()
	h.HandleLogin(rec, loginRequest("admin", "letmein"))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)
}

func TestHandleLogin_RejectsBadCredentials(t *testing.T) {
	h := newTestHandlers()

	rec := httptest.NewRecorder()
	h.HandleLogin(rec, loginRequest("admin", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	rec = httptest.NewRecorder()
	h.HandleLogin(rec, loginRequest("someone", "letmein"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleLogin_LogoutClearsCookie(t *testing.T) {
	h := newTestHandlers()

	rec := httptest.NewRecorder()
	h.HandleLogin(rec, httptest.NewRequest(http.MethodDelete, "/api/auth/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestGate_Redirects(t *testing.T) {
	tokens := newTestTokenService()
	m := NewMiddleware(tokens, zap.NewNop())

	var served bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = true
		w.WriteHeader(http.StatusOK)
	})
	gate := m.Gate(next)

	// Anonymous on a protected page: redirected to login
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	assert.False(t, served)

	// Anonymous on the login page: allowed through
	rec = httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, served)

	token, err := tokens.Generate("admin")
	require.NoError(t, err)
	authed := func(target string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		return req
	}

	// Logged in on the login page: bounced to the dashboard
	rec = httptest.NewRecorder()
	gate.ServeHTTP(rec, authed("/admin/login"))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	// Logged in on a protected page: allowed through
	served = false
	rec = httptest.NewRecorder()
	gate.ServeHTTP(rec, authed("/admin/dashboard"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, served)
}

func TestGate_RejectsInvalidCookie(t *testing.T) {
	m := NewMiddleware(newTestTokenService(), zap.NewNop())
	gate := m.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestRequireAuth(t *testing.T) {
	tokens := newTestTokenService()
	m := NewMiddleware(tokens, zap.NewNop())

	handler := m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/media", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := tokens.Generate("admin")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/media", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
