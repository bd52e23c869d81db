// Package visitor assigns each browser a session cookie and resolves the
// client IP, making both available to handlers through request context.
package visitor

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ContextKey тип для ключей контекста
type ContextKey string

const (
	// IPKey ключ для получения IP посетителя из контекста
	IPKey ContextKey = "visitor_ip"
	// SessionKey ключ для получения session ID посетителя из контекста
	SessionKey ContextKey = "visitor_session"
)

const (
	// SessionCookieName имя cookie, связывающей запросы одного браузера
	SessionCookieName = "visitor_session"
	// SessionTTL время жизни cookie посетителя
	SessionTTL = 24 * time.Hour

	// UnknownIP sentinel-значение, когда IP определить не удалось
	UnknownIP = "unknown"
)

// Middleware visitor identity middleware для публичных страниц
type Middleware struct {
	log    *zap.Logger
	secure bool
}

// NewMiddleware создает новый visitor middleware
func NewMiddleware(log *zap.Logger, secure bool) *Middleware {
	return &Middleware{log: log, secure: secure}
}

// Identify читает или создает session cookie, определяет IP клиента и
// прокидывает оба значения через контекст запроса. Любая ошибка
// деградирует до sentinel-значений и никогда не блокирует запрос.
func (m *Middleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := SessionFromRequest(r)
		if sessionID == "" {
			sessionID = newSessionID()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(SessionTTL.Seconds()),
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
			m.log.Debug("assigned new visitor session", zap.String("session_id", sessionID))
		}

		ip := ClientIP(r)

		// Заголовки дублируют контекст для видимости на клиенте
		w.Header().Set("x-visitor-ip", ip)
		w.Header().Set("x-visitor-session", sessionID)

		ctx := context.WithValue(r.Context(), IPKey, ip)
		ctx = context.WithValue(ctx, SessionKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromRequest возвращает session ID из cookie запроса, либо ""
func SessionFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// ClientIP извлекает IP адрес из запроса с учетом прокси-заголовков
func ClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		// X-Forwarded-For может содержать список IP через запятую
		ips := strings.Split(ip, ",")
		if v := strings.TrimSpace(ips[0]); v != "" {
			return v
		}
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Client-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return UnknownIP
	}
	return host
}

// IPFromContext извлекает IP посетителя из контекста
func IPFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(IPKey).(string)
	return ip, ok
}

// SessionFromContext извлекает session ID посетителя из контекста
func SessionFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionKey).(string)
	return sessionID, ok
}

// newSessionID собирает токен из случайных байт и компоненты времени.
// При сбое генератора случайных чисел остается timestamp-часть токена.
func newSessionID() string {
	buf := make([]byte, 8)
	random := ""
	if _, err := rand.Read(buf); err == nil {
		random = hex.EncodeToString(buf)
	}
	return random + strconv.FormatInt(time.Now().UnixNano(), 36)
}
