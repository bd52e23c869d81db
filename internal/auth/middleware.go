package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin/dashboard"
)

// Middleware защищает страницы админки по admin_token cookie
type Middleware struct {
	tokens *TokenService
	log    *zap.Logger
}

// NewMiddleware создает новый auth middleware
func NewMiddleware(tokens *TokenService, log *zap.Logger) *Middleware {
	return &Middleware{
		tokens: tokens,
		log:    log,
	}
}

// isLoggedIn проверяет наличие валидного admin_token cookie
func (m *Middleware) isLoggedIn(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	if _, err := m.tokens.Validate(cookie.Value); err != nil {
		m.log.Debug("invalid admin token", zap.Error(err))
		return false
	}
	return true
}

// Gate edge middleware для /admin/*: без валидной сессии редирект на
// страницу входа; залогиненный пользователь на странице входа
// перенаправляется на дашборд
func (m *Middleware) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loggedIn := m.isLoggedIn(r)
		isLoginPage := r.URL.Path == loginPath || r.URL.Path == loginPath+"/"

		if !loggedIn && !isLoginPage {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		if loggedIn && isLoginPage {
			http.Redirect(w, r, dashboardPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth middleware для API-обработчиков админки: без валидной
// сессии отвечает 401 вместо редиректа
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.isLoggedIn(r) {
			http.Error(w, "Authorization required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// CORS middleware для обработки CORS запросов
func (m *Middleware) CORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Список разрешенных origins для разработки
		allowedOrigins := []string{
			"http://localhost:3000", // React dev server
			"http://127.0.0.1:3000",
			"http://localhost:8080", // Production build
			"http://127.0.0.1:8080",
		}

		// Проверяем origin
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Обработка preflight OPTIONS запросов
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// IsAdminPath проверяет, относится ли путь к админке
func IsAdminPath(path string) bool {
	return strings.HasPrefix(path, "/admin")
}
