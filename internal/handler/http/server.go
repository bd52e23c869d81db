package http

import (
	"VoiceTalent-Backend/internal/auth"
	"VoiceTalent-Backend/internal/media"
	"VoiceTalent-Backend/internal/repository"
	"VoiceTalent-Backend/internal/service"
	"VoiceTalent-Backend/internal/visitor"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Server HTTP сервер с обработчиками
type Server struct {
	authHandlers      *auth.AuthHandlers
	analyticsHandler  *AnalyticsHandler
	projectsHandler   *ProjectsHandler
	partnersHandler   *PartnersHandler
	servicesHandler   *ServicesHandler
	heroHandler       *HeroHandler
	contactHandler    *ContactHandler
	messagesHandler   *MessagesHandler
	mediaHandler      *MediaHandler
	healthHandler     *HealthHandler
	authMiddleware    *auth.Middleware
	visitorMiddleware *visitor.Middleware
	publicDir         string
	adminDir          string
	log               *zap.Logger
}

// NewServer создает новый HTTP сервер
func NewServer(
	storage repository.Storage,
	analyticsService *service.AnalyticsService,
	mailer *service.Mailer,
	mediaManager *media.Manager,
	authHandlers *auth.AuthHandlers,
	authMiddleware *auth.Middleware,
	visitorMiddleware *visitor.Middleware,
	publicDir string,
	adminDir string,
	log *zap.Logger,
) *Server {
	return &Server{
		authHandlers:      authHandlers,
		analyticsHandler:  NewAnalyticsHandler(analyticsService, log),
		projectsHandler:   NewProjectsHandler(storage, log),
		partnersHandler:   NewPartnersHandler(storage, log),
		servicesHandler:   NewServicesHandler(storage, log),
		heroHandler:       NewHeroHandler(storage, log),
		contactHandler:    NewContactHandler(storage, log),
		messagesHandler:   NewMessagesHandler(storage, mailer, log),
		mediaHandler:      NewMediaHandler(mediaManager, log),
		healthHandler:     NewHealthHandler(storage, log),
		authMiddleware:    authMiddleware,
		visitorMiddleware: visitorMiddleware,
		publicDir:         publicDir,
		adminDir:          adminDir,
		log:               log,
	}
}

// SetupRoutes настраивает маршруты
func (s *Server) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Health checks (без аутентификации)
	mux.HandleFunc("/health", s.healthHandler.Health)
	mux.HandleFunc("/ready", s.healthHandler.Ready)

	// Swagger документация
	mux.Handle("/api/v1/", httpSwagger.WrapHandler)

	// Auth endpoint: POST логин, DELETE логаут
	mux.HandleFunc("/api/auth/login", s.withCORS(s.authHandlers.HandleLogin))

	// Аналитика: посетитель идентифицируется cookie и заголовками
	mux.Handle("/api/analytics", s.withVisitor(s.withCORS(s.analyticsHandler.Handle)))
	mux.HandleFunc("/api/analytics/devices", s.withCORS(s.analyticsHandler.Devices))

	// Контент сайта
	mux.HandleFunc("/api/projects", s.withCORS(s.projectsHandler.Handle))
	mux.HandleFunc("/api/projects/reorder", s.withCORS(s.projectsHandler.Reorder))
	mux.HandleFunc("/api/partners", s.withCORS(s.partnersHandler.Handle))
	mux.HandleFunc("/api/partners/reorder", s.withCORS(s.partnersHandler.Reorder))
	mux.HandleFunc("/api/services", s.withCORS(s.servicesHandler.Handle))
	mux.HandleFunc("/api/services/reorder", s.withCORS(s.servicesHandler.Reorder))
	mux.HandleFunc("/api/hero", s.withCORS(s.heroHandler.Handle))
	mux.HandleFunc("/api/contact", s.withCORS(s.contactHandler.Handle))

	// Сообщения формы обратной связи
	mux.HandleFunc("/api/contact-messages", s.withCORS(s.messagesHandler.Handle))
	mux.HandleFunc("/api/contact-messages/", s.withCORS(s.messagesHandler.HandleByID))

	// Файловый менеджер
	mux.HandleFunc("/api/media", s.withCORS(s.mediaHandler.Handle))
	mux.HandleFunc("/api/logos", s.withCORS(s.mediaHandler.Logos))

	// Админка: статика за auth-гейтом
	adminFiles := http.StripPrefix("/admin/", http.FileServer(http.Dir(s.adminDir)))
	mux.Handle("/admin/", s.authMiddleware.Gate(adminFiles))

	// Публичный сайт (должен быть последним)
	publicFiles := http.FileServer(http.Dir(s.publicDir))
	mux.Handle("/", s.visitorMiddleware.Identify(publicFiles))

	return mux
}

// withCORS добавляет CORS headers к обработчику
func (s *Server) withCORS(handler http.HandlerFunc) http.HandlerFunc {
	return s.authMiddleware.CORS(handler)
}

// withVisitor оборачивает обработчик идентификацией посетителя
func (s *Server) withVisitor(handler http.HandlerFunc) http.Handler {
	return s.visitorMiddleware.Identify(handler)
}
