// Package api exposes the HTTP surface: health probes, the Telegram
// webhook intake, Prometheus metrics, and the admin endpoints for
// settings, chats, FAQ entries and invitations.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teambuh/slamon/pkg/config"
	"github.com/teambuh/slamon/pkg/database"
	"github.com/teambuh/slamon/pkg/faq"
	"github.com/teambuh/slamon/pkg/metrics"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/telegram"
	"github.com/teambuh/slamon/pkg/timer"
)

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	db          *database.Client
	cfg         *config.Config
	settings    *services.SettingsService
	chats       *services.ChatService
	requests    *services.RequestService
	faqs        *services.FAQService
	invitations *services.InvitationService
	matcher     *faq.Matcher
	handler     telegram.EventHandler
	sender      telegram.Sender
	pools       []*timer.Pool
	botToken    string
	botID       int64
	logger      *slog.Logger
}

// ServerDeps bundles the server's collaborators. Handler and Sender may
// be nil when the bot transport is not configured (admin-only mode).
type ServerDeps struct {
	DB          *database.Client
	Config      *config.Config
	Settings    *services.SettingsService
	Chats       *services.ChatService
	Requests    *services.RequestService
	FAQs        *services.FAQService
	Invitations *services.InvitationService
	Matcher     *faq.Matcher
	Handler     telegram.EventHandler
	Sender      telegram.Sender
	Pools       []*timer.Pool
	BotToken    string
	BotID       int64
}

// NewServer creates the API server.
func NewServer(deps ServerDeps) *Server {
	if deps.DB == nil || deps.Config == nil || deps.Settings == nil || deps.Chats == nil {
		panic("NewServer: missing required dependency")
	}
	return &Server{
		db:          deps.DB,
		cfg:         deps.Config,
		settings:    deps.Settings,
		chats:       deps.Chats,
		requests:    deps.Requests,
		faqs:        deps.FAQs,
		invitations: deps.Invitations,
		matcher:     deps.Matcher,
		handler:     deps.Handler,
		sender:      deps.Sender,
		pools:       deps.Pools,
		botToken:    deps.BotToken,
		botID:       deps.BotID,
		logger:      slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readyHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if s.handler != nil && s.botToken != "" {
		router.POST("/webhook/telegram/:token", s.webhookHandler)
	}

	v1 := router.Group("/api/v1")
	v1.GET("/system/health", s.systemHealthHandler)

	admin := v1.Group("", adminRateLimit(s.cfg.System))
	{
		admin.GET("/settings", s.getSettingsHandler)
		admin.PUT("/settings", s.updateSettingsHandler)

		admin.GET("/chats", s.listChatsHandler)
		admin.GET("/chats/:id", s.getChatHandler)
		admin.PATCH("/chats/:id", s.updateChatHandler)
		admin.GET("/chats/:id/requests", s.listChatRequestsHandler)

		admin.GET("/faq", s.listFAQHandler)
		admin.POST("/faq", s.createFAQHandler)
		admin.PUT("/faq/:id", s.updateFAQHandler)
		admin.DELETE("/faq/:id", s.deleteFAQHandler)

		admin.POST("/chats/:id/invitations", s.createInvitationHandler)
		admin.GET("/chats/:id/invitations", s.listInvitationsHandler)
		admin.POST("/invitations/:token/redeem", s.redeemInvitationHandler)
		admin.POST("/invitations/:token/revoke", s.revokeInvitationHandler)
	}

	return router
}

// HTTPServer wraps the router in an http.Server bound to the configured
// address, ready for graceful shutdown by the caller.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:    s.cfg.System.ListenAddr,
		Handler: s.Router(),
	}
}
