// slamon server — ingests client chat messages, tracks response SLAs,
// and escalates overdue requests to accountants and managers.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/api"
	"github.com/teambuh/slamon/pkg/classify"
	"github.com/teambuh/slamon/pkg/cleanup"
	"github.com/teambuh/slamon/pkg/config"
	"github.com/teambuh/slamon/pkg/database"
	"github.com/teambuh/slamon/pkg/delivery"
	"github.com/teambuh/slamon/pkg/faq"
	"github.com/teambuh/slamon/pkg/ingest"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/sla"
	"github.com/teambuh/slamon/pkg/telegram"
	"github.com/teambuh/slamon/pkg/timer"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	podID := resolvePodID()
	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Jobs this pod left running before a restart go back to scheduled.
	if err := timer.RepairStartupClaims(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to repair startup claims", "error", err)
		// Non-fatal; the periodic stale-claim repair catches leftovers.
	}

	botToken := os.Getenv(cfg.Telegram.TokenEnv)
	if botToken == "" {
		slog.Error("Bot token is not set", "env", cfg.Telegram.TokenEnv)
		os.Exit(1)
	}
	bot, err := telegram.NewBotClient(botToken, cfg.Telegram.MessagesPerSecond)
	if err != nil {
		slog.Error("Failed to initialize bot client", "error", err)
		os.Exit(1)
	}
	slog.Info("Bot client initialized", "username", bot.BotUsername())

	// Domain services.
	chats := services.NewChatService(dbClient.Client)
	requests := services.NewRequestService(dbClient.Client)
	messages := services.NewMessageService(dbClient.Client)
	alerts := services.NewAlertService(dbClient.Client)
	faqs := services.NewFAQService(dbClient.Client)
	feedback := services.NewFeedbackService(dbClient.Client)
	settings := services.NewSettingsService(dbClient.Client)
	invitations := services.NewInvitationService(dbClient.Client)

	// Classification stack: cache, then the model, then keywords.
	classifyCache := classify.NewCache(dbClient.Client, cfg.Classifier.CacheTTL)
	var aiBackend classify.AIBackend
	if apiKey := os.Getenv(cfg.Classifier.APIKeyEnv); apiKey != "" {
		aiBackend = classify.NewAIClassifier(cfg.Classifier, apiKey)
	} else {
		slog.Warn("Classifier API key is not set, using keyword fallback only",
			"env", cfg.Classifier.APIKeyEnv)
	}
	classifier := classify.NewClassifier(classifyCache, aiBackend, cfg.Classifier.ConfidenceThreshold)

	matcher := faq.NewMatcher(dbClient.Client, faq.DefaultCacheTTL)
	store := timer.NewStore(dbClient.Client)
	resolver := sla.NewResolver(dbClient.Client, store, requests, settings)
	deliverySvc := delivery.NewService(dbClient.Client, bot, alerts, *cfg.Delivery)
	engine := sla.NewEngine(dbClient.Client, store, settings, deliverySvc)
	reconciler := sla.NewReconciler(dbClient.Client, store, engine, settings, podID)

	pipeline := ingest.NewPipeline(ingest.Deps{
		Client:     dbClient.Client,
		Store:      store,
		Chats:      chats,
		Requests:   requests,
		Messages:   messages,
		FAQs:       faqs,
		Feedback:   feedback,
		Settings:   settings,
		Matcher:    matcher,
		Classifier: classifier,
		Resolver:   resolver,
		Delivery:   deliverySvc,
		Sender:     bot,
	})

	// Worker pools per job group. The stored setting overrides the
	// configured worker count so concurrency can be tuned without a deploy.
	concurrency := cfg.Workers.WorkerCount
	if s, err := settings.Get(ctx); err == nil && s.SLAConcurrency > 0 {
		concurrency = s.SLAConcurrency
	}

	slaTimers := timer.NewPool("sla-timers", podID, store, cfg.Workers,
		[]timerjob.JobType{timerjob.JobTypeWarning, timerjob.JobTypeBreach},
		timer.HandlerFunc(func(ctx context.Context, job *ent.TimerJob) error {
			if job.JobType == timerjob.JobTypeWarning {
				return engine.HandleWarning(ctx, job)
			}
			return engine.HandleBreach(ctx, job)
		}), concurrency)
	escalations := timer.NewPool("escalations", podID, store, cfg.Workers,
		[]timerjob.JobType{timerjob.JobTypeEscalation},
		timer.HandlerFunc(engine.HandleEscalation), concurrency)
	alertDelivery := timer.NewPool("alert-delivery", podID, store, cfg.Workers,
		[]timerjob.JobType{timerjob.JobTypeDelivery},
		timer.HandlerFunc(deliverySvc.HandleDelivery), concurrency)
	surveys := timer.NewPool("surveys", podID, store, cfg.Workers,
		[]timerjob.JobType{timerjob.JobTypeSurvey},
		timer.HandlerFunc(deliverySvc.HandleSurvey), 2)

	pools := []*timer.Pool{slaTimers, escalations, alertDelivery, surveys}
	for _, pool := range pools {
		if err := pool.Start(ctx); err != nil {
			slog.Error("Failed to start worker pool", "error", err)
			os.Exit(1)
		}
	}

	reconcileCtx, stopReconcile := context.WithCancel(ctx)
	go reconciler.Run(reconcileCtx)

	cleanupSvc := cleanup.NewService(cfg.Retention, dbClient.Client, classifyCache, invitations)
	cleanupSvc.Start(ctx)

	// Intake: webhook when a public base URL is configured, long polling
	// otherwise.
	listenerCtx, stopListener := context.WithCancel(ctx)
	if cfg.Telegram.WebhookBaseURL == "" {
		go telegram.NewListener(bot, pipeline).Run(listenerCtx)
	} else {
		slog.Info("Webhook mode enabled", "base_url", cfg.Telegram.WebhookBaseURL)
	}

	server := api.NewServer(api.ServerDeps{
		DB:          dbClient,
		Config:      cfg,
		Settings:    settings,
		Chats:       chats,
		Requests:    requests,
		FAQs:        faqs,
		Invitations: invitations,
		Matcher:     matcher,
		Handler:     pipeline,
		Sender:      bot,
		Pools:       pools,
		BotToken:    botToken,
		BotID:       bot.BotID(),
	})
	httpServer := server.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("slamon started", "pod_id", podID, "workers", concurrency)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop intake first so no new obligations arrive, then drain workers.
	stopListener()
	stopReconcile()
	cleanupSvc.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Workers.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for _, pool := range pools {
			pool.Stop()
		}
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pools stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — claimed jobs will be repaired on restart")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
