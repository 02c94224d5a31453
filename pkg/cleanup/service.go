// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chatmessage"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/pkg/classify"
	"github.com/teambuh/slamon/pkg/config"
	"github.com/teambuh/slamon/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes answered/closed requests past the retention window
//   - Purges raw chat messages past their retention window
//   - Purges expired classification cache rows
//   - Expires stale pending invitations
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config      *config.RetentionConfig
	client      *ent.Client
	cache       *classify.Cache
	invitations *services.InvitationService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. cache may be nil when the
// classification cache is disabled.
func NewService(
	cfg *config.RetentionConfig,
	client *ent.Client,
	cache *classify.Cache,
	invitations *services.InvitationService,
) *Service {
	return &Service{
		config:      cfg,
		client:      client,
		cache:       cache,
		invitations: invitations,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"request_retention_days", s.config.RequestRetentionDays,
		"message_retention_days", s.config.MessageRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one full cleanup pass.
func (s *Service) RunAll(ctx context.Context) {
	s.softDeleteOldRequests(ctx)
	s.purgeOldMessages(ctx)
	s.purgeClassificationCache(ctx)
	s.expireInvitations(ctx)
}

// softDeleteOldRequests hides terminal requests past retention from the
// read paths. Rows stay for audit until a manual purge.
func (s *Service) softDeleteOldRequests(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RequestRetentionDays)
	count, err := s.client.ClientRequest.Update().
		Where(
			clientrequest.StatusIn(clientrequest.StatusAnswered, clientrequest.StatusClosed),
			clientrequest.ReceivedAtLT(cutoff),
			clientrequest.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		slog.Error("Retention: soft-delete requests failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old requests", "count", count)
	}
}

func (s *Service) purgeOldMessages(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.MessageRetentionDays)
	count, err := s.client.ChatMessage.Delete().
		Where(chatmessage.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: message purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old chat messages", "count", count)
	}
}

func (s *Service) purgeClassificationCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	count, err := s.cache.PurgeExpired(ctx)
	if err != nil {
		slog.Error("Retention: classification cache purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired classification cache rows", "count", count)
	}
}

func (s *Service) expireInvitations(ctx context.Context) {
	count, err := s.invitations.ExpirePending(ctx)
	if err != nil {
		slog.Error("Retention: invitation expiry failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired stale invitations", "count", count)
	}
}
