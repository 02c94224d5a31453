package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"regexp"
	"time"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chatinvitation"
)

// tokenPattern is the accepted token alphabet and length. Tokens arriving
// over the wire are validated before any lookup.
var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// RedemptionOutcome is the tagged result of a redemption attempt.
type RedemptionOutcome string

const (
	RedemptionOk          RedemptionOutcome = "ok"
	RedemptionInvalid     RedemptionOutcome = "invalid"
	RedemptionExpired     RedemptionOutcome = "expired"
	RedemptionAlreadyUsed RedemptionOutcome = "already_used"
)

// RedemptionResult reports the outcome of a redemption attempt. Invitation
// is set only when the outcome is RedemptionOk.
type RedemptionResult struct {
	Outcome    RedemptionOutcome
	Invitation *ent.ChatInvitation
}

// InvitationService manages single-use onboarding tokens. Redemption is
// atomic: the pending -> used transition is a conditional update, so
// concurrent redemptions of the same token cannot both succeed.
type InvitationService struct {
	client *ent.Client
}

// NewInvitationService creates a new InvitationService.
func NewInvitationService(client *ent.Client) *InvitationService {
	if client == nil {
		panic("NewInvitationService: client must not be nil")
	}
	return &InvitationService{client: client}
}

func newToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Create issues a new pending invitation for the chat.
func (s *InvitationService) Create(ctx context.Context, chatID int64, ttl time.Duration) (*ent.ChatInvitation, error) {
	if ttl <= 0 {
		return nil, NewValidationError("ttl", "must be positive")
	}
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	inv, err := s.client.ChatInvitation.Create().
		SetID(token).
		SetChatID(chatID).
		SetExpiresAt(time.Now().Add(ttl)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation for chat %d: %w", chatID, err)
	}
	return inv, nil
}

// Redeem attempts to consume the token for the given user. Malformed and
// unknown tokens are indistinguishable to the caller.
func (s *InvitationService) Redeem(ctx context.Context, token string, userID int64) (RedemptionResult, error) {
	if !tokenPattern.MatchString(token) {
		return RedemptionResult{Outcome: RedemptionInvalid}, nil
	}

	now := time.Now()
	n, err := s.client.ChatInvitation.Update().
		Where(
			chatinvitation.IDEQ(token),
			chatinvitation.StatusEQ(chatinvitation.StatusPending),
			chatinvitation.ExpiresAtGT(now),
		).
		SetStatus(chatinvitation.StatusUsed).
		SetUsedBy(userID).
		SetUsedAt(now).
		Save(ctx)
	if err != nil {
		return RedemptionResult{}, fmt.Errorf("failed to redeem invitation: %w", err)
	}
	if n == 1 {
		inv, getErr := s.client.ChatInvitation.Get(ctx, token)
		if getErr != nil {
			return RedemptionResult{}, fmt.Errorf("failed to load redeemed invitation: %w", getErr)
		}
		return RedemptionResult{Outcome: RedemptionOk, Invitation: inv}, nil
	}

	// Nothing updated: classify why.
	inv, err := s.client.ChatInvitation.Get(ctx, token)
	if err != nil {
		if ent.IsNotFound(err) {
			return RedemptionResult{Outcome: RedemptionInvalid}, nil
		}
		return RedemptionResult{}, fmt.Errorf("failed to inspect invitation: %w", err)
	}
	switch {
	case inv.Status == chatinvitation.StatusUsed:
		return RedemptionResult{Outcome: RedemptionAlreadyUsed}, nil
	case inv.Status == chatinvitation.StatusRevoked:
		return RedemptionResult{Outcome: RedemptionInvalid}, nil
	case inv.Status == chatinvitation.StatusExpired || !inv.ExpiresAt.After(now):
		return RedemptionResult{Outcome: RedemptionExpired}, nil
	default:
		return RedemptionResult{Outcome: RedemptionInvalid}, nil
	}
}

// Revoke cancels a pending invitation. Revoking a used or already-revoked
// token returns ErrTerminalState.
func (s *InvitationService) Revoke(ctx context.Context, token string) error {
	n, err := s.client.ChatInvitation.Update().
		Where(
			chatinvitation.IDEQ(token),
			chatinvitation.StatusEQ(chatinvitation.StatusPending),
		).
		SetStatus(chatinvitation.StatusRevoked).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke invitation: %w", err)
	}
	if n == 0 {
		_, getErr := s.client.ChatInvitation.Get(ctx, token)
		if getErr != nil {
			if ent.IsNotFound(getErr) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to inspect invitation: %w", getErr)
		}
		return ErrTerminalState
	}
	return nil
}

// ListByChat returns the chat's invitations, newest first.
func (s *InvitationService) ListByChat(ctx context.Context, chatID int64) ([]*ent.ChatInvitation, error) {
	return s.client.ChatInvitation.Query().
		Where(chatinvitation.ChatIDEQ(chatID)).
		Order(ent.Desc(chatinvitation.FieldCreatedAt)).
		All(ctx)
}

// ExpirePending marks overdue pending invitations expired. The retention
// loop calls this periodically; redemption does not depend on it because
// the conditional update checks expires_at itself.
func (s *InvitationService) ExpirePending(ctx context.Context) (int, error) {
	n, err := s.client.ChatInvitation.Update().
		Where(
			chatinvitation.StatusEQ(chatinvitation.StatusPending),
			chatinvitation.ExpiresAtLT(time.Now()),
		).
		SetStatus(chatinvitation.StatusExpired).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire invitations: %w", err)
	}
	return n, nil
}
