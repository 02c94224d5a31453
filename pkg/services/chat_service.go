package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/chatinvitation"
	"github.com/teambuh/slamon/ent/chatmessage"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/feedbackresponse"
)

const maxTitleLen = 255

// UpsertChatInput describes a chat observed in an inbound event.
type UpsertChatInput struct {
	ID       int64
	Title    string
	ChatType string
}

// UpdateChatInput carries per-chat configuration changes. Nil fields are
// left unchanged.
type UpdateChatInput struct {
	SLAEnabled           *bool
	SLAThresholdMinutes  *int  // 0 clears the override
	MonitoringEnabled    *bool
	Is24x7               *bool
	ManagerIDs           []string
	AccountantIDs        []string
	NotifyInChatOnBreach *bool
	ClientTier           *string
	InviteURL            *string
}

// ChatService manages monitored chats: registration, configuration,
// bot removal, and supergroup migration.
type ChatService struct {
	client *ent.Client
}

// NewChatService creates a new ChatService.
func NewChatService(client *ent.Client) *ChatService {
	if client == nil {
		panic("NewChatService: client must not be nil")
	}
	return &ChatService{client: client}
}

// SanitizeTitle removes Unicode control/format code points, trims, and
// caps the title at 255 characters.
func SanitizeTitle(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) || unicode.Is(unicode.Co, r) || unicode.Is(unicode.Cs, r) {
			return -1
		}
		return r
	}, title)
	cleaned = strings.TrimSpace(cleaned)
	if runes := []rune(cleaned); len(runes) > maxTitleLen {
		cleaned = string(runes[:maxTitleLen])
	}
	return cleaned
}

// Upsert registers a chat or refreshes its title/type. Existing
// configuration (thresholds, rosters, flags) is never touched here.
func (s *ChatService) Upsert(ctx context.Context, input UpsertChatInput) (*ent.Chat, error) {
	if input.ID == 0 {
		return nil, NewValidationError("id", "required")
	}

	chatType := chat.ChatTypeGroup
	switch input.ChatType {
	case "supergroup":
		chatType = chat.ChatTypeSupergroup
	case "private":
		chatType = chat.ChatTypePrivate
	}

	title := SanitizeTitle(input.Title)

	err := s.client.Chat.Create().
		SetID(input.ID).
		SetTitle(title).
		SetChatType(chatType).
		OnConflictColumns(chat.FieldID).
		UpdateTitle().
		UpdateChatType().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert chat %d: %w", input.ID, err)
	}

	return s.client.Chat.Get(ctx, input.ID)
}

// Get returns a chat by id.
func (s *ChatService) Get(ctx context.Context, id int64) (*ent.Chat, error) {
	c, err := s.client.Chat.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat %d: %w", id, err)
	}
	return c, nil
}

// List returns all chats that have not been soft-deleted.
func (s *ChatService) List(ctx context.Context) ([]*ent.Chat, error) {
	return s.client.Chat.Query().
		Where(chat.DeletedAtIsNil()).
		Order(ent.Asc(chat.FieldCreatedAt)).
		All(ctx)
}

// Update applies configuration changes to a chat.
func (s *ChatService) Update(ctx context.Context, id int64, input UpdateChatInput) (*ent.Chat, error) {
	if input.SLAThresholdMinutes != nil && *input.SLAThresholdMinutes != 0 &&
		(*input.SLAThresholdMinutes < 1 || *input.SLAThresholdMinutes > 1440) {
		return nil, NewValidationError("sla_threshold_minutes", "must be between 1 and 1440")
	}
	if input.ClientTier != nil && *input.ClientTier != string(chat.ClientTierStandard) && *input.ClientTier != string(chat.ClientTierPriority) {
		return nil, NewValidationError("client_tier", "must be standard or priority")
	}

	update := s.client.Chat.UpdateOneID(id)
	if input.SLAEnabled != nil {
		update.SetSLAEnabled(*input.SLAEnabled)
	}
	if input.SLAThresholdMinutes != nil {
		if *input.SLAThresholdMinutes == 0 {
			update.ClearSLAThresholdMinutes()
		} else {
			update.SetSLAThresholdMinutes(*input.SLAThresholdMinutes)
		}
	}
	if input.MonitoringEnabled != nil {
		update.SetMonitoringEnabled(*input.MonitoringEnabled)
	}
	if input.Is24x7 != nil {
		update.SetIs24x7(*input.Is24x7)
	}
	if input.ManagerIDs != nil {
		update.SetManagerIds(input.ManagerIDs)
	}
	if input.AccountantIDs != nil {
		update.SetAccountantIds(input.AccountantIDs)
	}
	if input.NotifyInChatOnBreach != nil {
		update.SetNotifyInChatOnBreach(*input.NotifyInChatOnBreach)
	}
	if input.ClientTier != nil {
		update.SetClientTier(chat.ClientTier(*input.ClientTier))
	}
	if input.InviteURL != nil {
		update.SetInviteURL(*input.InviteURL)
	}

	c, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update chat %d: %w", id, err)
	}
	return c, nil
}

// HandleBotRemoved switches off monitoring when the bot leaves a chat.
// The row is retained: history and reporting survive removal.
func (s *ChatService) HandleBotRemoved(ctx context.Context, id int64) error {
	err := s.client.Chat.UpdateOneID(id).
		SetMonitoringEnabled(false).
		SetSLAEnabled(false).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to disable chat %d: %w", id, err)
	}
	slog.Info("Bot removed from chat, monitoring disabled", "chat_id", id)
	return nil
}

// Migrate handles group -> supergroup migration: upserts the chat under
// the new id with the old configuration, repoints all children in the same
// transaction, and retires the old row with a [MIGRATED] title prefix.
func (s *ChatService) Migrate(ctx context.Context, oldID, newID int64) error {
	if oldID == 0 || newID == 0 || oldID == newID {
		return NewValidationError("chat_id", "invalid migration pair")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start migration transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	old, err := tx.Chat.Get(ctx, oldID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load chat %d: %w", oldID, err)
	}

	// Upsert the successor carrying over the old configuration.
	create := tx.Chat.Create().
		SetID(newID).
		SetTitle(old.Title).
		SetChatType(chat.ChatTypeSupergroup).
		SetSLAEnabled(old.SLAEnabled).
		SetMonitoringEnabled(old.MonitoringEnabled).
		SetIs24x7(old.Is24x7).
		SetManagerIds(old.ManagerIds).
		SetAccountantIds(old.AccountantIds).
		SetNotifyInChatOnBreach(old.NotifyInChatOnBreach).
		SetClientTier(old.ClientTier)
	if old.SLAThresholdMinutes != nil {
		create.SetSLAThresholdMinutes(*old.SLAThresholdMinutes)
	}
	if old.InviteURL != nil {
		create.SetInviteURL(*old.InviteURL)
	}
	err = create.
		OnConflictColumns(chat.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert migrated chat %d: %w", newID, err)
	}

	// Bulk repoint children.
	if _, err := tx.ClientRequest.Update().
		Where(clientrequest.ChatIDEQ(oldID)).
		SetChatID(newID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to repoint requests: %w", err)
	}
	if _, err := tx.ChatMessage.Update().
		Where(chatmessage.ChatIDEQ(oldID)).
		SetChatID(newID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to repoint messages: %w", err)
	}
	if _, err := tx.FeedbackResponse.Update().
		Where(feedbackresponse.ChatIDEQ(oldID)).
		SetChatID(newID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to repoint feedback: %w", err)
	}
	if _, err := tx.ChatInvitation.Update().
		Where(chatinvitation.ChatIDEQ(oldID)).
		SetChatID(newID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to repoint invitations: %w", err)
	}

	// Retire the old row.
	title := old.Title
	if !strings.HasPrefix(title, "[MIGRATED] ") {
		title = SanitizeTitle("[MIGRATED] " + title)
	}
	if err := tx.Chat.UpdateOneID(oldID).
		SetTitle(title).
		SetMonitoringEnabled(false).
		SetSLAEnabled(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to retire chat %d: %w", oldID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}

	slog.Info("Chat migrated to supergroup", "old_chat_id", oldID, "new_chat_id", newID)
	return nil
}

// IsAccountant reports whether the user id belongs to the chat's
// accountant roster.
func IsAccountant(c *ent.Chat, userID string) bool {
	for _, id := range c.AccountantIds {
		if id == userID {
			return true
		}
	}
	return false
}

// IsManager reports whether the user id belongs to the chat's manager
// roster.
func IsManager(c *ent.Chat, userID string) bool {
	for _, id := range c.ManagerIds {
		if id == userID {
			return true
		}
	}
	return false
}
