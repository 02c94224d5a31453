package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chatmessage"
)

// RecordMessageInput describes a processed inbound message.
type RecordMessageInput struct {
	ChatID         int64
	MessageID      int64
	SenderID       int64
	SenderUsername string
	Text           string
	FromAccountant bool
	FAQHandled     bool
	RequestID      string // empty when the message opened no request
}

// MessageService records every processed inbound message for audit and
// retention. Writes happen inside the ingestion transaction, so the
// create helper takes a *ent.Tx.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	if client == nil {
		panic("NewMessageService: client must not be nil")
	}
	return &MessageService{client: client}
}

// RecordTx inserts a message row inside the caller's transaction.
func RecordTx(ctx context.Context, tx *ent.Tx, input RecordMessageInput) (*ent.ChatMessage, error) {
	create := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetChatID(input.ChatID).
		SetMessageID(input.MessageID).
		SetSenderID(input.SenderID).
		SetSenderUsername(input.SenderUsername).
		SetText(input.Text).
		SetFromAccountant(input.FromAccountant).
		SetFaqHandled(input.FAQHandled)
	if input.RequestID != "" {
		create.SetRequestID(input.RequestID)
	}
	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record message %d in chat %d: %w", input.MessageID, input.ChatID, err)
	}
	return msg, nil
}

// Record inserts a message row outside any transaction.
func (s *MessageService) Record(ctx context.Context, input RecordMessageInput) (*ent.ChatMessage, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	msg, err := RecordTx(ctx, tx, input)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message record: %w", err)
	}
	return msg, nil
}

// ListByChat returns the chat's messages, newest first.
func (s *MessageService) ListByChat(ctx context.Context, chatID int64, limit int) ([]*ent.ChatMessage, error) {
	query := s.client.ChatMessage.Query().
		Where(chatmessage.ChatIDEQ(chatID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt))
	if limit > 0 {
		query.Limit(limit)
	}
	return query.All(ctx)
}
