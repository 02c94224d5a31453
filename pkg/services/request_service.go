package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/clientrequest"
)

// terminalStatuses are request states that no timer or reply may move a
// request out of.
var terminalStatuses = map[clientrequest.Status]bool{
	clientrequest.StatusAnswered: true,
	clientrequest.StatusClosed:   true,
}

// IsTerminalStatus reports whether the status admits no further transitions.
func IsTerminalStatus(status clientrequest.Status) bool {
	return terminalStatuses[status]
}

// RequestService provides queries and state transitions for client
// requests. Request creation happens inside the ingestion transaction
// together with timer scheduling, so it is not exposed here.
type RequestService struct {
	client *ent.Client
}

// NewRequestService creates a new RequestService.
func NewRequestService(client *ent.Client) *RequestService {
	if client == nil {
		panic("NewRequestService: client must not be nil")
	}
	return &RequestService{client: client}
}

// Get returns a request by id.
func (s *RequestService) Get(ctx context.Context, id string) (*ent.ClientRequest, error) {
	req, err := s.client.ClientRequest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request %s: %w", id, err)
	}
	return req, nil
}

// ListByChat returns the chat's live requests, newest first, optionally
// filtered by status.
func (s *RequestService) ListByChat(ctx context.Context, chatID int64, statuses ...clientrequest.Status) ([]*ent.ClientRequest, error) {
	query := s.client.ClientRequest.Query().
		Where(
			clientrequest.ChatIDEQ(chatID),
			clientrequest.DeletedAtIsNil(),
		)
	if len(statuses) > 0 {
		query.Where(clientrequest.StatusIn(statuses...))
	}
	return query.Order(ent.Desc(clientrequest.FieldReceivedAt)).All(ctx)
}

// OldestOpen returns the oldest open request in the chat (pending,
// in_progress, or escalated), or ErrNotFound when none is open. This is
// the request an accountant reply resolves when the reply does not target
// a specific message.
func (s *RequestService) OldestOpen(ctx context.Context, chatID int64) (*ent.ClientRequest, error) {
	req, err := s.client.ClientRequest.Query().
		Where(
			clientrequest.ChatIDEQ(chatID),
			clientrequest.StatusIn(
				clientrequest.StatusPending,
				clientrequest.StatusInProgress,
				clientrequest.StatusEscalated,
			),
			clientrequest.DeletedAtIsNil(),
		).
		Order(ent.Asc(clientrequest.FieldReceivedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open request in chat %d: %w", chatID, err)
	}
	return req, nil
}

// FindByMessage returns the live request opened by the given chat
// message, or ErrNotFound.
func (s *RequestService) FindByMessage(ctx context.Context, chatID, messageID int64) (*ent.ClientRequest, error) {
	req, err := s.client.ClientRequest.Query().
		Where(
			clientrequest.ChatIDEQ(chatID),
			clientrequest.MessageIDEQ(messageID),
			clientrequest.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request for message %d in chat %d: %w", messageID, chatID, err)
	}
	return req, nil
}

// UpdateStatus moves a request to the given status. Terminal states
// (answered, closed) are never left: ErrTerminalState is returned instead.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, status clientrequest.Status) (*ent.ClientRequest, error) {
	req, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if IsTerminalStatus(req.Status) {
		return nil, ErrTerminalState
	}
	updated, err := s.client.ClientRequest.UpdateOneID(id).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update request %s status: %w", id, err)
	}
	return updated, nil
}

// MarkBreached sets sla_breached. The flag is monotonic: the conditional
// update makes repeat calls no-ops.
func (s *RequestService) MarkBreached(ctx context.Context, id string) error {
	_, err := s.client.ClientRequest.Update().
		Where(
			clientrequest.IDEQ(id),
			clientrequest.SLABreachedEQ(false),
		).
		SetSLABreached(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark request %s breached: %w", id, err)
	}
	return nil
}

// OpenOlderThan returns open requests received before the cutoff. The
// reconciliation sweep uses this to find requests whose timers went
// missing or that should be auto-expired.
func (s *RequestService) OpenOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*ent.ClientRequest, error) {
	return s.client.ClientRequest.Query().
		Where(
			clientrequest.StatusIn(
				clientrequest.StatusPending,
				clientrequest.StatusInProgress,
				clientrequest.StatusEscalated,
			),
			clientrequest.ReceivedAtLT(cutoff),
			clientrequest.DeletedAtIsNil(),
		).
		Order(ent.Asc(clientrequest.FieldReceivedAt)).
		Limit(limit).
		All(ctx)
}

// CountOpen returns the number of open requests across all chats.
func (s *RequestService) CountOpen(ctx context.Context) (int, error) {
	return s.client.ClientRequest.Query().
		Where(
			clientrequest.StatusIn(
				clientrequest.StatusPending,
				clientrequest.StatusInProgress,
				clientrequest.StatusEscalated,
			),
			clientrequest.DeletedAtIsNil(),
		).
		Count(ctx)
}
