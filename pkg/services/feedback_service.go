package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/feedbackresponse"
	"github.com/teambuh/slamon/pkg/metrics"
)

// SubmitFeedbackInput describes one survey answer.
type SubmitFeedbackInput struct {
	ChatID  int64
	Rating  int
	Comment string
}

// FeedbackService stores survey answers and decides whether a rating is
// low enough to alert the chat's managers.
type FeedbackService struct {
	client *ent.Client
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(client *ent.Client) *FeedbackService {
	if client == nil {
		panic("NewFeedbackService: client must not be nil")
	}
	return &FeedbackService{client: client}
}

// Submit stores a survey answer and reports whether it is at or below the
// low-rating threshold.
func (s *FeedbackService) Submit(ctx context.Context, input SubmitFeedbackInput, lowRatingThreshold int) (*ent.FeedbackResponse, bool, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, false, NewValidationError("rating", "must be between 1 and 5")
	}

	create := s.client.FeedbackResponse.Create().
		SetID(uuid.New().String()).
		SetChatID(input.ChatID).
		SetRating(input.Rating)
	if input.Comment != "" {
		create.SetComment(input.Comment)
	}
	feedback, err := create.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to store feedback for chat %d: %w", input.ChatID, err)
	}

	metrics.FeedbackRatings.Observe(float64(input.Rating))
	return feedback, input.Rating <= lowRatingThreshold, nil
}

// Get returns a feedback response by id.
func (s *FeedbackService) Get(ctx context.Context, id string) (*ent.FeedbackResponse, error) {
	feedback, err := s.client.FeedbackResponse.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feedback %s: %w", id, err)
	}
	return feedback, nil
}

// ListByChat returns the chat's feedback, newest first.
func (s *FeedbackService) ListByChat(ctx context.Context, chatID int64, limit int) ([]*ent.FeedbackResponse, error) {
	query := s.client.FeedbackResponse.Query().
		Where(feedbackresponse.ChatIDEQ(chatID)).
		Order(ent.Desc(feedbackresponse.FieldSubmittedAt))
	if limit > 0 {
		query.Limit(limit)
	}
	return query.All(ctx)
}

// AverageRating returns the chat's mean rating, or 0 when no feedback
// exists yet.
func (s *FeedbackService) AverageRating(ctx context.Context, chatID int64) (float64, error) {
	ratings, err := s.client.FeedbackResponse.Query().
		Where(feedbackresponse.ChatIDEQ(chatID)).
		Select(feedbackresponse.FieldRating).
		Ints(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load ratings for chat %d: %w", chatID, err)
	}
	if len(ratings) == 0 {
		return 0, nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings)), nil
}
