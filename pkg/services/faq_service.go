package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/faqitem"
)

// CreateFAQInput describes a new FAQ entry.
type CreateFAQInput struct {
	Question string
	Keywords []string
	Answer   string
}

// UpdateFAQInput carries FAQ changes. Nil fields are left unchanged.
type UpdateFAQInput struct {
	Question *string
	Keywords []string
	Answer   *string
	IsActive *bool
}

// FAQService manages FAQ entries. Matching against inbound messages lives
// in the faq matcher package; this service is the admin CRUD surface plus
// the usage counter.
type FAQService struct {
	client *ent.Client
}

// NewFAQService creates a new FAQService.
func NewFAQService(client *ent.Client) *FAQService {
	if client == nil {
		panic("NewFAQService: client must not be nil")
	}
	return &FAQService{client: client}
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Create adds a new active FAQ entry.
func (s *FAQService) Create(ctx context.Context, input CreateFAQInput) (*ent.FAQItem, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, NewValidationError("question", "required")
	}
	if strings.TrimSpace(input.Answer) == "" {
		return nil, NewValidationError("answer", "required")
	}
	keywords := normalizeKeywords(input.Keywords)
	if len(keywords) == 0 {
		return nil, NewValidationError("keywords", "at least one keyword is required")
	}

	item, err := s.client.FAQItem.Create().
		SetID(uuid.New().String()).
		SetQuestion(strings.TrimSpace(input.Question)).
		SetKeywords(keywords).
		SetAnswer(input.Answer).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create FAQ entry: %w", err)
	}
	return item, nil
}

// Get returns an FAQ entry by id.
func (s *FAQService) Get(ctx context.Context, id string) (*ent.FAQItem, error) {
	item, err := s.client.FAQItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get FAQ entry %s: %w", id, err)
	}
	return item, nil
}

// List returns FAQ entries, most used first. With activeOnly, disabled
// entries are excluded.
func (s *FAQService) List(ctx context.Context, activeOnly bool) ([]*ent.FAQItem, error) {
	query := s.client.FAQItem.Query()
	if activeOnly {
		query.Where(faqitem.IsActiveEQ(true))
	}
	return query.
		Order(ent.Desc(faqitem.FieldUsageCount), ent.Asc(faqitem.FieldCreatedAt)).
		All(ctx)
}

// Update applies the non-nil fields of input.
func (s *FAQService) Update(ctx context.Context, id string, input UpdateFAQInput) (*ent.FAQItem, error) {
	update := s.client.FAQItem.UpdateOneID(id)
	if input.Question != nil {
		if strings.TrimSpace(*input.Question) == "" {
			return nil, NewValidationError("question", "must not be empty")
		}
		update.SetQuestion(strings.TrimSpace(*input.Question))
	}
	if input.Keywords != nil {
		keywords := normalizeKeywords(input.Keywords)
		if len(keywords) == 0 {
			return nil, NewValidationError("keywords", "at least one keyword is required")
		}
		update.SetKeywords(keywords)
	}
	if input.Answer != nil {
		if strings.TrimSpace(*input.Answer) == "" {
			return nil, NewValidationError("answer", "must not be empty")
		}
		update.SetAnswer(*input.Answer)
	}
	if input.IsActive != nil {
		update.SetIsActive(*input.IsActive)
	}

	item, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update FAQ entry %s: %w", id, err)
	}
	return item, nil
}

// Delete removes an FAQ entry. Deleting a missing entry is a no-op.
func (s *FAQService) Delete(ctx context.Context, id string) error {
	err := s.client.FAQItem.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete FAQ entry %s: %w", id, err)
	}
	return nil
}

// RecordUsage bumps the usage counter after an answer was sent. Delivery
// already happened, so failures here are the caller's to log, not retry.
func (s *FAQService) RecordUsage(ctx context.Context, id string) error {
	err := s.client.FAQItem.UpdateOneID(id).
		AddUsageCount(1).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record FAQ usage for %s: %w", id, err)
	}
	return nil
}
