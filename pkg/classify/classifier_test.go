package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubAI returns a fixed verdict or error.
type stubAI struct {
	verdict *Result
	err     error
	calls   int
}

func (s *stubAI) Classify(_ context.Context, _ string) (*Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.verdict, nil
}

func TestClassifier_ConfidentAIVerdictWins(t *testing.T) {
	ai := &stubAI{verdict: &Result{Category: CategoryRequest, Confidence: 0.92, Source: SourceAI}}
	c := NewClassifier(nil, ai, 0.7)

	verdict := c.Classify(context.Background(), "Когда сдавать отчет?")
	assert.Equal(t, CategoryRequest, verdict.Category)
	assert.Equal(t, SourceAI, verdict.Source)
	assert.Equal(t, 1, ai.calls)
}

func TestClassifier_LowConfidenceFallsBackToKeywords(t *testing.T) {
	ai := &stubAI{verdict: &Result{Category: CategorySpam, Confidence: 0.4, Source: SourceAI}}
	c := NewClassifier(nil, ai, 0.7)

	verdict := c.Classify(context.Background(), "Подскажите по налогам")
	assert.Equal(t, SourceKeyword, verdict.Source)
	assert.Equal(t, CategoryRequest, verdict.Category)
}

func TestClassifier_AIErrorFallsBackToKeywords(t *testing.T) {
	ai := &stubAI{err: errors.New("connection refused")}
	c := NewClassifier(nil, ai, 0.7)

	verdict := c.Classify(context.Background(), "Спасибо!")
	assert.Equal(t, SourceKeyword, verdict.Source)
	assert.Equal(t, CategoryGratitude, verdict.Category)
}

func TestClassifier_NoAIUsesKeywordsDirectly(t *testing.T) {
	c := NewClassifier(nil, nil, 0.7)

	verdict := c.Classify(context.Background(), "ладно")
	assert.Equal(t, CategoryClarification, verdict.Category)
	assert.Equal(t, SourceKeyword, verdict.Source)
}
