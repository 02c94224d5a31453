// Package faq matches inbound messages against canned answers before any
// AI classification runs. A hit short-circuits the ingestion pipeline: the
// answer is sent and no request is opened.
package faq

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/faqitem"
)

// DefaultCacheTTL bounds staleness when an FAQ edit happens on another
// instance: local caches converge within this window.
const DefaultCacheTTL = 5 * time.Minute

// Match is a scored FAQ hit.
type Match struct {
	Item  *ent.FAQItem
	Score int
}

// Matcher scores messages against the active FAQ set. The set is cached
// in memory with a TTL and invalidated on local CRUD.
type Matcher struct {
	client *ent.Client
	ttl    time.Duration

	mu       sync.RWMutex
	items    []*ent.FAQItem
	loadedAt time.Time
}

// NewMatcher creates a Matcher. ttl <= 0 selects DefaultCacheTTL.
func NewMatcher(client *ent.Client, ttl time.Duration) *Matcher {
	if client == nil {
		panic("NewMatcher: client must not be nil")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Matcher{client: client, ttl: ttl}
}

// Tokenize lowercases the text, strips punctuation, and splits it into
// tokens.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Score counts the distinct keywords that substring-match any token in
// either direction.
func Score(tokens []string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		for _, token := range tokens {
			if strings.Contains(token, keyword) || strings.Contains(keyword, token) {
				score++
				break
			}
		}
	}
	return score
}

// Match returns the best-scoring FAQ entry for the text, or nil when no
// keyword matches. Ties go to the entry with the higher usage count.
func (m *Matcher) Match(ctx context.Context, text string) (*Match, error) {
	items, err := m.activeItems(ctx)
	if err != nil {
		return nil, err
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil, nil
	}

	var best *Match
	for _, item := range items {
		score := Score(tokens, item.Keywords)
		if score < 1 {
			continue
		}
		if best == nil ||
			score > best.Score ||
			(score == best.Score && item.UsageCount > best.Item.UsageCount) {
			best = &Match{Item: item, Score: score}
		}
	}
	return best, nil
}

// Invalidate drops the cached FAQ set. The admin CRUD surface calls this
// after every change.
func (m *Matcher) Invalidate() {
	m.mu.Lock()
	m.loadedAt = time.Time{}
	m.mu.Unlock()
}

func (m *Matcher) activeItems(ctx context.Context) ([]*ent.FAQItem, error) {
	m.mu.RLock()
	if time.Since(m.loadedAt) < m.ttl {
		items := m.items
		m.mu.RUnlock()
		return items, nil
	}
	m.mu.RUnlock()

	items, err := m.client.FAQItem.Query().
		Where(faqitem.IsActiveEQ(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load FAQ entries: %w", err)
	}

	m.mu.Lock()
	m.items = items
	m.loadedAt = time.Now()
	m.mu.Unlock()
	return items, nil
}
