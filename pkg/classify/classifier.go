package classify

import (
	"context"
	"log/slog"

	"github.com/teambuh/slamon/pkg/metrics"
)

// AIBackend is the model layer of the classifier. Satisfied by
// *AIClassifier; tests substitute a stub.
type AIBackend interface {
	Classify(ctx context.Context, text string) (*Result, error)
}

// Classifier is the full three-layer classification pipeline:
// cache, then AI (behind its breaker), then keyword fallback.
// Classify never returns an error; degraded layers lower confidence
// instead of blocking ingestion.
type Classifier struct {
	cache     *Cache
	ai        AIBackend
	keyword   *KeywordClassifier
	threshold float64
}

// NewClassifier wires the pipeline. cache and ai may be nil, which
// disables the corresponding layer (useful in tests and when no API key
// is configured).
func NewClassifier(cache *Cache, ai AIBackend, threshold float64) *Classifier {
	return &Classifier{
		cache:     cache,
		ai:        ai,
		keyword:   NewKeywordClassifier(),
		threshold: threshold,
	}
}

// Classify returns a verdict for text.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, text)
		if err != nil {
			slog.Warn("Classification cache lookup failed", "error", err)
		} else if cached != nil {
			metrics.ClassificationsTotal.WithLabelValues(cached.Category, SourceCache).Inc()
			return *cached
		}
	}

	if c.ai != nil {
		verdict, err := c.ai.Classify(ctx, text)
		switch {
		case err != nil:
			slog.Warn("AI classification unavailable, falling back to keywords", "error", err)
		case verdict.Confidence < c.threshold:
			slog.Info("AI verdict below confidence threshold, falling back to keywords",
				"category", verdict.Category,
				"confidence", verdict.Confidence,
				"threshold", c.threshold)
		default:
			c.store(ctx, text, *verdict)
			metrics.ClassificationsTotal.WithLabelValues(verdict.Category, SourceAI).Inc()
			return *verdict
		}
	}

	verdict := c.keyword.Classify(text)
	// Keyword verdicts are cached too: a flapping model should not cause
	// repeated low-value calls for the same text.
	c.store(ctx, text, *verdict)
	metrics.ClassificationsTotal.WithLabelValues(verdict.Category, SourceKeyword).Inc()
	return *verdict
}

func (c *Classifier) store(ctx context.Context, text string, verdict Result) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Put(ctx, text, verdict); err != nil {
		slog.Warn("Failed to store classification cache entry", "error", err)
	}
}
