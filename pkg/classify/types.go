// Package classify decides whether an inbound client message opens an SLA
// obligation. Three layers: a database cache keyed by text hash, an
// OpenAI-compatible model behind a circuit breaker, and a keyword fallback
// that keeps ingestion working when the model is down.
package classify

// Message categories. REQUEST is the only category that arms SLA timers.
const (
	CategoryRequest       = "REQUEST"
	CategorySpam          = "SPAM"
	CategoryGratitude     = "GRATITUDE"
	CategoryClarification = "CLARIFICATION"
)

// Result sources, recorded for observability.
const (
	SourceCache   = "cache"
	SourceAI      = "ai"
	SourceKeyword = "keyword"
)

// Result is a classification verdict.
type Result struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// ValidCategory reports whether s is one of the known categories.
func ValidCategory(s string) bool {
	switch s {
	case CategoryRequest, CategorySpam, CategoryGratitude, CategoryClarification:
		return true
	}
	return false
}
