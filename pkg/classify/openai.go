package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/teambuh/slamon/pkg/config"
)

// LLM parameters for classification.
const (
	classifyMaxTokens   = 60
	classifyTemperature = 0.0
	classifyMaxTextLen  = 2000
)

const classifySystemPrompt = `Ты классифицируешь сообщения клиентов бухгалтерской фирмы.
Категории:
REQUEST - вопрос или задача, требующая ответа бухгалтера
SPAM - реклама, ссылки, нерелевантный контент
GRATITUDE - благодарность, не требующая ответа
CLARIFICATION - уточнение или продолжение предыдущего вопроса
Ответь строго в JSON: {"category": "...", "confidence": 0.0-1.0}`

// AIClassifier calls an OpenAI-compatible chat model through a circuit
// breaker. When the breaker is open, calls fail fast and the caller falls
// back to the keyword classifier.
type AIClassifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
}

// NewAIClassifier creates an AI classifier from config. apiKey is resolved
// by the caller (it comes from the environment, not from YAML).
func NewAIClassifier(cfg *config.ClassifierConfig, apiKey string) *AIClassifier {
	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	failures := uint32(cfg.BreakerFailures)
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "classifier",
		MaxRequests: 2,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Classifier circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &AIClassifier{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		breaker: breaker,
	}
}

// Classify returns the model's verdict for text. Errors include breaker
// rejections (gobreaker.ErrOpenState) and transport failures.
func (a *AIClassifier) Classify(ctx context.Context, text string) (*Result, error) {
	if len(text) > classifyMaxTextLen {
		text = text[:classifyMaxTextLen] + "..."
	}

	verdict, err := a.breaker.Execute(func() (any, error) {
		return a.callModel(ctx, text)
	})
	if err != nil {
		return nil, err
	}

	return verdict.(*Result), nil
}

func (a *AIClassifier) callModel(ctx context.Context, text string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       a.model,
		MaxTokens:   classifyMaxTokens,
		Temperature: classifyTemperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: classifySystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(ctx, req)
	latency := time.Since(start)

	if err != nil {
		slog.Error("Classification request failed",
			"model", a.model,
			"latency_ms", latency.Milliseconds(),
			"error", err)
		return nil, fmt.Errorf("classification request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	var parsed struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	if !ValidCategory(parsed.Category) {
		return nil, fmt.Errorf("model returned unknown category %q", parsed.Category)
	}
	if parsed.Confidence < 0 || parsed.Confidence > 1 {
		return nil, fmt.Errorf("model returned confidence %v out of range", parsed.Confidence)
	}

	slog.Debug("Message classified by model",
		"category", parsed.Category,
		"confidence", parsed.Confidence,
		"latency_ms", latency.Milliseconds())

	return &Result{
		Category:   parsed.Category,
		Confidence: parsed.Confidence,
		Source:     SourceAI,
	}, nil
}
