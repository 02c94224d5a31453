package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier(t *testing.T) {
	k := NewKeywordClassifier()

	tests := []struct {
		name     string
		text     string
		category string
	}{
		{"gratitude", "Спасибо большое, все получилось!", CategoryGratitude},
		{"gratitude short", "спс", CategoryGratitude},
		{"spam link bait", "Жми сюда и получи промокод на скидку", CategorySpam},
		{"spam casino", "Лучшее казино рунета", CategorySpam},
		{"question mark", "Когда будет готова декларация?", CategoryRequest},
		{"request marker", "Подскажите по оплате счета", CategoryRequest},
		{"tax request", "нужно ли платить ндс в этом квартале", CategoryRequest},
		{"unrecognized", "ок, понял", CategoryClarification},
		{"empty", "", CategoryClarification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := k.Classify(tt.text)
			assert.Equal(t, tt.category, verdict.Category)
			assert.Equal(t, SourceKeyword, verdict.Source)
			assert.LessOrEqual(t, verdict.Confidence, 0.6)
		})
	}
}

func TestKeywordClassifier_SpamBeatsQuestion(t *testing.T) {
	k := NewKeywordClassifier()
	// Spam markers win even when the text contains a question mark.
	verdict := k.Classify("Хочешь заработок на крипте?")
	assert.Equal(t, CategorySpam, verdict.Category)
}
