package classify

import "strings"

// KeywordClassifier is the last-resort fallback used when the model is
// unavailable or not confident. It looks for Russian markers typical of an
// accounting firm's client chats. Verdicts carry low confidence; anything
// unrecognized defaults to CLARIFICATION so no real question is dropped as
// spam by a heuristic.
type KeywordClassifier struct{}

// NewKeywordClassifier creates the fallback classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

var gratitudeMarkers = []string{
	"спасибо", "благодар", "спс", "мерси", "thank",
	"отлично, спасибо", "все получилось",
}

var spamMarkers = []string{
	"подпишись", "подписывайтесь", "реклама", "скидка", "промокод",
	"казино", "ставки", "заработок", "крипта", "инвестиции в",
	"перейди по ссылке", "жми сюда",
}

var requestMarkers = []string{
	"как ", "когда ", "почему ", "сколько ", "какой ", "какие ",
	"можно ли", "нужно ли", "подскажите", "помогите", "срочно",
	"счет", "счёт", "оплат", "налог", "отчет", "отчёт", "декларац",
	"зарплат", "ндс", "усн", "сотрудник", "договор", "акт ", "накладн",
	"выписк", "справк", "банк", "платеж", "платёж",
}

// Classify applies the keyword heuristics to text.
func (k *KeywordClassifier) Classify(text string) *Result {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, marker := range spamMarkers {
		if strings.Contains(lower, marker) {
			return &Result{Category: CategorySpam, Confidence: 0.5, Source: SourceKeyword}
		}
	}

	for _, marker := range gratitudeMarkers {
		if strings.Contains(lower, marker) {
			return &Result{Category: CategoryGratitude, Confidence: 0.5, Source: SourceKeyword}
		}
	}

	if strings.Contains(lower, "?") {
		return &Result{Category: CategoryRequest, Confidence: 0.6, Source: SourceKeyword}
	}
	for _, marker := range requestMarkers {
		if strings.Contains(lower, marker) {
			return &Result{Category: CategoryRequest, Confidence: 0.5, Source: SourceKeyword}
		}
	}

	// Unrecognized text is treated as a follow-up, not spam.
	return &Result{Category: CategoryClarification, Confidence: 0.3, Source: SourceKeyword}
}
