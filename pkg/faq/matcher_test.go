package faq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/teambuh/slamon/test/database"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"как", "оплатить", "счёт"}, Tokenize("Как оплатить счёт?"))
	assert.Equal(t, []string{"ндс", "2024"}, Tokenize("НДС - 2024!!!"))
	assert.Empty(t, Tokenize("...!?"))
}

func TestScore(t *testing.T) {
	tokens := Tokenize("как получить справку по ндс")

	// Keyword is a substring of a token and vice versa.
	assert.Equal(t, 2, Score(tokens, []string{"справк", "ндс"}))
	assert.Equal(t, 1, Score(tokens, []string{"справками"}))
	assert.Equal(t, 0, Score(tokens, []string{"зарплата"}))

	// A keyword matching several tokens counts once.
	assert.Equal(t, 1, Score(Tokenize("справка и справки"), []string{"справк"}))
}

func TestMatcher_BestMatchAndTiebreak(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	_, err := client.Client.FAQItem.Create().
		SetID("faq-low").
		SetQuestion("Как получить справку?").
		SetKeywords([]string{"справк"}).
		SetAnswer("Ответ про справку").
		SetUsageCount(1).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Client.FAQItem.Create().
		SetID("faq-high").
		SetQuestion("Справка по НДС").
		SetKeywords([]string{"справк"}).
		SetAnswer("Ответ про НДС").
		SetUsageCount(10).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Client.FAQItem.Create().
		SetID("faq-two").
		SetQuestion("Справка по НДС за квартал").
		SetKeywords([]string{"справк", "ндс"}).
		SetAnswer("Ответ про квартал").
		Save(ctx)
	require.NoError(t, err)

	matcher := NewMatcher(client.Client, time.Minute)

	// Two keyword hits beat one regardless of usage count.
	match, err := matcher.Match(ctx, "нужна справка по НДС")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "faq-two", match.Item.ID)
	assert.Equal(t, 2, match.Score)

	// Equal scores: higher usage count wins.
	match, err = matcher.Match(ctx, "пришлите справку")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "faq-high", match.Item.ID)

	match, err = matcher.Match(ctx, "когда зарплата")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestMatcher_IgnoresInactiveAndInvalidates(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	item, err := client.Client.FAQItem.Create().
		SetID("faq-off").
		SetQuestion("Оплата счёта").
		SetKeywords([]string{"оплат"}).
		SetAnswer("Реквизиты такие-то").
		Save(ctx)
	require.NoError(t, err)

	matcher := NewMatcher(client.Client, time.Hour)

	match, err := matcher.Match(ctx, "как оплатить счёт")
	require.NoError(t, err)
	require.NotNil(t, match)

	_, err = client.Client.FAQItem.UpdateOne(item).SetIsActive(false).Save(ctx)
	require.NoError(t, err)

	// Cached until invalidated.
	match, err = matcher.Match(ctx, "как оплатить счёт")
	require.NoError(t, err)
	assert.NotNil(t, match)

	matcher.Invalidate()
	match, err = matcher.Match(ctx, "как оплатить счёт")
	require.NoError(t, err)
	assert.Nil(t, match)
}
