package classify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/teambuh/slamon/test/database"
)

func TestCache_PutGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	cache := NewCache(client.Client, time.Hour)
	ctx := context.Background()

	miss, err := cache.Get(ctx, "Когда будет готов отчет?")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, cache.Put(ctx, "Когда будет готов отчет?", Result{
		Category:   CategoryRequest,
		Confidence: 0.9,
		Source:     SourceAI,
	}))

	hit, err := cache.Get(ctx, "Когда будет готов отчет?")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, CategoryRequest, hit.Category)
	assert.InDelta(t, 0.9, hit.Confidence, 0.001)
	// Cache hits report the cache layer as source regardless of origin.
	assert.Equal(t, SourceCache, hit.Source)
}

func TestCache_NormalizationHitsAcrossFormatting(t *testing.T) {
	client := testdb.NewTestClient(t)
	cache := NewCache(client.Client, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "Сколько стоит выписка?", Result{
		Category:   CategoryRequest,
		Confidence: 0.85,
		Source:     SourceAI,
	}))

	hit, err := cache.Get(ctx, "  сколько   стоит ВЫПИСКА?  ")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, CategoryRequest, hit.Category)
}

func TestCache_ExpiredEntriesMissAndPurge(t *testing.T) {
	client := testdb.NewTestClient(t)
	cache := NewCache(client.Client, -time.Minute) // already expired on write
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "старый вопрос", Result{
		Category:   CategoryClarification,
		Confidence: 0.3,
		Source:     SourceKeyword,
	}))

	hit, err := cache.Get(ctx, "старый вопрос")
	require.NoError(t, err)
	assert.Nil(t, hit)

	purged, err := cache.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)
}

func TestCache_PutRefreshesExistingEntry(t *testing.T) {
	client := testdb.NewTestClient(t)
	cache := NewCache(client.Client, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "вопрос", Result{
		Category: CategoryClarification, Confidence: 0.3, Source: SourceKeyword,
	}))
	require.NoError(t, cache.Put(ctx, "вопрос", Result{
		Category: CategoryRequest, Confidence: 0.95, Source: SourceAI,
	}))

	hit, err := cache.Get(ctx, "вопрос")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, CategoryRequest, hit.Category)
	assert.InDelta(t, 0.95, hit.Confidence, 0.001)
}
