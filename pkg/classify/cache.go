package classify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/classificationcache"
)

// Cache memoizes classification results in the classification_caches table.
// Identical normalized text within the TTL is classified once.
type Cache struct {
	client *ent.Client
	ttl    time.Duration
}

// NewCache creates a classification cache with the given TTL.
func NewCache(client *ent.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// HashText returns the cache key for a message: SHA-256 of the text
// lowercased with whitespace collapsed, so trivial formatting differences
// still hit.
func HashText(text string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached verdict for text, or (nil, nil) on miss or expiry.
func (c *Cache) Get(ctx context.Context, text string) (*Result, error) {
	row, err := c.client.ClassificationCache.Query().
		Where(
			classificationcache.IDEQ(HashText(text)),
			classificationcache.ExpiresAtGT(time.Now()),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query classification cache: %w", err)
	}

	return &Result{
		Category:   string(row.Classification),
		Confidence: row.Confidence,
		Source:     SourceCache,
	}, nil
}

// Put stores a verdict. An existing entry is refreshed; concurrent writers
// are resolved by the upsert.
func (c *Cache) Put(ctx context.Context, text string, result Result) error {
	err := c.client.ClassificationCache.Create().
		SetID(HashText(text)).
		SetClassification(classificationcache.Classification(result.Category)).
		SetConfidence(result.Confidence).
		SetSource(result.Source).
		SetExpiresAt(time.Now().Add(c.ttl)).
		OnConflictColumns(classificationcache.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store classification cache entry: %w", err)
	}
	return nil
}

// PurgeExpired removes expired cache rows. Called by the cleanup loop.
func (c *Cache) PurgeExpired(ctx context.Context) (int, error) {
	n, err := c.client.ClassificationCache.Delete().
		Where(classificationcache.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge classification cache: %w", err)
	}
	return n, nil
}
