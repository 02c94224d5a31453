package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/teambuh/slamon/test/database"
)

func TestFeedbackService_SubmitLowRating(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedbackService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -500100)

	_, low, err := svc.Submit(ctx, SubmitFeedbackInput{ChatID: -500100, Rating: 2, Comment: "долго ждали ответа"}, 3)
	require.NoError(t, err)
	assert.True(t, low)

	_, low, err = svc.Submit(ctx, SubmitFeedbackInput{ChatID: -500100, Rating: 5}, 3)
	require.NoError(t, err)
	assert.False(t, low)

	_, _, err = svc.Submit(ctx, SubmitFeedbackInput{ChatID: -500100, Rating: 6}, 3)
	assert.True(t, IsValidationError(err))
}

func TestFeedbackService_AverageRating(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedbackService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -500101)

	avg, err := svc.AverageRating(ctx, -500101)
	require.NoError(t, err)
	assert.Zero(t, avg)

	for _, r := range []int{2, 4} {
		_, _, err := svc.Submit(ctx, SubmitFeedbackInput{ChatID: -500101, Rating: r}, 3)
		require.NoError(t, err)
	}

	avg, err = svc.AverageRating(ctx, -500101)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 0.001)
}
