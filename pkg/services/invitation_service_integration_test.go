package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/teambuh/slamon/test/database"
)

func TestInvitationService_RedeemLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvitationService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -400100)
	inv, err := svc.Create(ctx, -400100, time.Hour)
	require.NoError(t, err)

	result, err := svc.Redeem(ctx, inv.ID, 555)
	require.NoError(t, err)
	assert.Equal(t, RedemptionOk, result.Outcome)
	require.NotNil(t, result.Invitation)
	require.NotNil(t, result.Invitation.UsedBy)
	assert.Equal(t, int64(555), *result.Invitation.UsedBy)

	// Single use: a second attempt reports the token as spent.
	result, err = svc.Redeem(ctx, inv.ID, 556)
	require.NoError(t, err)
	assert.Equal(t, RedemptionAlreadyUsed, result.Outcome)
}

func TestInvitationService_RedeemExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvitationService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -400101)
	inv, err := svc.Create(ctx, -400101, time.Millisecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	result, err := svc.Redeem(ctx, inv.ID, 555)
	require.NoError(t, err)
	assert.Equal(t, RedemptionExpired, result.Outcome)
}

func TestInvitationService_RedeemMalformedToken(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvitationService(client.Client)
	ctx := context.Background()

	for _, token := range []string{"", "short", "has spaces in it", "emoji🙂token12345", "unknown-but-well-formed-token"} {
		result, err := svc.Redeem(ctx, token, 555)
		require.NoError(t, err)
		assert.Equal(t, RedemptionInvalid, result.Outcome, "token %q", token)
	}
}

func TestInvitationService_Revoke(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvitationService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -400102)
	inv, err := svc.Create(ctx, -400102, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, inv.ID))

	result, err := svc.Redeem(ctx, inv.ID, 555)
	require.NoError(t, err)
	assert.Equal(t, RedemptionInvalid, result.Outcome)

	assert.ErrorIs(t, svc.Revoke(ctx, inv.ID), ErrTerminalState)
	assert.ErrorIs(t, svc.Revoke(ctx, "no-such-token-123"), ErrNotFound)
}

func TestInvitationService_ExpirePending(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvitationService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -400103)
	_, err := svc.Create(ctx, -400103, time.Millisecond)
	require.NoError(t, err)
	_, err = svc.Create(ctx, -400103, time.Hour)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	n, err := svc.ExpirePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
