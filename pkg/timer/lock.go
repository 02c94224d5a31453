package timer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/lease"
)

// LeaseLock is a named expiring lock stored in the leases table. It keeps
// periodic sweeps (reconciliation) single-flight across replicas without an
// external coordinator.
type LeaseLock struct {
	client *ent.Client
	name   string
	holder string
	ttl    time.Duration
}

// NewLeaseLock creates a lock handle. holder should identify the pod.
func NewLeaseLock(client *ent.Client, name, holder string, ttl time.Duration) *LeaseLock {
	return &LeaseLock{
		client: client,
		name:   name,
		holder: holder,
		ttl:    ttl,
	}
}

// TryAcquire attempts to take the lease. It returns true when this holder
// now owns the lease. A live lease held elsewhere returns false; an expired
// lease is stolen with a conditional update so two stealers cannot both win.
func (l *LeaseLock) TryAcquire(ctx context.Context) (bool, error) {
	now := time.Now()

	err := l.client.Lease.Create().
		SetID(l.name).
		SetHolder(l.holder).
		SetExpiresAt(now.Add(l.ttl)).
		SetAcquiredAt(now).
		Exec(ctx)
	if err == nil {
		return true, nil
	}
	if !ent.IsConstraintError(err) {
		return false, fmt.Errorf("failed to create lease %s: %w", l.name, err)
	}

	// Row exists. Steal only if expired; the WHERE clause makes the
	// takeover atomic.
	n, err := l.client.Lease.Update().
		Where(
			lease.IDEQ(l.name),
			lease.ExpiresAtLT(now),
		).
		SetHolder(l.holder).
		SetExpiresAt(now.Add(l.ttl)).
		SetAcquiredAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to steal lease %s: %w", l.name, err)
	}
	if n == 1 {
		slog.Info("Took over expired lease", "lease", l.name, "holder", l.holder)
		return true, nil
	}
	return false, nil
}

// Renew extends the lease while still held by this holder.
func (l *LeaseLock) Renew(ctx context.Context) error {
	now := time.Now()
	n, err := l.client.Lease.Update().
		Where(
			lease.IDEQ(l.name),
			lease.HolderEQ(l.holder),
		).
		SetExpiresAt(now.Add(l.ttl)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to renew lease %s: %w", l.name, err)
	}
	if n == 0 {
		return fmt.Errorf("lease %s no longer held by %s", l.name, l.holder)
	}
	return nil
}

// Release gives up the lease early by expiring it. Only the current holder
// can release; a lost lease is left for its new owner.
func (l *LeaseLock) Release(ctx context.Context) error {
	_, err := l.client.Lease.Update().
		Where(
			lease.IDEQ(l.name),
			lease.HolderEQ(l.holder),
		).
		SetExpiresAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release lease %s: %w", l.name, err)
	}
	return nil
}
