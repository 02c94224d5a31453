package sla

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/metrics"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/timer"
)

const (
	// reconcileLease keeps the sweep single-flight across replicas.
	reconcileLease    = "sla-reconciliation"
	reconcileLeaseTTL = 300 * time.Second

	// reconcileBatchSize bounds one sweep. Leftovers wait for the next tick.
	reconcileBatchSize = 200
)

// ReconcileReport counts the outcomes of one sweep.
type ReconcileReport struct {
	TotalPending  int `json:"total_pending"`
	Rescheduled   int `json:"rescheduled"`
	Breached      int `json:"breached"`
	AlreadyActive int `json:"already_active"`
	Failed        int `json:"failed"`
}

// Reconciler restores lost breach timers. A request whose timers were
// never enqueued (crash between commit and poll, manual surgery) is found
// here and either gets its breach timer rescheduled at the residual delay
// or, when the window already passed, breached directly.
type Reconciler struct {
	client   *ent.Client
	store    *timer.Store
	engine   *Engine
	settings *services.SettingsService
	lock     *timer.LeaseLock
	logger   *slog.Logger
}

// NewReconciler creates a Reconciler. podID identifies this instance as
// the lease holder.
func NewReconciler(client *ent.Client, store *timer.Store, engine *Engine, settings *services.SettingsService, podID string) *Reconciler {
	if client == nil || store == nil || engine == nil || settings == nil {
		panic("NewReconciler: all collaborators must not be nil")
	}
	return &Reconciler{
		client:   client,
		store:    store,
		engine:   engine,
		settings: settings,
		lock:     timer.NewLeaseLock(client, reconcileLease, podID, reconcileLeaseTTL),
		logger:   slog.With("component", "sla.reconciler"),
	}
}

// Run executes periodic sweeps until ctx is cancelled. The interval is
// re-read from settings each tick so admins can tune it at runtime.
func (r *Reconciler) Run(ctx context.Context) {
	r.logger.Info("Reconciler started")
	for {
		interval := 5 * time.Minute
		if settings, err := r.settings.Get(ctx); err == nil {
			interval = time.Duration(settings.ReconcileIntervalMinutes) * time.Minute
		}

		select {
		case <-ctx.Done():
			r.logger.Info("Reconciler stopped")
			return
		case <-time.After(interval):
		}

		report, err := r.Sweep(ctx)
		if err != nil {
			r.logger.Error("Reconciliation sweep failed", "error", err)
			continue
		}
		if report != nil {
			r.logger.Info("Reconciliation sweep finished",
				"total_pending", report.TotalPending,
				"rescheduled", report.Rescheduled,
				"breached", report.Breached,
				"already_active", report.AlreadyActive,
				"failed", report.Failed)
		}
	}
}

// Sweep runs one reconciliation pass. It returns nil without a report when
// another instance holds the lease. Failures inside the batch are counted,
// not retried; the next sweep picks them up.
func (r *Reconciler) Sweep(ctx context.Context) (*ReconcileReport, error) {
	acquired, err := r.lock.TryAcquire(ctx)
	if err != nil {
		return nil, err
	}
	if !acquired {
		r.logger.Debug("Reconciliation lease held elsewhere, skipping sweep")
		return nil, nil
	}
	defer func() {
		if err := r.lock.Release(context.WithoutCancel(ctx)); err != nil {
			r.logger.Warn("Failed to release reconciliation lease", "error", err)
		}
	}()

	settings, err := r.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := r.client.ClientRequest.Query().
		Where(
			clientrequest.StatusIn(clientrequest.StatusPending, clientrequest.StatusInProgress),
			clientrequest.ClassificationEQ(clientrequest.ClassificationREQUEST),
			clientrequest.DeletedAtIsNil(),
			clientrequest.HasChatWith(
				chat.SLAEnabledEQ(true),
				chat.MonitoringEnabledEQ(true),
			),
		).
		WithChat().
		Order(ent.Asc(clientrequest.FieldReceivedAt)).
		Limit(reconcileBatchSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load open requests: %w", err)
	}

	report := &ReconcileReport{TotalPending: len(requests)}
	for _, req := range requests {
		outcome, err := r.reconcileRequest(ctx, req, settings)
		if err != nil {
			report.Failed++
			r.logger.Warn("Failed to reconcile request",
				"request_id", req.ID, "error", err)
			continue
		}
		switch outcome {
		case "rescheduled":
			report.Rescheduled++
		case "breached":
			report.Breached++
		case "already_active":
			report.AlreadyActive++
		}
		metrics.ReconcileRuns.WithLabelValues(outcome).Inc()
	}
	return report, nil
}

func (r *Reconciler) reconcileRequest(ctx context.Context, req *ent.ClientRequest, settings *ent.GlobalSettings) (string, error) {
	exists, err := r.store.Exists(ctx, timer.BreachJobID(req.ID))
	if err != nil {
		return "", err
	}
	if exists {
		return "already_active", nil
	}

	threshold := time.Duration(EffectiveThreshold(req.Edges.Chat, settings)) * time.Minute
	breachAt := req.ReceivedAt.Add(threshold)

	if time.Now().Before(breachAt) {
		// Timer lost but the window is still open: re-arm at the residual.
		err := r.store.Schedule(ctx, timer.BreachJobID(req.ID), timerjob.JobTypeBreach,
			models.TimerPayload{
				RequestID:        req.ID,
				ChatID:           req.ChatID,
				ThresholdMinutes: int(threshold.Minutes()),
			}, breachAt)
		if err != nil {
			return "", err
		}
		r.logger.Info("Rescheduled lost breach timer",
			"request_id", req.ID, "due_at", breachAt)
		return "rescheduled", nil
	}

	// Window already passed: breach now. The engine's guards keep this
	// idempotent against a concurrently-firing timer.
	if err := r.engine.fireBreach(ctx, req.ID); err != nil {
		return "", err
	}
	return "breached", nil
}
