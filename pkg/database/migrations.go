package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in the
// migration SQL under pkg/database/migrations.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one open (unresolved) alert per request/type/level. The
	// escalation path relies on the resulting constraint error to make
	// alert creation idempotent under concurrent timer firings.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS slaalert_request_type_level_open
		ON sla_alerts (request_id, alert_type, escalation_level)
		WHERE resolved_action IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create open-alert unique index: %w", err)
	}

	// One open request per (chat_id, message_id): a redelivered update must
	// not open a duplicate request.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS clientrequest_chat_message_live
		ON client_requests (chat_id, message_id)
		WHERE deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create live-request unique index: %w", err)
	}

	return nil
}
