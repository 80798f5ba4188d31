package services

import (
	"context"
	"fmt"
	"time"

	"restaurant-backoffice/db"
)

// AuditLog writes every event into the menu_audit table. It is a no-op without a pool.
type AuditLog struct{}

func (AuditLog) Publish(ctx context.Context, ev Event) error {
	if db.Pool == nil {
		return nil
	}
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO menu_audit (entity, entity_id, action, name, price_cents)
		VALUES ($1, $2, $3, $4, $5)`,
		ev.Entity, ev.ID, ev.Action, ev.Name, ev.PriceCents,
	)
	if err != nil {
		return fmt.Errorf("insert audit row: %w", err)
	}
	return nil
}

type AuditEntry struct {
	Event
	CreatedAt time.Time
}

// RecentAudit returns the newest entries first.
func RecentAudit(ctx context.Context, limit int) ([]AuditEntry, error) {
	if db.Pool == nil {
		return nil, nil
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT entity, entity_id, action, name, price_cents, created_at
		FROM menu_audit
		ORDER BY id DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.Entity, &e.ID, &e.Action, &e.Name, &e.PriceCents, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
