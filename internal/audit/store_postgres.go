package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresStore appends audit events to PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, e Event) error {
	const query = `
		INSERT INTO audit_events (id, action, actor_id, entity_id, license_plate, client_ip, client_device, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query, e.ID, string(e.Action), e.ActorID,
		e.EntityID, e.Plate, e.ClientIP, e.ClientDevice, e.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByActor(ctx context.Context, actorID int64, since time.Time) ([]Event, error) {
	const query = `
		SELECT id, action, actor_id, entity_id, license_plate, client_ip, client_device, occurred_at
		FROM audit_events
		WHERE actor_id = $1 AND occurred_at >= $2
		ORDER BY occurred_at`

	rows, err := s.db.QueryContext(ctx, query, actorID, since)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Action, &e.ActorID, &e.EntityID, &e.Plate,
			&e.ClientIP, &e.ClientDevice, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return out, nil
}
