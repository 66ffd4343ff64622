package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"Harbor/internal/core/modlog"
)

type modlogRepo struct {
	db Querier
}

// NewModLogRepository creates a moderation log recorder over db. The table
// is append-only; no update or delete statements exist here.
func NewModLogRepository(db Querier) modlog.Recorder {
	return &modlogRepo{db: db}
}

// Create appends one moderation log entry with a server-assigned id and
// timestamp.
func (r *modlogRepo) Create(ctx context.Context, entry *modlog.Entry) (*modlog.Entry, error) {
	query := `
		INSERT INTO moderation_logs (
			action_type, entity_id, community_id, instance_id,
			moderation_person_id, admin_person_id, other_person_id,
			hidden, removed, banned, reason, expires
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		string(entry.ActionType),
		entry.EntityID,
		entry.CommunityID,
		entry.InstanceID,
		entry.ModerationPersonID,
		entry.AdminPersonID,
		entry.OtherPersonID,
		entry.Hidden,
		entry.Removed,
		entry.Banned,
		nullString(entry.Reason),
		entry.Expires,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create moderation log entry: %w", err)
	}

	return entry, nil
}

// List retrieves entries newest-first, filtered by the query.
func (r *modlogRepo) List(ctx context.Context, q modlog.Query) ([]modlog.Entry, error) {
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT id, action_type, entity_id, community_id, instance_id,
			moderation_person_id, admin_person_id, other_person_id,
			hidden, removed, banned, reason, expires, created_at
		FROM moderation_logs
		WHERE ($1 = '' OR action_type = $1)
			AND ($2::bigint IS NULL OR community_id = $2)
			AND ($3::bigint IS NULL OR moderation_person_id = $3)
			AND ($4::bigint IS NULL OR other_person_id = $4)
		ORDER BY created_at DESC, id DESC
		LIMIT $5 OFFSET $6`

	rows, err := r.db.QueryContext(ctx, query,
		string(q.ActionType),
		q.CommunityID,
		q.ModerationPersonID,
		q.OtherPersonID,
		limit,
		q.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderation log: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []modlog.Entry{}
	for rows.Next() {
		entry := modlog.Entry{}
		var actionType string
		var reason sql.NullString

		scanErr := rows.Scan(
			&entry.ID,
			&actionType,
			&entry.EntityID,
			&entry.CommunityID,
			&entry.InstanceID,
			&entry.ModerationPersonID,
			&entry.AdminPersonID,
			&entry.OtherPersonID,
			&entry.Hidden,
			&entry.Removed,
			&entry.Banned,
			&reason,
			&entry.Expires,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan moderation log entry: %w", scanErr)
		}

		entry.ActionType = modlog.ActionType(actionType)
		entry.Reason = reason.String
		result = append(result, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating moderation log: %w", err)
	}

	return result, nil
}
