package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Harbor/internal/core/communities"
)

type communityRepo struct {
	db Querier
}

// NewCommunityRepository creates a community repository over db.
func NewCommunityRepository(db Querier) communities.Repository {
	return &communityRepo{db: db}
}

const communityColumns = `
	id, activity_pub_id, name, title, description, public_key, private_key,
	instance_id, local, hidden, deleted, removed, nsfw, created_at, updated_at`

func scanCommunity(row interface{ Scan(...interface{}) error }) (*communities.Community, error) {
	community := &communities.Community{}
	var description sql.NullString

	err := row.Scan(
		&community.ID,
		&community.ActivityPubID,
		&community.Name,
		&community.Title,
		&description,
		&community.PublicKey,
		&community.PrivateKey,
		&community.InstanceID,
		&community.Local,
		&community.Hidden,
		&community.Deleted,
		&community.Removed,
		&community.NSFW,
		&community.CreatedAt,
		&community.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	community.Description = description.String
	return community, nil
}

// GetByID retrieves a community by id.
func (r *communityRepo) GetByID(ctx context.Context, id int64) (*communities.Community, error) {
	query := `SELECT` + communityColumns + ` FROM communities WHERE id = $1`

	community, err := scanCommunity(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, communities.ErrCommunityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get community: %w", err)
	}

	return community, nil
}

// GetByName retrieves a local community by name.
func (r *communityRepo) GetByName(ctx context.Context, name string) (*communities.Community, error) {
	query := `SELECT` + communityColumns + ` FROM communities WHERE name = $1 AND local = true`

	community, err := scanCommunity(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, communities.ErrCommunityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get community by name: %w", err)
	}

	return community, nil
}

// Create inserts a new community.
func (r *communityRepo) Create(ctx context.Context, community *communities.Community) (*communities.Community, error) {
	query := `
		INSERT INTO communities (
			activity_pub_id, name, title, description, public_key, private_key,
			instance_id, local, hidden, deleted, removed, nsfw
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		community.ActivityPubID,
		community.Name,
		community.Title,
		nullString(community.Description),
		community.PublicKey,
		community.PrivateKey,
		community.InstanceID,
		community.Local,
		community.Hidden,
		community.Deleted,
		community.Removed,
		community.NSFW,
	).Scan(&community.ID, &community.CreatedAt, &community.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, communities.ErrNameTaken
		}
		return nil, fmt.Errorf("failed to create community: %w", err)
	}

	return community, nil
}

func (r *communityRepo) setFlag(ctx context.Context, id int64, column string, value bool) error {
	query := fmt.Sprintf(`UPDATE communities SET %s = $2, updated_at = now() WHERE id = $1`, column)

	result, err := r.db.ExecContext(ctx, query, id, value)
	if err != nil {
		return fmt.Errorf("failed to set community %s: %w", column, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check community %s update: %w", column, err)
	}
	if affected == 0 {
		return communities.ErrCommunityNotFound
	}

	return nil
}

// SetHidden flips the hidden flag.
func (r *communityRepo) SetHidden(ctx context.Context, id int64, hidden bool) error {
	return r.setFlag(ctx, id, "hidden", hidden)
}

// SetDeleted flips the deleted flag.
func (r *communityRepo) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	return r.setFlag(ctx, id, "deleted", deleted)
}

// SetRemoved flips the removed flag.
func (r *communityRepo) SetRemoved(ctx context.Context, id int64, removed bool) error {
	return r.setFlag(ctx, id, "removed", removed)
}
