package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Harbor/internal/core/posts"
)

type postRepo struct {
	db Querier
}

// NewPostRepository creates a post repository over db.
func NewPostRepository(db Querier) posts.Repository {
	return &postRepo{db: db}
}

// GetByID retrieves a post by id.
func (r *postRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	post := &posts.Post{}
	var body sql.NullString
	query := `
		SELECT id, community_id, person_id, title, body, removed, deleted,
			created_at, updated_at
		FROM posts
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.CommunityID,
		&post.PersonID,
		&post.Title,
		&body,
		&post.Removed,
		&post.Deleted,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	post.Body = body.String
	return post, nil
}

// RemoveAllByCommunityAndPerson flips the removed flag on every post the
// person authored in the community.
func (r *postRepo) RemoveAllByCommunityAndPerson(ctx context.Context, communityID, personID int64, removed bool) error {
	query := `
		UPDATE posts
		SET removed = $3, updated_at = now()
		WHERE community_id = $1 AND person_id = $2 AND removed <> $3`

	if _, err := r.db.ExecContext(ctx, query, communityID, personID, removed); err != nil {
		return fmt.Errorf("failed to update removed flag on posts: %w", err)
	}

	return nil
}

// ResolveReportsByPersonAndCommunity marks every open report against the
// person's posts in the community as resolved by resolverID.
func (r *postRepo) ResolveReportsByPersonAndCommunity(ctx context.Context, personID, communityID, resolverID int64) error {
	query := `
		UPDATE post_reports pr
		SET resolved = true, resolver_id = $3
		FROM posts p
		WHERE pr.post_id = p.id
			AND p.person_id = $1
			AND p.community_id = $2
			AND pr.resolved = false`

	if _, err := r.db.ExecContext(ctx, query, personID, communityID, resolverID); err != nil {
		return fmt.Errorf("failed to resolve post reports: %w", err)
	}

	return nil
}
