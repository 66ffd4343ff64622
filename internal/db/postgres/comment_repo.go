package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Harbor/internal/core/comments"
)

type commentRepo struct {
	db Querier
}

// NewCommentRepository creates a comment repository over db.
func NewCommentRepository(db Querier) comments.Repository {
	return &commentRepo{db: db}
}

// GetByID retrieves a comment by id.
func (r *commentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	comment := &comments.Comment{}
	query := `
		SELECT id, post_id, community_id, person_id, content, removed, deleted,
			created_at, updated_at
		FROM comments
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.CommunityID,
		&comment.PersonID,
		&comment.Content,
		&comment.Removed,
		&comment.Deleted,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// RemoveAllByCommunityAndPerson flips the removed flag on every comment the
// person authored in the community.
func (r *commentRepo) RemoveAllByCommunityAndPerson(ctx context.Context, communityID, personID int64, removed bool) error {
	query := `
		UPDATE comments
		SET removed = $3, updated_at = now()
		WHERE community_id = $1 AND person_id = $2 AND removed <> $3`

	if _, err := r.db.ExecContext(ctx, query, communityID, personID, removed); err != nil {
		return fmt.Errorf("failed to update removed flag on comments: %w", err)
	}

	return nil
}

// ResolveReportsByCreatorAndCommunity marks every open report against the
// creator's comments in the community as resolved by resolverID.
func (r *commentRepo) ResolveReportsByCreatorAndCommunity(ctx context.Context, creatorID, communityID, resolverID int64) error {
	query := `
		UPDATE comment_reports cr
		SET resolved = true, resolver_id = $3
		FROM comments c
		WHERE cr.comment_id = c.id
			AND c.person_id = $1
			AND c.community_id = $2
			AND cr.resolved = false`

	if _, err := r.db.ExecContext(ctx, query, creatorID, communityID, resolverID); err != nil {
		return fmt.Errorf("failed to resolve comment reports: %w", err)
	}

	return nil
}

// DeleteHistoryByComment removes every archived revision of the comment and
// reports how many rows were deleted.
func (r *commentRepo) DeleteHistoryByComment(ctx context.Context, commentID int64) (int64, error) {
	query := `DELETE FROM comment_history WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete comment history: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted history rows: %w", err)
	}

	return affected, nil
}

// Delete removes the comment row. Reports referencing the comment are
// removed by the ON DELETE CASCADE on comment_reports.
func (r *commentRepo) Delete(ctx context.Context, commentID int64) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check comment delete: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}
