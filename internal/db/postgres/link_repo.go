package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/lib/pq"

	"Harbor/internal/core/memberships"
	"Harbor/internal/core/people"
)

type linkRepo struct {
	db Querier
}

// NewLinkRepository creates a membership link store over db. Cross-type
// exclusivity is not enforced here; that lives in memberships.Policy.
func NewLinkRepository(db Querier) memberships.Store {
	return &linkRepo{db: db}
}

// HasLink checks whether the typed edge exists.
func (r *linkRepo) HasLink(ctx context.Context, personID, communityID int64, t memberships.LinkType) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM link_person_community
			WHERE person_id = $1 AND community_id = $2 AND link_type = $3
		)`

	err := r.db.QueryRowContext(ctx, query, personID, communityID, string(t)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check link: %w", err)
	}

	return exists, nil
}

// AddLink inserts the typed edge; inserting an existing edge is a no-op.
func (r *linkRepo) AddLink(ctx context.Context, personID, communityID int64, t memberships.LinkType) error {
	query := `
		INSERT INTO link_person_community (person_id, community_id, link_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (person_id, community_id, link_type) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, personID, communityID, string(t)); err != nil {
		return fmt.Errorf("failed to add link: %w", err)
	}

	return nil
}

// RemoveLink deletes the typed edge; removing an absent edge is a no-op.
func (r *linkRepo) RemoveLink(ctx context.Context, personID, communityID int64, t memberships.LinkType) error {
	query := `
		DELETE FROM link_person_community
		WHERE person_id = $1 AND community_id = $2 AND link_type = $3`

	if _, err := r.db.ExecContext(ctx, query, personID, communityID, string(t)); err != nil {
		return fmt.Errorf("failed to remove link: %w", err)
	}

	return nil
}

// PersonsByCommunityAndTypes retrieves the union of persons holding any of
// the given link types for the community.
func (r *linkRepo) PersonsByCommunityAndTypes(ctx context.Context, communityID int64, types []memberships.LinkType) ([]people.Person, error) {
	typeStrings := make([]string, 0, len(types))
	for _, t := range types {
		typeStrings = append(typeStrings, string(t))
	}

	query := `
		SELECT DISTINCT` + personColumns + `
		FROM link_person_community l
		JOIN people p ON p.id = l.person_id
		JOIN roles r ON r.id = p.role_id
		WHERE l.community_id = $1 AND l.link_type = ANY($2)
		ORDER BY p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, communityID, pq.Array(typeStrings))
	if err != nil {
		return nil, fmt.Errorf("failed to list persons by link types: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []people.Person{}
	for rows.Next() {
		person, scanErr := scanPerson(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan linked person: %w", scanErr)
		}
		result = append(result, *person)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating linked persons: %w", err)
	}

	return result, nil
}
