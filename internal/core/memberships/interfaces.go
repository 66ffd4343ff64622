package memberships

import (
	"context"

	"Harbor/internal/core/people"
)

// Store persists typed person-community edges. AddLink is a no-op when the
// edge already exists, RemoveLink when it is absent. The store enforces
// per-type uniqueness only; exclusivity across types is Policy's job.
type Store interface {
	HasLink(ctx context.Context, personID, communityID int64, t LinkType) (bool, error)
	AddLink(ctx context.Context, personID, communityID int64, t LinkType) error
	RemoveLink(ctx context.Context, personID, communityID int64, t LinkType) error
	PersonsByCommunityAndTypes(ctx context.Context, communityID int64, types []LinkType) ([]people.Person, error)
}
