package posts

import "context"

// Repository defines the post operations the moderation workflows need.
// RemoveAllByCommunityAndPerson flips the removed flag on every post the
// person authored in the community; passing removed=false reverses a ban's
// content removal.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Post, error)
	RemoveAllByCommunityAndPerson(ctx context.Context, communityID, personID int64, removed bool) error
	ResolveReportsByPersonAndCommunity(ctx context.Context, personID, communityID, resolverID int64) error
}
