package comments

import "context"

// Repository defines the comment operations the moderation and admin
// workflows need. DeleteHistoryByComment returns the number of history rows
// removed; Delete removes the comment row itself.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Comment, error)
	RemoveAllByCommunityAndPerson(ctx context.Context, communityID, personID int64, removed bool) error
	ResolveReportsByCreatorAndCommunity(ctx context.Context, creatorID, communityID, resolverID int64) error
	DeleteHistoryByComment(ctx context.Context, commentID int64) (int64, error)
	Delete(ctx context.Context, commentID int64) error
}
