package communities

import "context"

// Repository defines the data access interface for communities. The state
// flags are written through dedicated setters; moderation workflows never
// update a community wholesale.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Community, error)
	GetByName(ctx context.Context, name string) (*Community, error)
	Create(ctx context.Context, community *Community) (*Community, error)
	SetHidden(ctx context.Context, id int64, hidden bool) error
	SetDeleted(ctx context.Context, id int64, deleted bool) error
	SetRemoved(ctx context.Context, id int64, removed bool) error
}
