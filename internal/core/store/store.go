// Package store bundles the repositories a workflow touches within one
// transaction. Implementations bind every repository to the same database
// transaction so multi-step mutations commit or roll back as a unit.
package store

import (
	"context"

	"Harbor/internal/core/comments"
	"Harbor/internal/core/communities"
	"Harbor/internal/core/memberships"
	"Harbor/internal/core/modlog"
	"Harbor/internal/core/people"
	"Harbor/internal/core/posts"
)

// Stores is the set of repositories available inside a transaction.
type Stores struct {
	People       people.Repository
	Applications people.ApplicationRepository
	Communities  communities.Repository
	Links        memberships.Store
	ModLog       modlog.Recorder
	Posts        posts.Repository
	Comments     comments.Repository
}

// UnitOfWork runs a function inside a database transaction. InCommunityTx
// additionally takes a row lock on the community, serializing membership
// edge mutations for that community across concurrent requests.
type UnitOfWork interface {
	InTx(ctx context.Context, fn func(s Stores) error) error
	InCommunityTx(ctx context.Context, communityID int64, fn func(s Stores) error) error
}
