package postgres

import (
	"context"
	"database/sql"

	"Harbor/internal/core/communities"
	"Harbor/internal/core/store"
)

type unitOfWork struct {
	db *sql.DB
}

// NewUnitOfWork creates a store.UnitOfWork backed by db.
func NewUnitOfWork(db *sql.DB) store.UnitOfWork {
	return &unitOfWork{db: db}
}

func txStores(tx *sql.Tx) store.Stores {
	return store.Stores{
		People:       NewPersonRepository(tx),
		Applications: NewApplicationRepository(tx),
		Communities:  NewCommunityRepository(tx),
		Links:        NewLinkRepository(tx),
		ModLog:       NewModLogRepository(tx),
		Posts:        NewPostRepository(tx),
		Comments:     NewCommentRepository(tx),
	}
}

// InTx runs fn inside a transaction, with every repository bound to it.
func (u *unitOfWork) InTx(ctx context.Context, fn func(s store.Stores) error) error {
	return WithTx(ctx, u.db, func(tx *sql.Tx) error {
		return fn(txStores(tx))
	})
}

// InCommunityTx runs fn inside a transaction holding a row lock on the
// community. Concurrent membership mutations for the same community
// serialize on this lock.
func (u *unitOfWork) InCommunityTx(ctx context.Context, communityID int64, fn func(s store.Stores) error) error {
	return WithTx(ctx, u.db, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM communities WHERE id = $1 FOR UPDATE`, communityID,
		).Scan(&id)
		if err == sql.ErrNoRows {
			return communities.ErrCommunityNotFound
		}
		if err != nil {
			return err
		}

		return fn(txStores(tx))
	})
}
