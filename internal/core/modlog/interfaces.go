package modlog

import "context"

// Recorder appends and lists moderation log entries. There is intentionally
// no update or delete operation.
type Recorder interface {
	Create(ctx context.Context, entry *Entry) (*Entry, error)
	List(ctx context.Context, q Query) ([]Entry, error)
}
