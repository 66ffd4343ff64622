package comments

import "errors"

// ErrCommentNotFound is returned when a comment doesn't exist
var ErrCommentNotFound = errors.New("comment not found")
