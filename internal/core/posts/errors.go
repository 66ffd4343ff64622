package posts

import "errors"

// ErrPostNotFound is returned when a post doesn't exist
var ErrPostNotFound = errors.New("post not found")
