package communities

import "errors"

// Domain errors for communities
var (
	// ErrCommunityNotFound is returned when a community doesn't exist
	ErrCommunityNotFound = errors.New("community not found")

	// ErrNameTaken is returned when a community name is already in use
	ErrNameTaken = errors.New("community name is already taken")
)
