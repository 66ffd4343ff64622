package people

import "errors"

// Domain errors for people
var (
	// ErrPersonNotFound is returned when a person doesn't exist
	ErrPersonNotFound = errors.New("person not found")

	// ErrUsernameTaken is returned when the username is already registered
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrRoleNotFound is returned when a role doesn't exist
	ErrRoleNotFound = errors.New("role not found")

	// ErrApplicationNotFound is returned when a registration application doesn't exist
	ErrApplicationNotFound = errors.New("registration application not found")
)
