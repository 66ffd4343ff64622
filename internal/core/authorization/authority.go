// Package authorization resolves whether a principal holds a site-wide
// permission. Decisions are pure functions over already-loaded data; failure
// construction is delegated to the caller so each call site chooses its own
// error shape.
package authorization

import (
	"Harbor/internal/core/people"
)

// Authority is the single stateless permission authority. The admin role
// implicitly grants every permission regardless of its explicit set.
type Authority struct{}

// NewAuthority creates the permission authority.
func NewAuthority() *Authority {
	return &Authority{}
}

// IsAdmin reports whether the person holds the admin role.
func (a *Authority) IsAdmin(p *people.Person) bool {
	return p != nil && p.Role.Name == people.RoleAdmin
}

// IsBanned reports whether the role is the distinguished banned role.
func (a *Authority) IsBanned(r people.Role) bool {
	return r.Name == people.RoleBanned
}

// HasPermission reports whether the principal holds the permission.
// Anonymous principals never hold any permission.
func (a *Authority) HasPermission(pr people.Principal, perm people.Permission) bool {
	person, ok := pr.Person()
	if !ok {
		return false
	}
	if a.IsAdmin(person) {
		return true
	}
	return person.Role.Grants(perm)
}

// HasAnyPermission reports whether the principal holds any of the permissions.
func (a *Authority) HasAnyPermission(pr people.Principal, perms ...people.Permission) bool {
	for _, perm := range perms {
		if a.HasPermission(pr, perm) {
			return true
		}
	}
	return false
}

// RequirePermission returns unauthorized() when the principal lacks the
// permission, nil otherwise.
func (a *Authority) RequirePermission(pr people.Principal, perm people.Permission, unauthorized func() error) error {
	if !a.HasPermission(pr, perm) {
		return unauthorized()
	}
	return nil
}

// RequireAnyPermission returns unauthorized() when the principal holds none
// of the permissions, nil otherwise.
func (a *Authority) RequireAnyPermission(pr people.Principal, perms []people.Permission, unauthorized func() error) error {
	if !a.HasAnyPermission(pr, perms...) {
		return unauthorized()
	}
	return nil
}
