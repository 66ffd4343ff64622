package authorization

import (
	"errors"
	"testing"

	"Harbor/internal/core/people"
)

func registeredPerson(perms ...people.Permission) *people.Person {
	return &people.Person{
		ID:       1,
		Username: "alice",
		Role: people.Role{
			Name:        people.RoleRegistered,
			Permissions: perms,
		},
	}
}

func adminPerson() *people.Person {
	return &people.Person{
		ID:       2,
		Username: "admin",
		Role:     people.Role{Name: people.RoleAdmin},
	}
}

func TestHasPermission_Anonymous(t *testing.T) {
	auth := NewAuthority()

	if auth.HasPermission(people.Anonymous(), people.PermissionCommunityFollow) {
		t.Error("Expected anonymous principal to hold no permissions")
	}
}

func TestHasPermission_ExplicitGrant(t *testing.T) {
	auth := NewAuthority()
	pr := people.NewPrincipal(registeredPerson(people.PermissionCommunityFollow))

	if !auth.HasPermission(pr, people.PermissionCommunityFollow) {
		t.Error("Expected granted permission to be held")
	}
	if auth.HasPermission(pr, people.PermissionPurgeComment) {
		t.Error("Expected ungranted permission to be denied")
	}
}

func TestHasPermission_AdminOverride(t *testing.T) {
	auth := NewAuthority()
	pr := people.NewPrincipal(adminPerson())

	// Admin role grants every permission, even with an empty explicit set
	if !auth.HasPermission(pr, people.PermissionPurgeComment) {
		t.Error("Expected admin to hold purge_comment")
	}
	if !auth.HasPermission(pr, people.PermissionInstanceAddAdmin) {
		t.Error("Expected admin to hold instance_add_admin")
	}
}

func TestHasAnyPermission(t *testing.T) {
	auth := NewAuthority()
	pr := people.NewPrincipal(registeredPerson(people.PermissionModeratorAddModerator))

	if !auth.HasAnyPermission(pr, people.PermissionAdminAddCommunityModerator, people.PermissionModeratorAddModerator) {
		t.Error("Expected any-of check to pass when one permission is held")
	}
	if auth.HasAnyPermission(pr, people.PermissionPurgeUser, people.PermissionPurgePost) {
		t.Error("Expected any-of check to fail when none are held")
	}
}

func TestRequirePermission_UsesSuppliedError(t *testing.T) {
	auth := NewAuthority()
	want := errors.New("custom failure")

	err := auth.RequirePermission(people.Anonymous(), people.PermissionCommunityFollow, func() error {
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("Expected supplied error, got %v", err)
	}

	err = auth.RequirePermission(people.NewPrincipal(adminPerson()), people.PermissionCommunityFollow, func() error {
		return want
	})
	if err != nil {
		t.Errorf("Expected nil for authorized principal, got %v", err)
	}
}

func TestIsAdminAndIsBanned(t *testing.T) {
	auth := NewAuthority()

	if auth.IsAdmin(nil) {
		t.Error("Expected nil person to not be admin")
	}
	if !auth.IsAdmin(adminPerson()) {
		t.Error("Expected admin role to be admin")
	}
	if auth.IsAdmin(registeredPerson()) {
		t.Error("Expected registered role to not be admin")
	}

	if !auth.IsBanned(people.Role{Name: people.RoleBanned}) {
		t.Error("Expected banned role to be banned")
	}
	if auth.IsBanned(people.Role{Name: people.RoleRegistered}) {
		t.Error("Expected registered role to not be banned")
	}
}
