package people

import "time"

// Distinguished role names. Every person holds exactly one role; the admin
// role implicitly grants all permissions regardless of the explicit set.
const (
	RoleAdmin      = "admin"
	RoleRegistered = "registered"
	RoleBanned     = "banned"
)

// Permission is a site-wide capability granted through a role. These are
// account-wide permissions, distinct from community-scoped link types.
type Permission string

const (
	PermissionReadCommunity                 Permission = "read_community"
	PermissionCommunityFollow               Permission = "community_follow"
	PermissionCommunityBlock                Permission = "community_block"
	PermissionDeleteCommunity               Permission = "delete_community"
	PermissionAdminRemoveCommunity          Permission = "admin_remove_community"
	PermissionModeratorRemoveCommunity      Permission = "moderator_remove_community"
	PermissionModeratorTransferCommunity    Permission = "moderator_transfer_community"
	PermissionModeratorBanUser              Permission = "moderator_ban_user"
	PermissionModeratorAddModerator         Permission = "moderator_add_moderator"
	PermissionAdminAddCommunityModerator    Permission = "admin_add_community_moderator"
	PermissionInstanceAddAdmin              Permission = "instance_add_admin"
	PermissionInstanceRemoveAdmin           Permission = "instance_remove_admin"
	PermissionRegistrationApplicationRead   Permission = "registration_application_read"
	PermissionRegistrationApplicationUpdate Permission = "registration_application_update"
	PermissionPurgeUser                     Permission = "purge_user"
	PermissionPurgeCommunity                Permission = "purge_community"
	PermissionPurgePost                     Permission = "purge_post"
	PermissionPurgeComment                  Permission = "purge_comment"
)

// Role is a named permission bundle assigned to a person.
type Role struct {
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	Name        string       `json:"name" db:"name"`
	Description string       `json:"description,omitempty" db:"description"`
	Permissions []Permission `json:"permissions" db:"permissions"`
	ID          int64        `json:"id" db:"id"`
}

// Grants reports whether the role's explicit permission set contains perm.
// It does not apply the admin override; that lives in the authority.
func (r Role) Grants(perm Permission) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
