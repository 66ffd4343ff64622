// Package memberships models the typed relationship between a person and a
// community. The store is a plain typed-edge table; every cross-type
// exclusivity rule lives in Policy so call sites cannot drift.
package memberships

import "time"

// LinkType is the role a person holds with respect to one community.
type LinkType string

const (
	LinkOwner     LinkType = "owner"
	LinkModerator LinkType = "moderator"
	LinkFollower  LinkType = "follower"
	LinkBanned    LinkType = "banned"
	LinkBlocked   LinkType = "blocked"
)

// Link is a typed edge between exactly one person and one community.
// Links are never updated in place; a type change is remove-old + add-new.
type Link struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Type        LinkType  `json:"type" db:"link_type"`
	ID          int64     `json:"id" db:"id"`
	PersonID    int64     `json:"personId" db:"person_id"`
	CommunityID int64     `json:"communityId" db:"community_id"`
}
