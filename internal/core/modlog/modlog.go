// Package modlog records moderation and administrative actions. The log is
// append-only: entries receive a server-assigned id and timestamp on create
// and are never updated or deleted.
package modlog

import "time"

// ActionType enumerates the recorded moderation actions.
type ActionType string

const (
	ActionModAdd               ActionType = "ModAdd"
	ActionModHideCommunity     ActionType = "ModHideCommunity"
	ActionModRemoveCommunity   ActionType = "ModRemoveCommunity"
	ActionModBanFromCommunity  ActionType = "ModBanFromCommunity"
	ActionModAddCommunity      ActionType = "ModAddCommunity"
	ActionModTransferCommunity ActionType = "ModTransferCommunity"
	ActionAdminPurgePerson     ActionType = "AdminPurgePerson"
	ActionAdminPurgeCommunity  ActionType = "AdminPurgeCommunity"
	ActionAdminPurgePost       ActionType = "AdminPurgePost"
	ActionAdminPurgeComment    ActionType = "AdminPurgeComment"
)

// Entry is one immutable audit record. CommunityID is nil for instance-level
// actions. ModerationPersonID carries the acting moderator, AdminPersonID the
// acting admin; OtherPersonID is the target person of the action, if any.
type Entry struct {
	CreatedAt          time.Time  `json:"when_" db:"created_at"`
	Expires            *time.Time `json:"expires,omitempty" db:"expires"`
	ActionType         ActionType `json:"action_type" db:"action_type"`
	Reason             string     `json:"reason,omitempty" db:"reason"`
	CommunityID        *int64     `json:"community_id,omitempty" db:"community_id"`
	ModerationPersonID *int64     `json:"moderation_person_id,omitempty" db:"moderation_person_id"`
	AdminPersonID      *int64     `json:"admin_person_id,omitempty" db:"admin_person_id"`
	OtherPersonID      *int64     `json:"other_person_id,omitempty" db:"other_person_id"`
	ID                 int64      `json:"id" db:"id"`
	EntityID           int64      `json:"entity_id" db:"entity_id"`
	InstanceID         int64      `json:"instance_id" db:"instance_id"`
	Hidden             bool       `json:"hidden" db:"hidden"`
	Removed            bool       `json:"removed" db:"removed"`
	Banned             bool       `json:"banned" db:"banned"`
}

// Query filters modlog listings. Zero-value fields are ignored.
type Query struct {
	ActionType         ActionType
	CommunityID        *int64
	ModerationPersonID *int64
	OtherPersonID      *int64
	Limit              int
	Offset             int
}
