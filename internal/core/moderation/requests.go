package moderation

import (
	"Harbor/internal/core/communities"
	"Harbor/internal/core/people"
)

// HideCommunityRequest hides a community from public view. Admins only.
type HideCommunityRequest struct {
	Reason      string `json:"reason,omitempty"`
	CommunityID int64  `json:"community_id"`
	Hidden      bool   `json:"hidden"`
}

// DeleteCommunityRequest soft-deletes a community.
type DeleteCommunityRequest struct {
	CommunityID int64 `json:"community_id"`
	Deleted     bool  `json:"deleted"`
}

// RemoveCommunityRequest is a moderator removal of a community.
type RemoveCommunityRequest struct {
	Reason      string `json:"reason,omitempty"`
	CommunityID int64  `json:"community_id"`
	Removed     bool   `json:"removed"`
}

// TransferCommunityRequest transfers community ownership to an existing
// moderator.
type TransferCommunityRequest struct {
	CommunityID int64 `json:"community_id"`
	PersonID    int64 `json:"person_id"`
}

// BanPersonRequest bans or unbans a person from a community. Expires is an
// epoch-seconds timestamp; RemoveData additionally removes the person's
// posts and comments in the community.
type BanPersonRequest struct {
	Reason      string `json:"reason,omitempty"`
	Expires     *int64 `json:"expires,omitempty"`
	CommunityID int64  `json:"community_id"`
	PersonID    int64  `json:"person_id"`
	Ban         bool   `json:"ban"`
	RemoveData  bool   `json:"remove_data"`
}

// AddModeratorRequest adds or removes a community moderator.
type AddModeratorRequest struct {
	CommunityID int64 `json:"community_id"`
	PersonID    int64 `json:"person_id"`
	Added       bool  `json:"added"`
}

// CommunityResponse wraps a community view, mirroring the Lemmy v3 response
// shape.
type CommunityResponse struct {
	CommunityView communities.CommunityView `json:"community_view"`
}

// GetCommunityResponse is returned by the transfer action.
type GetCommunityResponse struct {
	CommunityView communities.CommunityView `json:"community_view"`
}

// BanFromCommunityResponse is returned by the ban action.
type BanFromCommunityResponse struct {
	PersonView people.PersonView `json:"person_view"`
	Banned     bool              `json:"banned"`
}

// CommunityModeratorView pairs a moderator with the community they moderate.
type CommunityModeratorView struct {
	Community communities.CommunityView `json:"community"`
	Moderator people.PersonView         `json:"moderator"`
}

// AddModToCommunityResponse returns the community's moderator roster after
// an add/remove moderator action.
type AddModToCommunityResponse struct {
	Moderators []CommunityModeratorView `json:"moderators"`
}
