package admin

import "Harbor/internal/core/people"

// AddAdminRequest promotes a person to the admin role.
type AddAdminRequest struct {
	PersonID int64 `json:"person_id"`
	Added    bool  `json:"added"`
}

// AddAdminResponse returns the admin roster after the change.
type AddAdminResponse struct {
	Admins []people.PersonView `json:"admins"`
}

// ReviewApplicationRequest approves or rejects a registration application.
type ReviewApplicationRequest struct {
	DenyReason string `json:"deny_reason,omitempty"`
	ID         int64  `json:"id"`
	Approve    bool   `json:"approve"`
}

// RegistrationApplicationResponse wraps a single application view.
type RegistrationApplicationResponse struct {
	RegistrationApplication people.RegistrationApplicationView `json:"registration_application"`
}

// ListApplicationsResponse lists pending registration applications.
type ListApplicationsResponse struct {
	RegistrationApplications []people.RegistrationApplicationView `json:"registration_applications"`
}

// ApplicationCountResponse carries the unread application count.
type ApplicationCountResponse struct {
	RegistrationApplications int64 `json:"registration_applications"`
}

// PurgePersonRequest permanently removes a person and their history.
type PurgePersonRequest struct {
	Reason   string `json:"reason,omitempty"`
	PersonID int64  `json:"person_id"`
}

// PurgeCommunityRequest permanently removes a community.
type PurgeCommunityRequest struct {
	Reason      string `json:"reason,omitempty"`
	CommunityID int64  `json:"community_id"`
}

// PurgePostRequest permanently removes a post.
type PurgePostRequest struct {
	Reason string `json:"reason,omitempty"`
	PostID int64  `json:"post_id"`
}

// PurgeCommentRequest permanently removes a comment and its history.
type PurgeCommentRequest struct {
	Reason    string `json:"reason,omitempty"`
	CommentID int64  `json:"comment_id"`
}

// PurgeItemResponse acknowledges a completed purge.
type PurgeItemResponse struct {
	Success bool `json:"success"`
}
