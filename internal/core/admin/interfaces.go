package admin

import (
	"context"

	"Harbor/internal/core/people"
)

// Service orchestrates instance-level administrative actions.
type Service interface {
	AddAdmin(ctx context.Context, pr people.Principal, req AddAdminRequest) (*AddAdminResponse, error)
	ApplicationCount(ctx context.Context, pr people.Principal) (*ApplicationCountResponse, error)
	ListApplications(ctx context.Context, pr people.Principal) (*ListApplicationsResponse, error)
	ReviewApplication(ctx context.Context, pr people.Principal, req ReviewApplicationRequest) (*RegistrationApplicationResponse, error)
	PurgePerson(ctx context.Context, pr people.Principal, req PurgePersonRequest) (*PurgeItemResponse, error)
	PurgeCommunity(ctx context.Context, pr people.Principal, req PurgeCommunityRequest) (*PurgeItemResponse, error)
	PurgePost(ctx context.Context, pr people.Principal, req PurgePostRequest) (*PurgeItemResponse, error)
	PurgeComment(ctx context.Context, pr people.Principal, req PurgeCommentRequest) (*PurgeItemResponse, error)
}
