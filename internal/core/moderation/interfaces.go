package moderation

import (
	"context"

	"Harbor/internal/core/people"
)

// Service orchestrates community moderation actions. Every method authorizes
// the principal, applies the state mutation inside one transaction, and
// appends exactly one moderation log entry.
type Service interface {
	HideCommunity(ctx context.Context, pr people.Principal, req HideCommunityRequest) (*CommunityResponse, error)
	DeleteCommunity(ctx context.Context, pr people.Principal, req DeleteCommunityRequest) (*CommunityResponse, error)
	RemoveCommunity(ctx context.Context, pr people.Principal, req RemoveCommunityRequest) (*CommunityResponse, error)
	TransferCommunity(ctx context.Context, pr people.Principal, req TransferCommunityRequest) (*GetCommunityResponse, error)
	BanPerson(ctx context.Context, pr people.Principal, req BanPersonRequest) (*BanFromCommunityResponse, error)
	AddModerator(ctx context.Context, pr people.Principal, req AddModeratorRequest) (*AddModToCommunityResponse, error)
}
