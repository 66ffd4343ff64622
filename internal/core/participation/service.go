// Package participation covers member-level community actions: creating a
// community and following or blocking one. Moderator and admin actions live
// in the moderation and admin packages.
package participation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"Harbor/internal/core/apperrors"
	"Harbor/internal/core/authorization"
	"Harbor/internal/core/communities"
	"Harbor/internal/core/keys"
	"Harbor/internal/core/memberships"
	"Harbor/internal/core/people"
	"Harbor/internal/core/store"
)

// Community names are URL path segments; keep them DNS-label-ish.
var communityNameRegex = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

// CreateCommunityRequest creates a new community owned by the caller.
type CreateCommunityRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	NSFW        bool   `json:"nsfw"`
}

// FollowCommunityRequest follows or unfollows a community.
type FollowCommunityRequest struct {
	CommunityID int64 `json:"community_id"`
	Follow      bool  `json:"follow"`
}

// BlockCommunityRequest blocks or unblocks a community.
type BlockCommunityRequest struct {
	CommunityID int64 `json:"community_id"`
	Block       bool  `json:"block"`
}

// CommunityResponse wraps a community view.
type CommunityResponse struct {
	CommunityView communities.CommunityView `json:"community_view"`
}

// Service covers member-level community actions.
type Service interface {
	CreateCommunity(ctx context.Context, pr people.Principal, req CreateCommunityRequest) (*CommunityResponse, error)
	FollowCommunity(ctx context.Context, pr people.Principal, req FollowCommunityRequest) (*CommunityResponse, error)
	BlockCommunity(ctx context.Context, pr people.Principal, req BlockCommunityRequest) (*CommunityResponse, error)
	GetCommunity(ctx context.Context, identifier string) (*CommunityResponse, error)
}

type participationService struct {
	uow        store.UnitOfWork
	auth       *authorization.Authority
	baseURL    string
	instanceID int64
}

// NewService creates the participation service. baseURL is the local
// instance's public URL, used to mint ActivityPub identifiers.
func NewService(uow store.UnitOfWork, auth *authorization.Authority, baseURL string, instanceID int64) Service {
	return &participationService{
		uow:        uow,
		auth:       auth,
		baseURL:    strings.TrimRight(baseURL, "/"),
		instanceID: instanceID,
	}
}

func unauthorized() error {
	return apperrors.Unauthorized("unauthorized")
}

func participationErr(err error) error {
	if err == nil {
		return nil
	}
	var ae *apperrors.Error
	if errors.As(err, &ae) {
		return err
	}
	switch {
	case errors.Is(err, communities.ErrCommunityNotFound):
		return apperrors.NotFound("community_not_found")
	case errors.Is(err, communities.ErrNameTaken):
		return apperrors.BadRequest("community_name_taken")
	default:
		return apperrors.Internal("internal_error", err)
	}
}

// CreateCommunity creates a local community. The creator receives the owner
// and follower links in the same transaction.
func (s *participationService) CreateCommunity(ctx context.Context, pr people.Principal, req CreateCommunityRequest) (*CommunityResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, unauthorized()
	}

	if !communityNameRegex.MatchString(req.Name) {
		return nil, apperrors.BadRequest("invalid_community_name")
	}
	if req.Title == "" {
		req.Title = req.Name
	}

	publicKey, privateKey, err := keys.GenerateActorKeyPair()
	if err != nil {
		return nil, apperrors.Internal("internal_error", err)
	}

	community := &communities.Community{
		ActivityPubID: fmt.Sprintf("%s/c/%s", s.baseURL, req.Name),
		Name:          req.Name,
		Title:         req.Title,
		Description:   req.Description,
		InstanceID:    s.instanceID,
		Local:         true,
		NSFW:          req.NSFW,
		PublicKey:     publicKey,
		PrivateKey:    privateKey,
	}

	var view communities.CommunityView
	err = s.uow.InTx(ctx, func(st store.Stores) error {
		created, err := st.Communities.Create(ctx, community)
		if err != nil {
			return err
		}

		policy := memberships.NewPolicy(st.Links)
		if err := policy.GrantFounder(ctx, person.ID, created.ID); err != nil {
			return err
		}

		view = created.ToView()
		return nil
	})
	if err != nil {
		return nil, participationErr(err)
	}

	return &CommunityResponse{CommunityView: view}, nil
}

// FollowCommunity follows or unfollows a community. Following clears an
// existing block; a community ban blocks following.
func (s *participationService) FollowCommunity(ctx context.Context, pr people.Principal, req FollowCommunityRequest) (*CommunityResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, unauthorized()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionCommunityFollow, unauthorized); err != nil {
		return nil, err
	}

	var view communities.CommunityView
	err := s.uow.InCommunityTx(ctx, req.CommunityID, func(st store.Stores) error {
		community, err := st.Communities.GetByID(ctx, req.CommunityID)
		if err != nil {
			return err
		}

		policy := memberships.NewPolicy(st.Links)
		if req.Follow {
			banned, err := st.Links.HasLink(ctx, person.ID, community.ID, memberships.LinkBanned)
			if err != nil {
				return err
			}
			if banned {
				return apperrors.Forbidden("banned_from_community")
			}
			if err := policy.Follow(ctx, person.ID, community.ID); err != nil {
				return err
			}
		} else {
			if err := policy.Unfollow(ctx, person.ID, community.ID); err != nil {
				return err
			}
		}

		view = community.ToView()
		return nil
	})
	if err != nil {
		return nil, participationErr(err)
	}

	return &CommunityResponse{CommunityView: view}, nil
}

// BlockCommunity blocks or unblocks a community. Blocking clears an existing
// follow.
func (s *participationService) BlockCommunity(ctx context.Context, pr people.Principal, req BlockCommunityRequest) (*CommunityResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, unauthorized()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionCommunityBlock, unauthorized); err != nil {
		return nil, err
	}

	var view communities.CommunityView
	err := s.uow.InCommunityTx(ctx, req.CommunityID, func(st store.Stores) error {
		community, err := st.Communities.GetByID(ctx, req.CommunityID)
		if err != nil {
			return err
		}

		policy := memberships.NewPolicy(st.Links)
		if req.Block {
			if err := policy.Block(ctx, person.ID, community.ID); err != nil {
				return err
			}
		} else {
			if err := policy.Unblock(ctx, person.ID, community.ID); err != nil {
				return err
			}
		}

		view = community.ToView()
		return nil
	})
	if err != nil {
		return nil, participationErr(err)
	}

	return &CommunityResponse{CommunityView: view}, nil
}

// GetCommunity looks up a community by numeric id or name. Anonymous read
// access is allowed.
func (s *participationService) GetCommunity(ctx context.Context, identifier string) (*CommunityResponse, error) {
	if identifier == "" {
		return nil, apperrors.BadRequest("invalid_community_identifier")
	}

	var view communities.CommunityView
	err := s.uow.InTx(ctx, func(st store.Stores) error {
		var community *communities.Community
		var err error
		if id, parseErr := strconv.ParseInt(identifier, 10, 64); parseErr == nil {
			community, err = st.Communities.GetByID(ctx, id)
		} else {
			community, err = st.Communities.GetByName(ctx, identifier)
		}
		if err != nil {
			return err
		}
		view = community.ToView()
		return nil
	})
	if err != nil {
		return nil, participationErr(err)
	}

	return &CommunityResponse{CommunityView: view}, nil
}
