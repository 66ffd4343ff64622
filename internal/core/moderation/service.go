package moderation

import (
	"context"
	"errors"
	"time"

	"Harbor/internal/core/apperrors"
	"Harbor/internal/core/authorization"
	"Harbor/internal/core/communities"
	"Harbor/internal/core/memberships"
	"Harbor/internal/core/modlog"
	"Harbor/internal/core/people"
	"Harbor/internal/core/store"
)

type moderationService struct {
	uow  store.UnitOfWork
	auth *authorization.Authority
}

// NewService creates the community moderation workflow service.
func NewService(uow store.UnitOfWork, auth *authorization.Authority) Service {
	return &moderationService{uow: uow, auth: auth}
}

// unauthorized is the default authorization failure for moderation actions.
func unauthorized() error {
	return apperrors.Unauthorized("unauthorized")
}

// workflowErr tags domain sentinels with their transport kind. Errors that
// are already tagged pass through unchanged.
func workflowErr(err error) error {
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
	case errors.Is(err, people.ErrPersonNotFound):
		return apperrors.NotFound("person_not_found")
	default:
		return apperrors.Internal("internal_error", err)
	}
}

// HideCommunity hides or unhides a community from public view. Requires the
// admin remove-community permission; no community relationship is needed.
func (s *moderationService) HideCommunity(ctx context.Context, pr people.Principal, req HideCommunityRequest) (*CommunityResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, unauthorized()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionAdminRemoveCommunity, unauthorized); err != nil {
		return nil, err
	}

	var view communities.CommunityView
	err := s.uow.InCommunityTx(ctx, req.CommunityID, func(st store.Stores) error {
		community, err := st.Communities.GetByID(ctx, req.CommunityID)
		if err != nil {
			return err
		}

		if err := st.Communities.SetHidden(ctx, community.ID, req.Hidden); err != nil {
			return err
		}
		community.Hidden = req.Hidden

		adminID := person.ID
		communityID := community.ID
		_, err = st.ModLog.Create(ctx, &modlog.Entry{
			ActionType:    modlog.ActionModHideCommunity,
			EntityID:      community.ID,
			CommunityID:   &communityID,
			InstanceID:    community.InstanceID,
			AdminPersonID: &adminID,
			Hidden:        req.Hidden,
			Reason:        req.Reason,
		})
		if err != nil {
			return err
		}

		view = community.ToView()
		return nil
	})
	if err != nil {
		return nil, workflowErr(err)
	}

	return &CommunityResponse{CommunityView: view}, nil
}

// DeleteCommunity soft-deletes a community. Requires the delete-community
// permission and the admin role.
func (s *moderationService) DeleteCommunity(ctx context.Context, pr people.Principal, req DeleteCommunityRequest) (*CommunityResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, unauthorized()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionDeleteCommunity, unauthorized); err != nil {
		return nil, err
	}
	if !s.auth.IsAdmin(person) {
		return nil, apperrors.Forbidden("not_allowed")
	}

	var view communities.CommunityView
	err := s.uow.InCommunityTx(ctx, req.CommunityID, func(st store.Stores) error {
		community, err := st.Communities.GetByID(ctx, req.CommunityID)
		if err != nil {
			return err
		}

		if err := st.Communities.SetDeleted(ctx, community.ID, req.Deleted); err != nil {
			return err
		}
		community.Deleted = req.Deleted

		adminID := person.ID
		communityID := community.ID
		_, err = st.ModLog.Create(ctx, &modlog.Entry{
			ActionType:    modlog.ActionModRemoveCommunity,
			EntityID:      community.ID,
			CommunityID:   &communityID,
			InstanceID:    community.InstanceID,
			AdminPersonID: &adminID,
			Removed:       req.Deleted,
		})
		if err != nil {
			return err
		}

		view = community.ToView()
		return nil
	})
	if err != nil {
		return nil, workflowErr(err)
	}

	return &CommunityResponse{CommunityView: view}, nil
}

// RemoveCommunity is a moderator removal of a community. The caller must
// moderate or own the community in addition to holding the permission.
func (s *moderationService) RemoveCommunity(ctx context.Context, pr people.Principal, req RemoveCommunityRequest) (*CommunityResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, unauthorized()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionModeratorRemoveCommunity, unauthorized); err != nil {
		return nil, err
	}

	var view communities.CommunityView
	err := s.uow.InCommunityTx(ctx, req.CommunityID, func(st store.Stores) error {
		community, err := st.Communities.GetByID(ctx, req.CommunityID)
		if err != nil {
			return err
		}

		policy := memberships.NewPolicy(st.Links)
		allowed, err := policy.IsModeratorOrOwner(ctx, person.ID, community.ID)
		if err != nil {
			return err
		}
		if !allowed {
			return apperrors.Forbidden("not_allowed")
		}

		if err := st.Communities.SetRemoved(ctx, community.ID, req.Removed); err != nil {
			return err
		}
		community.Removed = req.Removed

		modID := person.ID
		communityID := community.ID
		_, err = st.ModLog.Create(ctx, &modlog.Entry{
			ActionType:         modlog.ActionModRemoveCommunity,
			EntityID:           community.ID,
			CommunityID:        &communityID,
			InstanceID:         community.InstanceID,
			ModerationPersonID: &modID,
			Removed:            req.Removed,
			Reason:             req.Reason,
		})
		if err != nil {
			return err
		}

		view = community.ToView()
		return nil
	})
	if err != nil {
		return nil, workflowErr(err)
	}

	return &CommunityResponse{CommunityView: view}, nil
}

// TransferCommunity transfers ownership to an existing moderator. The four
// edge mutations run inside one transaction holding the community row lock,
// so partial transfers are never observable.
func (s *moderationService) TransferCommunity(ctx context.Context, pr people.Principal, req TransferCommunityRequest) (*GetCommunityResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, unauthorized()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionModeratorTransferCommunity, unauthorized); err != nil {
		return nil, err
	}

	var view communities.CommunityView
	err := s.uow.InCommunityTx(ctx, req.CommunityID, func(st store.Stores) error {
		community, err := st.Communities.GetByID(ctx, req.CommunityID)
		if err != nil {
			return err
		}

		policy := memberships.NewPolicy(st.Links)

		isOwner, err := st.Links.HasLink(ctx, person.ID, community.ID, memberships.LinkOwner)
		if err != nil {
			return err
		}
		if !s.auth.IsAdmin(person) && !isOwner {
			return apperrors.Forbidden("not_allowed")
		}

		newOwner, err := st.People.GetByID(ctx, req.PersonID)
		if err != nil {
			return err
		}

		isModerator, err := st.Links.HasLink(ctx, newOwner.ID, community.ID, memberships.LinkModerator)
		if err != nil {
			return err
		}
		if !isModerator {
			return apperrors.BadRequest("person_not_moderator")
		}

		owners, err := st.Links.PersonsByCommunityAndTypes(ctx, community.ID, []memberships.LinkType{memberships.LinkOwner})
		if err != nil {
			return err
		}
		if len(owners) == 0 {
			return apperrors.NotFound("owner_not_found")
		}
		oldOwner := owners[0]

		if err := policy.TransferOwnership(ctx, oldOwner.ID, newOwner.ID, community.ID); err != nil {
			return err
		}

		modID := person.ID
		otherID := newOwner.ID
		communityID := community.ID
		_, err = st.ModLog.Create(ctx, &modlog.Entry{
			ActionType:         modlog.ActionModTransferCommunity,
			EntityID:           community.ID,
			CommunityID:        &communityID,
			InstanceID:         community.InstanceID,
			ModerationPersonID: &modID,
			OtherPersonID:      &otherID,
		})
		if err != nil {
			return err
		}

		view = community.ToView()
		return nil
	})
	if err != nil {
		return nil, workflowErr(err)
	}

	return &GetCommunityResponse{CommunityView: view}, nil
}

// BanPerson bans or unbans a person from a community. On ban with
// remove_data, open reports against the person are resolved before their
// content is removed, so resolution observes pre-removal state.
func (s *moderationService) BanPerson(ctx context.Context, pr people.Principal, req BanPersonRequest) (*BanFromCommunityResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, apperrors.Unauthorized("not_allowed")
	}
	if err := s.auth.RequirePermission(pr, people.PermissionModeratorBanUser, func() error {
		return apperrors.Unauthorized("not_allowed")
	}); err != nil {
		return nil, err
	}

	var personView people.PersonView
	err := s.uow.InCommunityTx(ctx, req.CommunityID, func(st store.Stores) error {
		community, err := st.Communities.GetByID(ctx, req.CommunityID)
		if err != nil {
			return err
		}

		policy := memberships.NewPolicy(st.Links)
		allowed, err := policy.IsModeratorOrOwner(ctx, person.ID, community.ID)
		if err != nil {
			return err
		}
		if !allowed {
			return apperrors.Forbidden("not_allowed")
		}

		target, err := st.People.GetByID(ctx, req.PersonID)
		if err != nil {
			return err
		}

		if req.Ban {
			if req.RemoveData {
				// Reports must be resolved while the reported content
				// still exists.
				if err := st.Posts.ResolveReportsByPersonAndCommunity(ctx, target.ID, community.ID, person.ID); err != nil {
					return err
				}
				if err := st.Comments.ResolveReportsByCreatorAndCommunity(ctx, target.ID, community.ID, person.ID); err != nil {
					return err
				}
				if err := st.Comments.RemoveAllByCommunityAndPerson(ctx, community.ID, target.ID, true); err != nil {
					return err
				}
				if err := st.Posts.RemoveAllByCommunityAndPerson(ctx, community.ID, target.ID, true); err != nil {
					return err
				}
			}
			if err := policy.Ban(ctx, target.ID, community.ID); err != nil {
				return err
			}
		} else {
			if err := st.Comments.RemoveAllByCommunityAndPerson(ctx, community.ID, target.ID, false); err != nil {
				return err
			}
			if err := st.Posts.RemoveAllByCommunityAndPerson(ctx, community.ID, target.ID, false); err != nil {
				return err
			}
			if err := policy.Unban(ctx, target.ID, community.ID); err != nil {
				return err
			}
		}

		modID := person.ID
		otherID := target.ID
		communityID := community.ID
		entry := &modlog.Entry{
			ActionType:         modlog.ActionModBanFromCommunity,
			EntityID:           community.ID,
			CommunityID:        &communityID,
			InstanceID:         community.InstanceID,
			ModerationPersonID: &modID,
			OtherPersonID:      &otherID,
			Banned:             req.Ban,
			Reason:             req.Reason,
		}
		if req.Expires != nil {
			expires := time.Unix(*req.Expires, 0).UTC()
			entry.Expires = &expires
		}
		if _, err := st.ModLog.Create(ctx, entry); err != nil {
			return err
		}

		personView = target.ToView()
		return nil
	})
	if err != nil {
		return nil, workflowErr(err)
	}

	return &BanFromCommunityResponse{Banned: req.Ban, PersonView: personView}, nil
}

// AddModerator adds or removes a community moderator and returns the
// resulting moderator roster. Idempotent in both directions.
func (s *moderationService) AddModerator(ctx context.Context, pr people.Principal, req AddModeratorRequest) (*AddModToCommunityResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, unauthorized()
	}
	perms := []people.Permission{
		people.PermissionModeratorAddModerator,
		people.PermissionAdminAddCommunityModerator,
	}
	if err := s.auth.RequireAnyPermission(pr, perms, unauthorized); err != nil {
		return nil, err
	}

	var moderatorViews []CommunityModeratorView
	err := s.uow.InCommunityTx(ctx, req.CommunityID, func(st store.Stores) error {
		community, err := st.Communities.GetByID(ctx, req.CommunityID)
		if err != nil {
			return err
		}

		policy := memberships.NewPolicy(st.Links)
		allowed, err := policy.IsModeratorOrOwner(ctx, person.ID, community.ID)
		if err != nil {
			return err
		}
		if !allowed {
			return apperrors.Forbidden("not_allowed")
		}

		target, err := st.People.GetByID(ctx, req.PersonID)
		if err != nil {
			return err
		}

		if req.Added {
			if err := policy.AddModerator(ctx, target.ID, community.ID); err != nil {
				return err
			}
		} else {
			if err := policy.RemoveModerator(ctx, target.ID, community.ID); err != nil {
				return err
			}
		}

		moderators, err := st.Links.PersonsByCommunityAndTypes(ctx, community.ID, []memberships.LinkType{memberships.LinkModerator})
		if err != nil {
			return err
		}
		communityView := community.ToView()
		moderatorViews = make([]CommunityModeratorView, 0, len(moderators))
		for i := range moderators {
			moderatorViews = append(moderatorViews, CommunityModeratorView{
				Community: communityView,
				Moderator: moderators[i].ToView(),
			})
		}

		modID := person.ID
		otherID := target.ID
		communityID := community.ID
		_, err = st.ModLog.Create(ctx, &modlog.Entry{
			ActionType:         modlog.ActionModAddCommunity,
			EntityID:           community.ID,
			CommunityID:        &communityID,
			InstanceID:         community.InstanceID,
			ModerationPersonID: &modID,
			OtherPersonID:      &otherID,
			Removed:            !req.Added,
		})
		return err
	})
	if err != nil {
		return nil, workflowErr(err)
	}

	return &AddModToCommunityResponse{Moderators: moderatorViews}, nil
}
