package admin

import (
	"context"
	"errors"
	"log"

	"Harbor/internal/core/apperrors"
	"Harbor/internal/core/authorization"
	"Harbor/internal/core/comments"
	"Harbor/internal/core/modlog"
	"Harbor/internal/core/people"
	"Harbor/internal/core/store"
)

type adminService struct {
	uow        store.UnitOfWork
	auth       *authorization.Authority
	instanceID int64
}

// NewService creates the admin workflow service. instanceID identifies the
// local instance for instance-level moderation log entries.
func NewService(uow store.UnitOfWork, auth *authorization.Authority, instanceID int64) Service {
	return &adminService{uow: uow, auth: auth, instanceID: instanceID}
}

func notAnAdmin() error {
	return apperrors.Unauthorized("not_an_admin")
}

func adminErr(err error) error {
	if err == nil {
		return nil
	}
	var ae *apperrors.Error
	if errors.As(err, &ae) {
		return err
	}
	switch {
	case errors.Is(err, people.ErrPersonNotFound):
		return apperrors.NotFound("person_not_found")
	case errors.Is(err, people.ErrApplicationNotFound):
		return apperrors.NotFound("registration_application_not_found")
	case errors.Is(err, comments.ErrCommentNotFound):
		return apperrors.NotFound("comment_not_found")
	default:
		return apperrors.Internal("internal_error", err)
	}
}

// AddAdmin reassigns the target's role to the admin role and logs the
// promotion. Promoting an existing admin is rejected.
func (s *adminService) AddAdmin(ctx context.Context, pr people.Principal, req AddAdminRequest) (*AddAdminResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, notAnAdmin()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionInstanceAddAdmin, notAnAdmin); err != nil {
		return nil, err
	}

	var admins []people.Person
	err := s.uow.InTx(ctx, func(st store.Stores) error {
		target, err := st.People.GetByID(ctx, req.PersonID)
		if err != nil {
			return err
		}
		if s.auth.IsAdmin(target) {
			return apperrors.BadRequest("already_admin")
		}

		adminRole, err := st.People.GetRoleByName(ctx, people.RoleAdmin)
		if err != nil {
			return err
		}
		if err := st.People.UpdateRole(ctx, target.ID, adminRole.ID); err != nil {
			return err
		}

		modID := person.ID
		otherID := target.ID
		_, err = st.ModLog.Create(ctx, &modlog.Entry{
			ActionType:         modlog.ActionModAdd,
			EntityID:           target.ID,
			InstanceID:         s.instanceID,
			ModerationPersonID: &modID,
			OtherPersonID:      &otherID,
			Removed:            !req.Added,
		})
		if err != nil {
			return err
		}

		admins, err = st.People.ListByRoleName(ctx, people.RoleAdmin)
		return err
	})
	if err != nil {
		return nil, adminErr(err)
	}

	views := make([]people.PersonView, 0, len(admins))
	for i := range admins {
		views = append(views, admins[i].ToView())
	}
	return &AddAdminResponse{Admins: views}, nil
}

// ApplicationCount returns the number of pending registration applications.
func (s *adminService) ApplicationCount(ctx context.Context, pr people.Principal) (*ApplicationCountResponse, error) {
	if _, ok := pr.Person(); !ok {
		return nil, notAnAdmin()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionInstanceRemoveAdmin, notAnAdmin); err != nil {
		return nil, err
	}

	var count int64
	err := s.uow.InTx(ctx, func(st store.Stores) error {
		var err error
		count, err = st.Applications.CountByStatus(ctx, people.ApplicationPending)
		return err
	})
	if err != nil {
		return nil, adminErr(err)
	}
	return &ApplicationCountResponse{RegistrationApplications: count}, nil
}

// ListApplications lists pending registration applications.
func (s *adminService) ListApplications(ctx context.Context, pr people.Principal) (*ListApplicationsResponse, error) {
	if _, ok := pr.Person(); !ok {
		return nil, notAnAdmin()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionRegistrationApplicationRead, notAnAdmin); err != nil {
		return nil, err
	}

	var apps []people.RegistrationApplication
	err := s.uow.InTx(ctx, func(st store.Stores) error {
		var err error
		apps, err = st.Applications.ListByStatus(ctx, people.ApplicationPending)
		return err
	})
	if err != nil {
		return nil, adminErr(err)
	}

	views := make([]people.RegistrationApplicationView, 0, len(apps))
	for i := range apps {
		views = append(views, apps[i].ToView())
	}
	return &ListApplicationsResponse{RegistrationApplications: views}, nil
}

// ReviewApplication decides a pending registration application and records
// the reviewing admin. Applications are one-shot: re-reviewing a decided
// application is rejected.
func (s *adminService) ReviewApplication(ctx context.Context, pr people.Principal, req ReviewApplicationRequest) (*RegistrationApplicationResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, notAnAdmin()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionRegistrationApplicationUpdate, notAnAdmin); err != nil {
		return nil, err
	}

	var view people.RegistrationApplicationView
	err := s.uow.InTx(ctx, func(st store.Stores) error {
		app, err := st.Applications.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if app.Decided() {
			return apperrors.BadRequest("application_already_decided")
		}

		if req.Approve {
			app.Status = people.ApplicationApproved
		} else {
			app.Status = people.ApplicationRejected
		}
		adminID := person.ID
		app.AdminID = &adminID

		if err := st.Applications.Update(ctx, app); err != nil {
			return err
		}
		view = app.ToView()
		return nil
	})
	if err != nil {
		return nil, adminErr(err)
	}

	return &RegistrationApplicationResponse{RegistrationApplication: view}, nil
}

// PurgePerson authorizes and then reports the purge as unimplemented. Unlike
// the soft delete flags, purging must remove the person and all history in
// one unit; until that exists no partial cleanup is performed.
func (s *adminService) PurgePerson(ctx context.Context, pr people.Principal, req PurgePersonRequest) (*PurgeItemResponse, error) {
	if _, ok := pr.Person(); !ok {
		return nil, notAnAdmin()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionPurgeUser, notAnAdmin); err != nil {
		return nil, err
	}
	return nil, apperrors.NotImplemented("purge_person_not_implemented")
}

// PurgeCommunity authorizes and then reports the purge as unimplemented.
func (s *adminService) PurgeCommunity(ctx context.Context, pr people.Principal, req PurgeCommunityRequest) (*PurgeItemResponse, error) {
	if _, ok := pr.Person(); !ok {
		return nil, notAnAdmin()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionPurgeCommunity, notAnAdmin); err != nil {
		return nil, err
	}
	return nil, apperrors.NotImplemented("purge_community_not_implemented")
}

// PurgePost authorizes and then reports the purge as unimplemented.
func (s *adminService) PurgePost(ctx context.Context, pr people.Principal, req PurgePostRequest) (*PurgeItemResponse, error) {
	if _, ok := pr.Person(); !ok {
		return nil, notAnAdmin()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionPurgePost, notAnAdmin); err != nil {
		return nil, err
	}
	return nil, apperrors.NotImplemented("purge_post_not_implemented")
}

// PurgeComment permanently deletes a comment and its history rows inside one
// transaction, then logs the purge.
func (s *adminService) PurgeComment(ctx context.Context, pr people.Principal, req PurgeCommentRequest) (*PurgeItemResponse, error) {
	person, ok := pr.Person()
	if !ok {
		return nil, notAnAdmin()
	}
	if err := s.auth.RequirePermission(pr, people.PermissionPurgeComment, notAnAdmin); err != nil {
		return nil, err
	}

	err := s.uow.InTx(ctx, func(st store.Stores) error {
		comment, err := st.Comments.GetByID(ctx, req.CommentID)
		if err != nil {
			return err
		}

		historyDeleted, err := st.Comments.DeleteHistoryByComment(ctx, comment.ID)
		if err != nil {
			return err
		}
		log.Printf("Purging comment %d: removed %d history rows", comment.ID, historyDeleted)

		if err := st.Comments.Delete(ctx, comment.ID); err != nil {
			return err
		}

		adminID := person.ID
		communityID := comment.CommunityID
		_, err = st.ModLog.Create(ctx, &modlog.Entry{
			ActionType:    modlog.ActionAdminPurgeComment,
			EntityID:      comment.ID,
			CommunityID:   &communityID,
			InstanceID:    s.instanceID,
			AdminPersonID: &adminID,
			Reason:        req.Reason,
		})
		return err
	})
	if err != nil {
		return nil, adminErr(err)
	}

	return &PurgeItemResponse{Success: true}, nil
}
