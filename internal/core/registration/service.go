// Package registration creates local accounts. A signup produces the person
// and a pending registration application in one transaction; the application
// is later decided by the admin workflow.
package registration

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"Harbor/internal/core/apperrors"
	"Harbor/internal/core/keys"
	"Harbor/internal/core/people"
	"Harbor/internal/core/store"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// RegisterRequest is a signup. Answer is the registration application text
// reviewed by an admin.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Answer   string `json:"answer,omitempty"`
}

// RegisterResponse reports the created person and pending application.
type RegisterResponse struct {
	PersonView  people.PersonView                  `json:"person_view"`
	Application people.RegistrationApplicationView `json:"registration_application"`
}

// Service registers new local accounts.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
}

type registrationService struct {
	uow        store.UnitOfWork
	baseURL    string
	instanceID int64
}

// NewService creates the registration service.
func NewService(uow store.UnitOfWork, baseURL string, instanceID int64) Service {
	return &registrationService{
		uow:        uow,
		baseURL:    strings.TrimRight(baseURL, "/"),
		instanceID: instanceID,
	}
}

// Register creates a person with the registered role, an actor keypair, and
// a pending registration application.
func (s *registrationService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if !usernameRegex.MatchString(req.Username) {
		return nil, apperrors.BadRequest("invalid_username")
	}
	if len(req.Password) < 10 {
		return nil, apperrors.BadRequest("password_too_short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("internal_error", err)
	}

	publicKey, privateKey, err := keys.GenerateActorKeyPair()
	if err != nil {
		return nil, apperrors.Internal("internal_error", err)
	}

	var personView people.PersonView
	var appView people.RegistrationApplicationView
	err = s.uow.InTx(ctx, func(st store.Stores) error {
		role, err := st.People.GetRoleByName(ctx, people.RoleRegistered)
		if err != nil {
			return err
		}

		person := &people.Person{
			ActivityPubID: fmt.Sprintf("%s/u/%s", s.baseURL, req.Username),
			Username:      req.Username,
			Email:         req.Email,
			PasswordHash:  string(hash),
			PublicKey:     publicKey,
			PrivateKey:    privateKey,
			InstanceID:    s.instanceID,
			RoleID:        role.ID,
			Local:         true,
		}
		created, err := st.People.Create(ctx, person)
		if err != nil {
			return err
		}
		created.Role = *role

		app, err := st.Applications.Create(ctx, &people.RegistrationApplication{
			PersonID: created.ID,
			Answer:   req.Answer,
			Status:   people.ApplicationPending,
		})
		if err != nil {
			return err
		}

		personView = created.ToView()
		appView = app.ToView()
		return nil
	})
	if err != nil {
		var ae *apperrors.Error
		if errors.As(err, &ae) {
			return nil, err
		}
		if errors.Is(err, people.ErrUsernameTaken) {
			return nil, apperrors.BadRequest("username_taken")
		}
		return nil, apperrors.Internal("internal_error", err)
	}

	return &RegisterResponse{PersonView: personView, Application: appView}, nil
}
