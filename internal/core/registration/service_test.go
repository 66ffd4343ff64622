package registration

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"Harbor/internal/core/apperrors"
	"Harbor/internal/core/people"
	"Harbor/internal/core/store"
)

type world struct {
	people map[int64]*people.Person
	apps   map[int64]*people.RegistrationApplication
	nextID int64
}

func newWorld() *world {
	return &world{
		people: map[int64]*people.Person{},
		apps:   map[int64]*people.RegistrationApplication{},
		nextID: 1,
	}
}

type fakePeople struct{ w *world }

func (f *fakePeople) GetByID(ctx context.Context, id int64) (*people.Person, error) {
	p, ok := f.w.people[id]
	if !ok {
		return nil, people.ErrPersonNotFound
	}
	return p, nil
}

func (f *fakePeople) GetByUsername(ctx context.Context, username string) (*people.Person, error) {
	for _, p := range f.w.people {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, people.ErrPersonNotFound
}

func (f *fakePeople) Create(ctx context.Context, person *people.Person) (*people.Person, error) {
	for _, existing := range f.w.people {
		if existing.Username == person.Username && existing.Local {
			return nil, people.ErrUsernameTaken
		}
	}
	person.ID = f.w.nextID
	f.w.nextID++
	f.w.people[person.ID] = person
	return person, nil
}

func (f *fakePeople) UpdateRole(ctx context.Context, personID, roleID int64) error { return nil }

func (f *fakePeople) ListByRoleName(ctx context.Context, roleName string) ([]people.Person, error) {
	return nil, nil
}

func (f *fakePeople) GetRoleByName(ctx context.Context, name string) (*people.Role, error) {
	if name != people.RoleRegistered {
		return nil, people.ErrRoleNotFound
	}
	return &people.Role{
		ID:   2,
		Name: people.RoleRegistered,
		Permissions: []people.Permission{
			people.PermissionReadCommunity,
			people.PermissionCommunityFollow,
		},
	}, nil
}

type fakeApps struct{ w *world }

func (f *fakeApps) Create(ctx context.Context, app *people.RegistrationApplication) (*people.RegistrationApplication, error) {
	app.ID = f.w.nextID
	f.w.nextID++
	f.w.apps[app.ID] = app
	return app, nil
}

func (f *fakeApps) GetByID(ctx context.Context, id int64) (*people.RegistrationApplication, error) {
	app, ok := f.w.apps[id]
	if !ok {
		return nil, people.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeApps) Update(ctx context.Context, app *people.RegistrationApplication) error {
	return nil
}

func (f *fakeApps) CountByStatus(ctx context.Context, status people.ApplicationStatus) (int64, error) {
	return 0, nil
}

func (f *fakeApps) ListByStatus(ctx context.Context, status people.ApplicationStatus) ([]people.RegistrationApplication, error) {
	return nil, nil
}

type fakeUOW struct{ w *world }

func (u *fakeUOW) InTx(ctx context.Context, fn func(s store.Stores) error) error {
	return fn(store.Stores{
		People:       &fakePeople{u.w},
		Applications: &fakeApps{u.w},
	})
}

func (u *fakeUOW) InCommunityTx(ctx context.Context, communityID int64, fn func(s store.Stores) error) error {
	return u.InTx(ctx, fn)
}

func newTestService(w *world) Service {
	return NewService(&fakeUOW{w}, "http://localhost:8085", 1)
}

func TestRegister_CreatesPersonAndPendingApplication(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
		Answer:   "I like forums",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if resp.PersonView.Username != "alice" {
		t.Errorf("Expected username alice, got %q", resp.PersonView.Username)
	}
	if resp.PersonView.ActivityPubID != "http://localhost:8085/u/alice" {
		t.Errorf("Unexpected actor id %q", resp.PersonView.ActivityPubID)
	}
	if resp.Application.Status != people.ApplicationPending {
		t.Errorf("Expected pending application, got %q", resp.Application.Status)
	}

	person := w.people[resp.PersonView.ID]
	if person == nil {
		t.Fatal("Expected person persisted")
	}
	if person.Role.Name != people.RoleRegistered {
		t.Errorf("Expected registered role, got %q", person.Role.Name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte("correct horse battery")); err != nil {
		t.Error("Expected stored hash to match the password")
	}
	if person.PasswordHash == "correct horse battery" {
		t.Error("Password must not be stored in clear")
	}

	app := w.apps[resp.Application.ID]
	if app == nil || app.PersonID != person.ID {
		t.Error("Expected application linked to the created person")
	}
}

func TestRegister_PasswordTooShort(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "short"})
	if apperrors.ReasonOf(err) != "password_too_short" {
		t.Errorf("Expected password_too_short, got %v", err)
	}
	if len(w.people) != 0 {
		t.Error("Expected no person created")
	}
}

func TestRegister_InvalidUsername(t *testing.T) {
	w := newWorld()
	svc := newTestService(w)

	for _, username := range []string{"", "ab", "has space", "bad!chars"} {
		_, err := svc.Register(context.Background(), RegisterRequest{Username: username, Password: "correct horse battery"})
		if apperrors.ReasonOf(err) != "invalid_username" {
			t.Errorf("Username %q: expected invalid_username, got %v", username, err)
		}
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	w := newWorld()
	w.people[1] = &people.Person{ID: 1, Username: "alice", Local: true}
	w.nextID = 2
	svc := newTestService(w)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "correct horse battery"})
	if apperrors.ReasonOf(err) != "username_taken" {
		t.Errorf("Expected username_taken, got %v", err)
	}
}
