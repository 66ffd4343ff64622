package people

import "context"

// Repository defines the data access interface for people and roles.
// GetByID and GetByUsername return the person with their role loaded.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Person, error)
	GetByUsername(ctx context.Context, username string) (*Person, error)
	Create(ctx context.Context, person *Person) (*Person, error)
	UpdateRole(ctx context.Context, personID, roleID int64) error
	ListByRoleName(ctx context.Context, roleName string) ([]Person, error)
	GetRoleByName(ctx context.Context, name string) (*Role, error)
}

// ApplicationRepository defines data access for registration applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *RegistrationApplication) (*RegistrationApplication, error)
	GetByID(ctx context.Context, id int64) (*RegistrationApplication, error)
	Update(ctx context.Context, app *RegistrationApplication) error
	CountByStatus(ctx context.Context, status ApplicationStatus) (int64, error)
	ListByStatus(ctx context.Context, status ApplicationStatus) ([]RegistrationApplication, error)
}
