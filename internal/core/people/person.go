package people

import (
	"time"
)

// Person represents a registered local account or a federated actor indexed
// from a remote instance. The ActivityPubID is immutable once assigned.
type Person struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
	ActivityPubID string    `json:"activityPubId" db:"activity_pub_id"`
	Username      string    `json:"username" db:"username"`
	DisplayName   string    `json:"displayName,omitempty" db:"display_name"`
	Email         string    `json:"-" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	PublicKey     string    `json:"-" db:"public_key"`
	PrivateKey    string    `json:"-" db:"private_key"`
	Role          Role      `json:"-" db:"-"`
	ID            int64     `json:"id" db:"id"`
	InstanceID    int64     `json:"instanceId" db:"instance_id"`
	RoleID        int64     `json:"-" db:"role_id"`
	Local         bool      `json:"local" db:"local"`
	Deleted       bool      `json:"deleted" db:"deleted"`
}

// PersonView is the API view for a person in workflow responses.
// Banned here reflects the instance-wide banned role, not community bans.
type PersonView struct {
	ActivityPubID string `json:"actor_id"`
	Username      string `json:"name"`
	DisplayName   string `json:"display_name,omitempty"`
	ID            int64  `json:"id"`
	Local         bool   `json:"local"`
	Banned        bool   `json:"banned"`
	Deleted       bool   `json:"deleted"`
	Admin         bool   `json:"admin"`
}

// ToView converts a Person to its API view.
func (p *Person) ToView() PersonView {
	return PersonView{
		ID:            p.ID,
		ActivityPubID: p.ActivityPubID,
		Username:      p.Username,
		DisplayName:   p.DisplayName,
		Local:         p.Local,
		Banned:        p.Role.Name == RoleBanned,
		Deleted:       p.Deleted,
		Admin:         p.Role.Name == RoleAdmin,
	}
}
