package people

import "time"

// ApplicationStatus is the review state of a registration application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// RegistrationApplication is created once per signup and reviewed by an
// admin. AdminID stays nil until the application is decided.
type RegistrationApplication struct {
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`
	Answer    string            `json:"answer" db:"answer"`
	Status    ApplicationStatus `json:"status" db:"status"`
	AdminID   *int64            `json:"adminId,omitempty" db:"admin_id"`
	ID        int64             `json:"id" db:"id"`
	PersonID  int64             `json:"personId" db:"person_id"`
}

// Decided reports whether the application has already been reviewed.
func (a *RegistrationApplication) Decided() bool {
	return a.Status != ApplicationPending
}

// RegistrationApplicationView is the API view returned by the admin review
// endpoints.
type RegistrationApplicationView struct {
	Answer   string            `json:"answer"`
	Status   ApplicationStatus `json:"status"`
	AdminID  *int64            `json:"admin_id,omitempty"`
	ID       int64             `json:"id"`
	PersonID int64             `json:"person_id"`
}

// ToView converts a RegistrationApplication to its API view.
func (a *RegistrationApplication) ToView() RegistrationApplicationView {
	return RegistrationApplicationView{
		ID:       a.ID,
		PersonID: a.PersonID,
		Answer:   a.Answer,
		Status:   a.Status,
		AdminID:  a.AdminID,
	}
}
