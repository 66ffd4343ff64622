package communities

import "time"

// Community represents a topical space hosted on an instance. Federation
// surfaces only through the ActivityPubID and the actor keypair; delivery is
// handled elsewhere.
type Community struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
	ActivityPubID string    `json:"activityPubId" db:"activity_pub_id"`
	Name          string    `json:"name" db:"name"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description,omitempty" db:"description"`
	PublicKey     string    `json:"-" db:"public_key"`
	PrivateKey    string    `json:"-" db:"private_key"`
	ID            int64     `json:"id" db:"id"`
	InstanceID    int64     `json:"instanceId" db:"instance_id"`
	Local         bool      `json:"local" db:"local"`
	Hidden        bool      `json:"hidden" db:"hidden"`
	Deleted       bool      `json:"deleted" db:"deleted"`
	Removed       bool      `json:"removed" db:"removed"`
	NSFW          bool      `json:"nsfw" db:"nsfw"`
}

// CommunityView is the API view for a community in workflow responses.
type CommunityView struct {
	ActivityPubID string `json:"actor_id"`
	Name          string `json:"name"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	ID            int64  `json:"id"`
	InstanceID    int64  `json:"instance_id"`
	Local         bool   `json:"local"`
	Hidden        bool   `json:"hidden"`
	Deleted       bool   `json:"deleted"`
	Removed       bool   `json:"removed"`
	NSFW          bool   `json:"nsfw"`
}

// ToView converts a Community to its API view.
func (c *Community) ToView() CommunityView {
	return CommunityView{
		ID:            c.ID,
		ActivityPubID: c.ActivityPubID,
		Name:          c.Name,
		Title:         c.Title,
		Description:   c.Description,
		InstanceID:    c.InstanceID,
		Local:         c.Local,
		Hidden:        c.Hidden,
		Deleted:       c.Deleted,
		Removed:       c.Removed,
		NSFW:          c.NSFW,
	}
}
