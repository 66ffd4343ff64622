package posts

import "time"

// Post is the minimal post entity the moderation workflows operate on.
type Post struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Title       string    `json:"title" db:"title"`
	Body        string    `json:"body,omitempty" db:"body"`
	ID          int64     `json:"id" db:"id"`
	CommunityID int64     `json:"communityId" db:"community_id"`
	PersonID    int64     `json:"personId" db:"person_id"`
	Removed     bool      `json:"removed" db:"removed"`
	Deleted     bool      `json:"deleted" db:"deleted"`
}

// PostReport is a user report against a post. Resolved reports carry the
// resolving moderator's id.
type PostReport struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Reason     string    `json:"reason" db:"reason"`
	ResolverID *int64    `json:"resolverId,omitempty" db:"resolver_id"`
	ID         int64     `json:"id" db:"id"`
	PostID     int64     `json:"postId" db:"post_id"`
	CreatorID  int64     `json:"creatorId" db:"creator_id"`
	Resolved   bool      `json:"resolved" db:"resolved"`
}
