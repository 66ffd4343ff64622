package comments

import "time"

// Comment is the minimal comment entity the moderation workflows operate on.
type Comment struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Content     string    `json:"content" db:"content"`
	ID          int64     `json:"id" db:"id"`
	PostID      int64     `json:"postId" db:"post_id"`
	CommunityID int64     `json:"communityId" db:"community_id"`
	PersonID    int64     `json:"personId" db:"person_id"`
	Removed     bool      `json:"removed" db:"removed"`
	Deleted     bool      `json:"deleted" db:"deleted"`
}

// CommentReport is a user report against a comment.
type CommentReport struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Reason     string    `json:"reason" db:"reason"`
	ResolverID *int64    `json:"resolverId,omitempty" db:"resolver_id"`
	ID         int64     `json:"id" db:"id"`
	CommentID  int64     `json:"commentId" db:"comment_id"`
	CreatorID  int64     `json:"creatorId" db:"creator_id"`
	Resolved   bool      `json:"resolved" db:"resolved"`
}

// CommentHistory is one archived revision of a comment's content. Purging a
// comment deletes its history rows before the comment itself.
type CommentHistory struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
	CommentID int64     `json:"commentId" db:"comment_id"`
}
