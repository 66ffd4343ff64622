package memberships

import (
	"context"
	"fmt"
)

// Policy owns the cross-type exclusivity rules for membership edges:
// banned and follower are mutually exclusive, blocked and follower are
// mutually exclusive, and a community has at most one owner. Workflows must
// go through Policy instead of mutating the store directly, and must run it
// inside a transaction that serializes edge mutations for the community.
type Policy struct {
	store Store
}

// NewPolicy creates a membership policy over the given store.
func NewPolicy(store Store) *Policy {
	return &Policy{store: store}
}

// Follow adds a follower edge, clearing a block if one exists.
func (p *Policy) Follow(ctx context.Context, personID, communityID int64) error {
	blocked, err := p.store.HasLink(ctx, personID, communityID, LinkBlocked)
	if err != nil {
		return fmt.Errorf("checking block: %w", err)
	}
	if blocked {
		if err := p.store.RemoveLink(ctx, personID, communityID, LinkBlocked); err != nil {
			return fmt.Errorf("clearing block: %w", err)
		}
	}
	return p.store.AddLink(ctx, personID, communityID, LinkFollower)
}

// Unfollow removes the follower edge if present.
func (p *Policy) Unfollow(ctx context.Context, personID, communityID int64) error {
	return p.store.RemoveLink(ctx, personID, communityID, LinkFollower)
}

// Block adds a blocked edge, clearing a follow if one exists.
func (p *Policy) Block(ctx context.Context, personID, communityID int64) error {
	following, err := p.store.HasLink(ctx, personID, communityID, LinkFollower)
	if err != nil {
		return fmt.Errorf("checking follow: %w", err)
	}
	if following {
		if err := p.store.RemoveLink(ctx, personID, communityID, LinkFollower); err != nil {
			return fmt.Errorf("clearing follow: %w", err)
		}
	}
	return p.store.AddLink(ctx, personID, communityID, LinkBlocked)
}

// Unblock removes the blocked edge if present.
func (p *Policy) Unblock(ctx context.Context, personID, communityID int64) error {
	return p.store.RemoveLink(ctx, personID, communityID, LinkBlocked)
}

// Ban adds a banned edge, clearing follower status first. Idempotent.
func (p *Policy) Ban(ctx context.Context, personID, communityID int64) error {
	following, err := p.store.HasLink(ctx, personID, communityID, LinkFollower)
	if err != nil {
		return fmt.Errorf("checking follow: %w", err)
	}
	if following {
		if err := p.store.RemoveLink(ctx, personID, communityID, LinkFollower); err != nil {
			return fmt.Errorf("clearing follow: %w", err)
		}
	}
	return p.store.AddLink(ctx, personID, communityID, LinkBanned)
}

// Unban removes the banned edge if present.
func (p *Policy) Unban(ctx context.Context, personID, communityID int64) error {
	return p.store.RemoveLink(ctx, personID, communityID, LinkBanned)
}

// AddModerator adds a moderator edge. Idempotent.
func (p *Policy) AddModerator(ctx context.Context, personID, communityID int64) error {
	return p.store.AddLink(ctx, personID, communityID, LinkModerator)
}

// RemoveModerator removes the moderator edge if present.
func (p *Policy) RemoveModerator(ctx context.Context, personID, communityID int64) error {
	return p.store.RemoveLink(ctx, personID, communityID, LinkModerator)
}

// TransferOwnership demotes the old owner to moderator and promotes the new
// owner from moderator. The edge mutation order is significant for the
// single-owner invariant and must execute inside one transaction:
// add moderator(old), remove owner(old), add owner(new), remove moderator(new).
func (p *Policy) TransferOwnership(ctx context.Context, oldOwnerID, newOwnerID, communityID int64) error {
	if err := p.store.AddLink(ctx, oldOwnerID, communityID, LinkModerator); err != nil {
		return fmt.Errorf("demoting old owner: %w", err)
	}
	if err := p.store.RemoveLink(ctx, oldOwnerID, communityID, LinkOwner); err != nil {
		return fmt.Errorf("removing old owner edge: %w", err)
	}
	if err := p.store.AddLink(ctx, newOwnerID, communityID, LinkOwner); err != nil {
		return fmt.Errorf("promoting new owner: %w", err)
	}
	if err := p.store.RemoveLink(ctx, newOwnerID, communityID, LinkModerator); err != nil {
		return fmt.Errorf("removing new owner moderator edge: %w", err)
	}
	return nil
}

// GrantFounder gives the community creator the owner and follower edges.
func (p *Policy) GrantFounder(ctx context.Context, personID, communityID int64) error {
	if err := p.store.AddLink(ctx, personID, communityID, LinkOwner); err != nil {
		return fmt.Errorf("adding owner edge: %w", err)
	}
	return p.store.AddLink(ctx, personID, communityID, LinkFollower)
}

// IsModeratorOrOwner reports whether the person holds a moderator or owner
// edge for the community.
func (p *Policy) IsModeratorOrOwner(ctx context.Context, personID, communityID int64) (bool, error) {
	isMod, err := p.store.HasLink(ctx, personID, communityID, LinkModerator)
	if err != nil {
		return false, err
	}
	if isMod {
		return true, nil
	}
	return p.store.HasLink(ctx, personID, communityID, LinkOwner)
}
