package memberships

import (
	"context"
	"fmt"
	"testing"

	"Harbor/internal/core/people"
)

// memStore is an in-memory link store that records mutation order.
type memStore struct {
	links map[string]bool
	ops   []string
}

func newMemStore() *memStore {
	return &memStore{links: map[string]bool{}}
}

func key(personID, communityID int64, t LinkType) string {
	return fmt.Sprintf("%d:%d:%s", personID, communityID, t)
}

func (s *memStore) HasLink(ctx context.Context, personID, communityID int64, t LinkType) (bool, error) {
	return s.links[key(personID, communityID, t)], nil
}

func (s *memStore) AddLink(ctx context.Context, personID, communityID int64, t LinkType) error {
	s.links[key(personID, communityID, t)] = true
	s.ops = append(s.ops, "add:"+key(personID, communityID, t))
	return nil
}

func (s *memStore) RemoveLink(ctx context.Context, personID, communityID int64, t LinkType) error {
	delete(s.links, key(personID, communityID, t))
	s.ops = append(s.ops, "remove:"+key(personID, communityID, t))
	return nil
}

func (s *memStore) PersonsByCommunityAndTypes(ctx context.Context, communityID int64, types []LinkType) ([]people.Person, error) {
	return nil, nil
}

func (s *memStore) has(personID, communityID int64, t LinkType) bool {
	return s.links[key(personID, communityID, t)]
}

func TestFollow_ClearsBlock(t *testing.T) {
	store := newMemStore()
	policy := NewPolicy(store)
	ctx := context.Background()

	if err := policy.Block(ctx, 1, 10); err != nil {
		t.Fatalf("Block failed: %v", err)
	}
	if err := policy.Follow(ctx, 1, 10); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}

	if store.has(1, 10, LinkBlocked) {
		t.Error("Expected block to be cleared by follow")
	}
	if !store.has(1, 10, LinkFollower) {
		t.Error("Expected follower edge")
	}
}

func TestBlock_ClearsFollow(t *testing.T) {
	store := newMemStore()
	policy := NewPolicy(store)
	ctx := context.Background()

	if err := policy.Follow(ctx, 1, 10); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if err := policy.Block(ctx, 1, 10); err != nil {
		t.Fatalf("Block failed: %v", err)
	}

	if store.has(1, 10, LinkFollower) {
		t.Error("Expected follow to be cleared by block")
	}
	if !store.has(1, 10, LinkBlocked) {
		t.Error("Expected blocked edge")
	}
}

func TestBan_ClearsFollower(t *testing.T) {
	store := newMemStore()
	policy := NewPolicy(store)
	ctx := context.Background()

	if err := policy.Follow(ctx, 1, 10); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if err := policy.Ban(ctx, 1, 10); err != nil {
		t.Fatalf("Ban failed: %v", err)
	}

	if store.has(1, 10, LinkFollower) {
		t.Error("Expected follower edge to be cleared by ban")
	}
	if !store.has(1, 10, LinkBanned) {
		t.Error("Expected banned edge")
	}

	// Banning again is a no-op, not an error
	if err := policy.Ban(ctx, 1, 10); err != nil {
		t.Fatalf("Repeated ban failed: %v", err)
	}
}

func TestUnban_RemovesBannedEdge(t *testing.T) {
	store := newMemStore()
	policy := NewPolicy(store)
	ctx := context.Background()

	if err := policy.Ban(ctx, 1, 10); err != nil {
		t.Fatalf("Ban failed: %v", err)
	}
	if err := policy.Unban(ctx, 1, 10); err != nil {
		t.Fatalf("Unban failed: %v", err)
	}
	if store.has(1, 10, LinkBanned) {
		t.Error("Expected banned edge to be removed")
	}

	// Unbanning an unbanned person is a no-op
	if err := policy.Unban(ctx, 1, 10); err != nil {
		t.Fatalf("Repeated unban failed: %v", err)
	}
}

func TestTransferOwnership_EndState(t *testing.T) {
	store := newMemStore()
	policy := NewPolicy(store)
	ctx := context.Background()

	// Old owner owns, new owner moderates
	if err := policy.GrantFounder(ctx, 1, 10); err != nil {
		t.Fatalf("GrantFounder failed: %v", err)
	}
	if err := policy.AddModerator(ctx, 2, 10); err != nil {
		t.Fatalf("AddModerator failed: %v", err)
	}

	if err := policy.TransferOwnership(ctx, 1, 2, 10); err != nil {
		t.Fatalf("TransferOwnership failed: %v", err)
	}

	if !store.has(2, 10, LinkOwner) {
		t.Error("Expected new owner to hold the owner edge")
	}
	if store.has(2, 10, LinkModerator) {
		t.Error("Expected new owner's moderator edge to be removed")
	}
	if store.has(1, 10, LinkOwner) {
		t.Error("Expected old owner's owner edge to be removed")
	}
	if !store.has(1, 10, LinkModerator) {
		t.Error("Expected old owner to be demoted to moderator")
	}
}

func TestTransferOwnership_EdgeOrder(t *testing.T) {
	store := newMemStore()
	policy := NewPolicy(store)
	ctx := context.Background()

	store.links[key(1, 10, LinkOwner)] = true
	store.links[key(2, 10, LinkModerator)] = true
	store.ops = nil

	if err := policy.TransferOwnership(ctx, 1, 2, 10); err != nil {
		t.Fatalf("TransferOwnership failed: %v", err)
	}

	want := []string{
		"add:" + key(1, 10, LinkModerator),
		"remove:" + key(1, 10, LinkOwner),
		"add:" + key(2, 10, LinkOwner),
		"remove:" + key(2, 10, LinkModerator),
	}
	if len(store.ops) != len(want) {
		t.Fatalf("Expected %d mutations, got %d: %v", len(want), len(store.ops), store.ops)
	}
	for i := range want {
		if store.ops[i] != want[i] {
			t.Errorf("Mutation %d: expected %q, got %q", i, want[i], store.ops[i])
		}
	}
}

func TestGrantFounder(t *testing.T) {
	store := newMemStore()
	policy := NewPolicy(store)
	ctx := context.Background()

	if err := policy.GrantFounder(ctx, 1, 10); err != nil {
		t.Fatalf("GrantFounder failed: %v", err)
	}
	if !store.has(1, 10, LinkOwner) || !store.has(1, 10, LinkFollower) {
		t.Error("Expected founder to hold owner and follower edges")
	}
}

func TestIsModeratorOrOwner(t *testing.T) {
	store := newMemStore()
	policy := NewPolicy(store)
	ctx := context.Background()

	ok, err := policy.IsModeratorOrOwner(ctx, 1, 10)
	if err != nil {
		t.Fatalf("IsModeratorOrOwner failed: %v", err)
	}
	if ok {
		t.Error("Expected no relationship")
	}

	store.links[key(1, 10, LinkModerator)] = true
	if ok, _ = policy.IsModeratorOrOwner(ctx, 1, 10); !ok {
		t.Error("Expected moderator to qualify")
	}

	store.links = map[string]bool{key(1, 10, LinkOwner): true}
	if ok, _ = policy.IsModeratorOrOwner(ctx, 1, 10); !ok {
		t.Error("Expected owner to qualify")
	}
}
