package community

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Harbor/internal/core/apperrors"
	"Harbor/internal/core/communities"
	"Harbor/internal/core/participation"
	"Harbor/internal/core/people"
)

// fakeService implements participation.Service with function fields.
type fakeService struct {
	createFunc func(ctx context.Context, pr people.Principal, req participation.CreateCommunityRequest) (*participation.CommunityResponse, error)
	followFunc func(ctx context.Context, pr people.Principal, req participation.FollowCommunityRequest) (*participation.CommunityResponse, error)
	blockFunc  func(ctx context.Context, pr people.Principal, req participation.BlockCommunityRequest) (*participation.CommunityResponse, error)
	getFunc    func(ctx context.Context, identifier string) (*participation.CommunityResponse, error)
}

func (f *fakeService) CreateCommunity(ctx context.Context, pr people.Principal, req participation.CreateCommunityRequest) (*participation.CommunityResponse, error) {
	return f.createFunc(ctx, pr, req)
}

func (f *fakeService) FollowCommunity(ctx context.Context, pr people.Principal, req participation.FollowCommunityRequest) (*participation.CommunityResponse, error) {
	return f.followFunc(ctx, pr, req)
}

func (f *fakeService) BlockCommunity(ctx context.Context, pr people.Principal, req participation.BlockCommunityRequest) (*participation.CommunityResponse, error) {
	return f.blockFunc(ctx, pr, req)
}

func (f *fakeService) GetCommunity(ctx context.Context, identifier string) (*participation.CommunityResponse, error) {
	return f.getFunc(ctx, identifier)
}

func TestHandleFollow_Success(t *testing.T) {
	svc := &fakeService{
		followFunc: func(ctx context.Context, pr people.Principal, req participation.FollowCommunityRequest) (*participation.CommunityResponse, error) {
			if req.CommunityID != 10 || !req.Follow {
				t.Errorf("Unexpected request: %+v", req)
			}
			return &participation.CommunityResponse{
				CommunityView: communities.CommunityView{ID: 10, Name: "gardening"},
			}, nil
		},
	}
	handler := NewFollowHandler(svc)

	req := httptest.NewRequest("POST", "/api/v3/community/follow",
		strings.NewReader(`{"community_id": 10, "follow": true}`))
	rr := httptest.NewRecorder()

	handler.HandleFollow(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp participation.CommunityResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.CommunityView.Name != "gardening" {
		t.Errorf("Expected gardening, got %q", resp.CommunityView.Name)
	}
}

func TestHandleFollow_InvalidBody(t *testing.T) {
	handler := NewFollowHandler(&fakeService{})

	req := httptest.NewRequest("POST", "/api/v3/community/follow", strings.NewReader("not json"))
	rr := httptest.NewRecorder()

	handler.HandleFollow(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestHandleFollow_MissingCommunityID(t *testing.T) {
	handler := NewFollowHandler(&fakeService{})

	req := httptest.NewRequest("POST", "/api/v3/community/follow", strings.NewReader(`{"follow": true}`))
	rr := httptest.NewRecorder()

	handler.HandleFollow(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestHandleFollow_Banned(t *testing.T) {
	svc := &fakeService{
		followFunc: func(ctx context.Context, pr people.Principal, req participation.FollowCommunityRequest) (*participation.CommunityResponse, error) {
			return nil, apperrors.Forbidden("banned_from_community")
		},
	}
	handler := NewFollowHandler(svc)

	req := httptest.NewRequest("POST", "/api/v3/community/follow",
		strings.NewReader(`{"community_id": 10, "follow": true}`))
	rr := httptest.NewRecorder()

	handler.HandleFollow(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", rr.Code)
	}

	var body apiError
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if body.Error != "banned_from_community" {
		t.Errorf("Expected banned_from_community, got %q", body.Error)
	}
}

func TestHandleFollow_CommunityNotFound(t *testing.T) {
	svc := &fakeService{
		followFunc: func(ctx context.Context, pr people.Principal, req participation.FollowCommunityRequest) (*participation.CommunityResponse, error) {
			return nil, apperrors.NotFound("community_not_found")
		},
	}
	handler := NewFollowHandler(svc)

	req := httptest.NewRequest("POST", "/api/v3/community/follow",
		strings.NewReader(`{"community_id": 999, "follow": true}`))
	rr := httptest.NewRecorder()

	handler.HandleFollow(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rr.Code)
	}
}
