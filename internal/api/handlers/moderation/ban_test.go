package moderation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Harbor/internal/core/apperrors"
	"Harbor/internal/core/moderation"
	"Harbor/internal/core/people"
)

// fakeService implements moderation.Service with function fields.
type fakeService struct {
	hideFunc     func(ctx context.Context, pr people.Principal, req moderation.HideCommunityRequest) (*moderation.CommunityResponse, error)
	deleteFunc   func(ctx context.Context, pr people.Principal, req moderation.DeleteCommunityRequest) (*moderation.CommunityResponse, error)
	removeFunc   func(ctx context.Context, pr people.Principal, req moderation.RemoveCommunityRequest) (*moderation.CommunityResponse, error)
	transferFunc func(ctx context.Context, pr people.Principal, req moderation.TransferCommunityRequest) (*moderation.GetCommunityResponse, error)
	banFunc      func(ctx context.Context, pr people.Principal, req moderation.BanPersonRequest) (*moderation.BanFromCommunityResponse, error)
	addModFunc   func(ctx context.Context, pr people.Principal, req moderation.AddModeratorRequest) (*moderation.AddModToCommunityResponse, error)
}

func (f *fakeService) HideCommunity(ctx context.Context, pr people.Principal, req moderation.HideCommunityRequest) (*moderation.CommunityResponse, error) {
	return f.hideFunc(ctx, pr, req)
}

func (f *fakeService) DeleteCommunity(ctx context.Context, pr people.Principal, req moderation.DeleteCommunityRequest) (*moderation.CommunityResponse, error) {
	return f.deleteFunc(ctx, pr, req)
}

func (f *fakeService) RemoveCommunity(ctx context.Context, pr people.Principal, req moderation.RemoveCommunityRequest) (*moderation.CommunityResponse, error) {
	return f.removeFunc(ctx, pr, req)
}

func (f *fakeService) TransferCommunity(ctx context.Context, pr people.Principal, req moderation.TransferCommunityRequest) (*moderation.GetCommunityResponse, error) {
	return f.transferFunc(ctx, pr, req)
}

func (f *fakeService) BanPerson(ctx context.Context, pr people.Principal, req moderation.BanPersonRequest) (*moderation.BanFromCommunityResponse, error) {
	return f.banFunc(ctx, pr, req)
}

func (f *fakeService) AddModerator(ctx context.Context, pr people.Principal, req moderation.AddModeratorRequest) (*moderation.AddModToCommunityResponse, error) {
	return f.addModFunc(ctx, pr, req)
}

func TestHandleBanUser_Success(t *testing.T) {
	svc := &fakeService{
		banFunc: func(ctx context.Context, pr people.Principal, req moderation.BanPersonRequest) (*moderation.BanFromCommunityResponse, error) {
			if req.CommunityID != 10 || req.PersonID != 3 || !req.Ban || !req.RemoveData {
				t.Errorf("Unexpected request: %+v", req)
			}
			return &moderation.BanFromCommunityResponse{
				PersonView: people.PersonView{ID: 3, Username: "mallory", Banned: true},
				Banned:     true,
			}, nil
		},
	}
	handler := NewBanHandler(svc)

	req := httptest.NewRequest("POST", "/api/v3/community/ban_user",
		strings.NewReader(`{"community_id": 10, "person_id": 3, "ban": true, "remove_data": true, "reason": "spam"}`))
	rr := httptest.NewRecorder()

	handler.HandleBanUser(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp moderation.BanFromCommunityResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Banned || resp.PersonView.ID != 3 {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestHandleBanUser_InvalidBody(t *testing.T) {
	handler := NewBanHandler(&fakeService{})

	req := httptest.NewRequest("POST", "/api/v3/community/ban_user", strings.NewReader("not json"))
	rr := httptest.NewRecorder()

	handler.HandleBanUser(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestHandleBanUser_MissingIDs(t *testing.T) {
	handler := NewBanHandler(&fakeService{})

	req := httptest.NewRequest("POST", "/api/v3/community/ban_user",
		strings.NewReader(`{"community_id": 10, "ban": true}`))
	rr := httptest.NewRecorder()

	handler.HandleBanUser(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestHandleBanUser_NotModerator(t *testing.T) {
	svc := &fakeService{
		banFunc: func(ctx context.Context, pr people.Principal, req moderation.BanPersonRequest) (*moderation.BanFromCommunityResponse, error) {
			return nil, apperrors.Forbidden("not_a_moderator")
		},
	}
	handler := NewBanHandler(svc)

	req := httptest.NewRequest("POST", "/api/v3/community/ban_user",
		strings.NewReader(`{"community_id": 10, "person_id": 3, "ban": true}`))
	rr := httptest.NewRecorder()

	handler.HandleBanUser(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", rr.Code)
	}

	var body apiError
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if body.Error != "not_a_moderator" {
		t.Errorf("Expected not_a_moderator, got %q", body.Error)
	}
}
