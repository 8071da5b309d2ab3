package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	pgrepo "github.com/sfmk07/Flairv3/internal/repo/postgres"
	authsvc "github.com/sfmk07/Flairv3/internal/services/auth"
	matchessvc "github.com/sfmk07/Flairv3/internal/services/matches"

	"github.com/sfmk07/Flairv3/internal/domain/model"
)

func TestMatchesListReturnsItems(t *testing.T) {
	store := matchStoreStub{
		summaries: []pgrepo.MatchSummary{
			{ID: 7, OtherUserID: 2, DisplayName: "Bea", Age: 27, City: "Paris", CreatedAt: time.Now()},
		},
	}
	svc := matchessvc.NewService(matchessvc.Dependencies{
		Matches: store,
		Blocks:  blockStoreStub{},
		Reports: reportStoreStub{},
	}, matchessvc.Config{ListLimit: 50})
	h := NewMatchesHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	req = req.WithContext(authsvc.WithIdentity(context.Background(), authsvc.Identity{
		UserID: 1,
		SID:    "sid-1",
	}))

	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}

	var payload struct {
		Items []struct {
			ID          int64  `json:"id"`
			OtherUserID int64  `json:"other_user_id"`
			DisplayName string `json:"display_name"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Items) != 1 {
		t.Fatalf("unexpected item count: got %d want 1", len(payload.Items))
	}
	if payload.Items[0].ID != 7 || payload.Items[0].OtherUserID != 2 || payload.Items[0].DisplayName != "Bea" {
		t.Fatalf("unexpected item: %+v", payload.Items[0])
	}
}

func TestMatchesListRequiresIdentity(t *testing.T) {
	svc := matchessvc.NewService(matchessvc.Dependencies{
		Matches: matchStoreStub{},
		Blocks:  blockStoreStub{},
		Reports: reportStoreStub{},
	}, matchessvc.Config{})
	h := NewMatchesHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestMatchGetForbiddenForNonParticipant(t *testing.T) {
	store := matchStoreStub{
		match: model.Match{ID: 7, User1ID: 2, User2ID: 3, CreatedAt: time.Now()},
	}
	svc := matchessvc.NewService(matchessvc.Dependencies{
		Matches: store,
		Blocks:  blockStoreStub{},
		Reports: reportStoreStub{},
	}, matchessvc.Config{})
	h := NewMatchesHandler(svc, nil)

	req := newMatchRequest(http.MethodGet, "/matches/7", "7")
	req = req.WithContext(authsvc.WithIdentity(req.Context(), authsvc.Identity{
		UserID: 1,
		SID:    "sid-1",
	}))

	rr := httptest.NewRecorder()
	h.Get(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusForbidden)
	}

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Code != "FORBIDDEN" {
		t.Fatalf("unexpected error code: got %q want %q", payload.Code, "FORBIDDEN")
	}
}

func newMatchRequest(method, target, matchID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("match_id", matchID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

type matchStoreStub struct {
	match     model.Match
	summaries []pgrepo.MatchSummary
}

func (s matchStoreStub) GetByID(_ context.Context, matchID int64) (model.Match, error) {
	if s.match.ID == 0 || s.match.ID != matchID {
		return model.Match{}, pgrepo.ErrMatchNotFound
	}
	return s.match, nil
}

func (s matchStoreStub) ListForUser(context.Context, int64, int) ([]pgrepo.MatchSummary, error) {
	return s.summaries, nil
}

type blockStoreStub struct{}

func (blockStoreStub) Upsert(context.Context, int64, int64) error { return nil }

type reportStoreStub struct{}

func (reportStoreStub) Create(context.Context, int64, int64, string) error { return nil }
