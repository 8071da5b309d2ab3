package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/sfmk07/Flairv3/internal/domain/model"
	authsvc "github.com/sfmk07/Flairv3/internal/services/auth"
	likessvc "github.com/sfmk07/Flairv3/internal/services/likes"
)

type likeStoreStub struct{}

func (likeStoreStub) Insert(_ context.Context, _ pgx.Tx, fromUserID, toUserID int64) (model.Like, error) {
	return model.Like{FromUserID: fromUserID, ToUserID: toUserID}, nil
}

func (likeStoreStub) Exists(context.Context, pgx.Tx, int64, int64) (bool, error) {
	return false, nil
}

type likeMatchStoreStub struct{}

func (likeMatchStoreStub) CreateIfAbsent(context.Context, pgx.Tx, int64, int64) (model.Match, bool, error) {
	return model.Match{}, false, nil
}

func TestLikeRejectsSelfLike(t *testing.T) {
	svc := likessvc.NewService(likessvc.Dependencies{
		Likes:   likeStoreStub{},
		Matches: likeMatchStoreStub{},
	})
	h := NewLikeHandler(svc)

	body, err := json.Marshal(map[string]any{"target_id": 1})
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/likes", bytes.NewReader(body))
	req = req.WithContext(authsvc.WithIdentity(context.Background(), authsvc.Identity{
		UserID: 1,
		SID:    "sid-1",
	}))

	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusBadRequest)
	}

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected error code: got %q want %q", payload.Code, "VALIDATION_ERROR")
	}
}

func TestLikeRequiresIdentity(t *testing.T) {
	svc := likessvc.NewService(likessvc.Dependencies{
		Likes:   likeStoreStub{},
		Matches: likeMatchStoreStub{},
	})
	h := NewLikeHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/likes", bytes.NewReader([]byte(`{"target_id":2}`)))
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestLikeRejectsUnknownFields(t *testing.T) {
	svc := likessvc.NewService(likessvc.Dependencies{
		Likes:   likeStoreStub{},
		Matches: likeMatchStoreStub{},
	})
	h := NewLikeHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/likes", bytes.NewReader([]byte(`{"target_id":2,"bogus":true}`)))
	req = req.WithContext(authsvc.WithIdentity(context.Background(), authsvc.Identity{
		UserID: 1,
		SID:    "sid-1",
	}))

	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusBadRequest)
	}
}
