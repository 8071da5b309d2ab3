package profiles

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sfmk07/Flairv3/internal/domain/model"
	pgrepo "github.com/sfmk07/Flairv3/internal/repo/postgres"
)

type stubStore struct {
	profiles map[int64]model.UserProfile

	updatedDisplayName string
	updatedCity        string
	updatedBio         string
	updatedTags        []string
	updatedVisible     bool
}

func (s *stubStore) GetByID(_ context.Context, userID int64) (model.UserProfile, error) {
	profile, ok := s.profiles[userID]
	if !ok {
		return model.UserProfile{}, pgrepo.ErrUserNotFound
	}
	return profile, nil
}

func (s *stubStore) UpdateProfile(
	_ context.Context,
	userID int64,
	displayName string,
	city string,
	bio string,
	tags []string,
	isVisible bool,
) error {
	profile, ok := s.profiles[userID]
	if !ok {
		return pgrepo.ErrUserNotFound
	}

	s.updatedDisplayName = displayName
	s.updatedCity = city
	s.updatedBio = bio
	s.updatedTags = tags
	s.updatedVisible = isVisible

	profile.DisplayName = displayName
	profile.City = city
	profile.Bio = bio
	profile.Tags = tags
	profile.IsVisible = isVisible
	s.profiles[userID] = profile
	return nil
}

func validUpdate() UpdateInput {
	return UpdateInput{
		DisplayName: "Alice",
		City:        "Paris",
		Bio:         "Bonjour",
		Tags:        []string{"Hiking", "  jazz ", "hiking"},
		IsVisible:   true,
	}
}

func TestUpdateNormalizesTags(t *testing.T) {
	store := &stubStore{profiles: map[int64]model.UserProfile{1: {ID: 1}}}
	svc := NewService(store)

	profile, err := svc.Update(context.Background(), 1, validUpdate())
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(store.updatedTags) != 2 || store.updatedTags[0] != "hiking" || store.updatedTags[1] != "jazz" {
		t.Fatalf("tags not normalized: %v", store.updatedTags)
	}
	if profile.DisplayName != "Alice" {
		t.Fatalf("unexpected display name %q", profile.DisplayName)
	}
}

func TestUpdateValidation(t *testing.T) {
	store := &stubStore{profiles: map[int64]model.UserProfile{1: {ID: 1}}}
	svc := NewService(store)

	tests := []struct {
		name   string
		mutate func(*UpdateInput)
	}{
		{"empty display name", func(in *UpdateInput) { in.DisplayName = "   " }},
		{"display name too long", func(in *UpdateInput) { in.DisplayName = strings.Repeat("a", 61) }},
		{"bio too long", func(in *UpdateInput) { in.Bio = strings.Repeat("b", 501) }},
		{"too many tags", func(in *UpdateInput) {
			in.Tags = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
		}},
		{"tag too long", func(in *UpdateInput) { in.Tags = []string{strings.Repeat("t", 31)} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validUpdate()
			tc.mutate(&in)
			if _, err := svc.Update(context.Background(), 1, in); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := NewService(&stubStore{profiles: map[int64]model.UserProfile{}})

	if _, err := svc.Update(context.Background(), 42, validUpdate()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet(t *testing.T) {
	store := &stubStore{profiles: map[int64]model.UserProfile{1: {ID: 1, DisplayName: "Alice"}}}
	svc := NewService(store)

	profile, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if profile.DisplayName != "Alice" {
		t.Fatalf("unexpected profile %+v", profile)
	}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
