package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sfmk07/Flairv3/internal/domain/model"
	pgrepo "github.com/sfmk07/Flairv3/internal/repo/postgres"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("profile not found")
)

const (
	maxDisplayNameLen = 60
	maxCityLen        = 80
	maxBioLen         = 500
	maxTags           = 10
	maxTagLen         = 30
)

type ProfileStore interface {
	GetByID(ctx context.Context, userID int64) (model.UserProfile, error)
	UpdateProfile(
		ctx context.Context,
		userID int64,
		displayName string,
		city string,
		bio string,
		tags []string,
		isVisible bool,
	) error
}

type Service struct {
	store ProfileStore
}

type UpdateInput struct {
	DisplayName string
	City        string
	Bio         string
	Tags        []string
	IsVisible   bool
}

func NewService(store ProfileStore) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, userID int64) (model.UserProfile, error) {
	if userID <= 0 {
		return model.UserProfile{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}

	profile, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrUserNotFound) {
			return model.UserProfile{}, ErrNotFound
		}
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *Service) Update(ctx context.Context, userID int64, in UpdateInput) (model.UserProfile, error) {
	if userID <= 0 {
		return model.UserProfile{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}

	normalized, err := normalizeAndValidateInput(in)
	if err != nil {
		return model.UserProfile{}, err
	}

	if err := s.store.UpdateProfile(
		ctx,
		userID,
		normalized.DisplayName,
		normalized.City,
		normalized.Bio,
		normalized.Tags,
		normalized.IsVisible,
	); err != nil {
		if errors.Is(err, pgrepo.ErrUserNotFound) {
			return model.UserProfile{}, ErrNotFound
		}
		return model.UserProfile{}, fmt.Errorf("update profile: %w", err)
	}

	profile, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("reload profile: %w", err)
	}
	return profile, nil
}

func normalizeAndValidateInput(in UpdateInput) (UpdateInput, error) {
	out := UpdateInput{
		DisplayName: strings.TrimSpace(in.DisplayName),
		City:        strings.TrimSpace(in.City),
		Bio:         strings.TrimSpace(in.Bio),
		IsVisible:   in.IsVisible,
	}

	if out.DisplayName == "" {
		return UpdateInput{}, fmt.Errorf("display name is required: %w", ErrValidation)
	}
	if len(out.DisplayName) > maxDisplayNameLen {
		return UpdateInput{}, fmt.Errorf("display name is too long: %w", ErrValidation)
	}
	if len(out.City) > maxCityLen {
		return UpdateInput{}, fmt.Errorf("city is too long: %w", ErrValidation)
	}
	if len(out.Bio) > maxBioLen {
		return UpdateInput{}, fmt.Errorf("bio is too long: %w", ErrValidation)
	}

	if len(in.Tags) > maxTags {
		return UpdateInput{}, fmt.Errorf("too many tags: %w", ErrValidation)
	}
	seen := make(map[string]struct{}, len(in.Tags))
	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if len(tag) > maxTagLen {
			return UpdateInput{}, fmt.Errorf("tag %q is too long: %w", tag, ErrValidation)
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	out.Tags = tags

	return out, nil
}
