package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/sfmk07/Flairv3/internal/domain/model"
	"github.com/sfmk07/Flairv3/internal/domain/rules"
	pgrepo "github.com/sfmk07/Flairv3/internal/repo/postgres"
)

const DefaultMaxDistanceKM = 20.0

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("requester not found")
)

type ProfileStore interface {
	GetByID(ctx context.Context, userID int64) (model.UserProfile, error)
	ListVisible(ctx context.Context, excludeUserID int64) ([]model.UserProfile, error)
}

type LikeStore interface {
	ListLikedIDs(ctx context.Context, userID int64) ([]int64, error)
}

type BlockStore interface {
	ListBlockedIDs(ctx context.Context, blockerID int64) ([]int64, error)
}

type Config struct {
	MaxDistanceKM float64
}

type Dependencies struct {
	Profiles ProfileStore
	Likes    LikeStore
	Blocks   BlockStore
}

type Service struct {
	deps Dependencies
	cfg  Config
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.MaxDistanceKM <= 0 {
		cfg.MaxDistanceKM = DefaultMaxDistanceKM
	}
	return &Service{deps: deps, cfg: cfg}
}

// SelectCandidates filters an in-memory pool down to the profiles the
// requester may be shown. Rules apply in order: self, already liked and
// blocked ids are excluded; profiles without coordinates on either side
// are dropped; candidates farther than maxDistanceKM are dropped, with
// the boundary itself kept; finally the orientation table decides gender
// compatibility. Pool order is preserved.
func SelectCandidates(
	requester model.UserProfile,
	pool []model.UserProfile,
	likedIDs []int64,
	blockedIDs []int64,
	maxDistanceKM float64,
) []model.UserProfile {
	excluded := make(map[int64]struct{}, len(likedIDs)+len(blockedIDs))
	for _, id := range likedIDs {
		excluded[id] = struct{}{}
	}
	for _, id := range blockedIDs {
		excluded[id] = struct{}{}
	}

	out := make([]model.UserProfile, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == requester.ID {
			continue
		}
		if _, skip := excluded[candidate.ID]; skip {
			continue
		}
		if !requester.HasCoordinates() || !candidate.HasCoordinates() {
			continue
		}

		distance := rules.HaversineKM(*requester.Lat, *requester.Lon, *candidate.Lat, *candidate.Lon)
		if distance > maxDistanceKM {
			continue
		}

		if !rules.Compatible(requester.Gender, candidate.Gender, requester.Orientation) {
			continue
		}

		out = append(out, candidate)
	}
	return out
}

// Discover loads the requester's context and returns their current
// candidate feed. An empty slice means the pool is exhausted, not an error.
func (s *Service) Discover(ctx context.Context, requesterID int64) ([]model.UserProfile, error) {
	if requesterID <= 0 {
		return nil, fmt.Errorf("invalid requester id: %w", ErrValidation)
	}

	requester, err := s.deps.Profiles.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get requester: %w", err)
	}

	pool, err := s.deps.Profiles.ListVisible(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list visible profiles: %w", err)
	}

	likedIDs, err := s.deps.Likes.ListLikedIDs(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list liked ids: %w", err)
	}

	blockedIDs, err := s.deps.Blocks.ListBlockedIDs(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list blocked ids: %w", err)
	}

	return SelectCandidates(requester, pool, likedIDs, blockedIDs, s.cfg.MaxDistanceKM), nil
}
