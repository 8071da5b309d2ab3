package matches

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sfmk07/Flairv3/internal/domain/model"
	pgrepo "github.com/sfmk07/Flairv3/internal/repo/postgres"
)

const (
	defaultListLimit = 100
	maxReasonLen     = 300
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("match not found")
	ErrForbidden  = errors.New("not a participant of this match")
)

type MatchStore interface {
	GetByID(ctx context.Context, matchID int64) (model.Match, error)
	ListForUser(ctx context.Context, userID int64, limit int) ([]pgrepo.MatchSummary, error)
}

type BlockStore interface {
	Upsert(ctx context.Context, blockerID, blockedID int64) error
}

type ReportStore interface {
	Create(ctx context.Context, reporterID, reportedUserID int64, reason string) error
}

type Dependencies struct {
	Matches MatchStore
	Blocks  BlockStore
	Reports ReportStore
}

type Config struct {
	ListLimit int
}

type Service struct {
	matches MatchStore
	blocks  BlockStore
	reports ReportStore
	cfg     Config
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = defaultListLimit
	}
	return &Service{
		matches: deps.Matches,
		blocks:  deps.Blocks,
		reports: deps.Reports,
		cfg:     cfg,
	}
}

func (s *Service) List(ctx context.Context, userID int64) ([]pgrepo.MatchSummary, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id: %w", ErrValidation)
	}

	items, err := s.matches.ListForUser(ctx, userID, s.cfg.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// Get returns a match only to its participants.
func (s *Service) Get(ctx context.Context, userID, matchID int64) (model.Match, error) {
	if userID <= 0 || matchID <= 0 {
		return model.Match{}, fmt.Errorf("invalid id: %w", ErrValidation)
	}

	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrMatchNotFound) {
			return model.Match{}, ErrNotFound
		}
		return model.Match{}, fmt.Errorf("get match: %w", err)
	}

	if match.User1ID != userID && match.User2ID != userID {
		return model.Match{}, ErrForbidden
	}
	return match, nil
}

// Block removes the target from the blocker's candidate pool. The edge is
// directed: the blocked user can still encounter the blocker.
func (s *Service) Block(ctx context.Context, blockerID, blockedID int64) error {
	if blockerID <= 0 || blockedID <= 0 || blockerID == blockedID {
		return fmt.Errorf("invalid block pair: %w", ErrValidation)
	}

	if err := s.blocks.Upsert(ctx, blockerID, blockedID); err != nil {
		return fmt.Errorf("block user: %w", err)
	}
	return nil
}

func (s *Service) Report(ctx context.Context, reporterID, reportedUserID int64, reason string) error {
	if reporterID <= 0 || reportedUserID <= 0 || reporterID == reportedUserID {
		return fmt.Errorf("invalid report pair: %w", ErrValidation)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("report reason is required: %w", ErrValidation)
	}
	if len(reason) > maxReasonLen {
		return fmt.Errorf("report reason is too long: %w", ErrValidation)
	}

	if err := s.reports.Create(ctx, reporterID, reportedUserID, reason); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}
