package likes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sfmk07/Flairv3/internal/domain/model"
	pgrepo "github.com/sfmk07/Flairv3/internal/repo/postgres"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrAlreadyLiked = errors.New("like already recorded")
)

type LikeStore interface {
	Insert(ctx context.Context, tx pgx.Tx, fromUserID, toUserID int64) (model.Like, error)
	Exists(ctx context.Context, tx pgx.Tx, fromUserID, toUserID int64) (bool, error)
}

type MatchStore interface {
	CreateIfAbsent(ctx context.Context, tx pgx.Tx, user1ID, user2ID int64) (model.Match, bool, error)
}

type ProfileStore interface {
	GetByID(ctx context.Context, userID int64) (model.UserProfile, error)
}

type Dependencies struct {
	Pool     *pgxpool.Pool
	Likes    LikeStore
	Matches  MatchStore
	Profiles ProfileStore
}

type Service struct {
	pool     *pgxpool.Pool
	likes    LikeStore
	matches  MatchStore
	profiles ProfileStore
	withTx   func(context.Context, *pgxpool.Pool, func(context.Context, pgx.Tx) error) error
}

type Result struct {
	Matched bool
	Match   *model.Match
}

func NewService(deps Dependencies) *Service {
	return &Service{
		pool:     deps.Pool,
		likes:    deps.Likes,
		matches:  deps.Matches,
		profiles: deps.Profiles,
		withTx:   pgrepo.WithTx,
	}
}

// RecordLike stores a directed like and resolves reciprocity in the same
// transaction. When the reverse like already exists, the canonical pair
// guard in the match store makes sure exactly one match row survives even
// if both directions race each other.
func (s *Service) RecordLike(ctx context.Context, likerID, likedID int64) (Result, error) {
	if likerID <= 0 || likedID <= 0 {
		return Result{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if likerID == likedID {
		return Result{}, fmt.Errorf("self like rejected: %w", ErrValidation)
	}
	if s.likes == nil || s.matches == nil {
		return Result{}, fmt.Errorf("likes dependencies are not configured")
	}

	if s.profiles != nil {
		if _, err := s.profiles.GetByID(ctx, likedID); err != nil {
			if errors.Is(err, pgrepo.ErrUserNotFound) {
				return Result{}, fmt.Errorf("liked user does not exist: %w", ErrValidation)
			}
			return Result{}, fmt.Errorf("get liked user: %w", err)
		}
	}

	var result Result
	if err := s.withTx(ctx, s.pool, func(txCtx context.Context, tx pgx.Tx) error {
		if _, err := s.likes.Insert(txCtx, tx, likerID, likedID); err != nil {
			if errors.Is(err, pgrepo.ErrLikeExists) {
				return ErrAlreadyLiked
			}
			return err
		}

		reciprocal, err := s.likes.Exists(txCtx, tx, likedID, likerID)
		if err != nil {
			return err
		}
		if !reciprocal {
			return nil
		}

		match, created, err := s.matches.CreateIfAbsent(txCtx, tx, likerID, likedID)
		if err != nil {
			return err
		}
		if created {
			result = Result{Matched: true, Match: &match}
		}
		return nil
	}); err != nil {
		return Result{}, err
	}

	return result, nil
}
