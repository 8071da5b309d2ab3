package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sfmk07/Flairv3/internal/domain/model"
)

// ErrLikeExists is returned when the (from, to) pair already has a like row.
// Resubmission is surfaced as an error, not absorbed as a no-op.
var ErrLikeExists = errors.New("like already recorded")

type LikeRepo struct {
	pool *pgxpool.Pool
}

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pool: pool}
}

func (r *LikeRepo) Insert(ctx context.Context, tx pgx.Tx, fromUserID, toUserID int64) (model.Like, error) {
	if fromUserID <= 0 || toUserID <= 0 {
		return model.Like{}, fmt.Errorf("invalid like payload")
	}
	if tx == nil {
		return model.Like{}, fmt.Errorf("transaction is required")
	}

	like := model.Like{FromUserID: fromUserID, ToUserID: toUserID}
	err := tx.QueryRow(ctx, `
INSERT INTO likes (
	from_user_id,
	to_user_id,
	created_at
) VALUES ($1, $2, NOW())
RETURNING id, created_at
`, fromUserID, toUserID).Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.Like{}, ErrLikeExists
		}
		return model.Like{}, fmt.Errorf("insert like: %w", err)
	}

	return like, nil
}

// Exists performs the reciprocity check inside the like transaction.
func (r *LikeRepo) Exists(ctx context.Context, tx pgx.Tx, fromUserID, toUserID int64) (bool, error) {
	if fromUserID <= 0 || toUserID <= 0 {
		return false, fmt.Errorf("invalid like lookup payload")
	}
	if tx == nil {
		return false, fmt.Errorf("transaction is required")
	}

	var one int
	err := tx.QueryRow(ctx, `
SELECT 1
FROM likes
WHERE from_user_id = $1 AND to_user_id = $2
LIMIT 1
`, fromUserID, toUserID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup like: %w", err)
	}

	return true, nil
}

// ListLikedIDs returns the ids the user has already liked, for feed exclusion.
func (r *LikeRepo) ListLikedIDs(ctx context.Context, userID int64) ([]int64, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return []int64{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT to_user_id
FROM likes
WHERE from_user_id = $1
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan liked id: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate liked ids: %w", rows.Err())
	}
	return ids, nil
}
