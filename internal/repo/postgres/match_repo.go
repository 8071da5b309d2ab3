package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sfmk07/Flairv3/internal/domain/model"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepo struct {
	pool *pgxpool.Pool
}

func NewMatchRepo(pool *pgxpool.Pool) *MatchRepo {
	return &MatchRepo{pool: pool}
}

// MatchSummary is a match row joined with the other participant's profile
// summary, as rendered by the matches list.
type MatchSummary struct {
	ID          int64
	OtherUserID int64
	DisplayName string
	Age         int
	City        string
	PhotoKey    string
	CreatedAt   time.Time
}

// CreateIfAbsent inserts the match for an unordered user pair. The table
// carries a unique constraint on the canonicalized (user_a_id, user_b_id)
// pair, so two racing reciprocal likes converge on a single row: the loser
// hits ON CONFLICT DO NOTHING and gets created=false. user1/user2 record
// like order (user1 = the like that completed the pair).
func (r *MatchRepo) CreateIfAbsent(ctx context.Context, tx pgx.Tx, user1ID, user2ID int64) (model.Match, bool, error) {
	if user1ID <= 0 || user2ID <= 0 || user1ID == user2ID {
		return model.Match{}, false, fmt.Errorf("invalid match payload")
	}
	if tx == nil {
		return model.Match{}, false, fmt.Errorf("transaction is required")
	}

	userA, userB := user1ID, user2ID
	if userA > userB {
		userA, userB = userB, userA
	}

	match := model.Match{User1ID: user1ID, User2ID: user2ID}
	err := tx.QueryRow(ctx, `
INSERT INTO matches (
	user_a_id,
	user_b_id,
	user1_id,
	user2_id,
	created_at
) VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (user_a_id, user_b_id) DO NOTHING
RETURNING id, created_at
`, userA, userB, user1ID, user2ID).Scan(&match.ID, &match.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, false, nil
		}
		return model.Match{}, false, fmt.Errorf("create match: %w", err)
	}

	return match, true, nil
}

func (r *MatchRepo) GetByID(ctx context.Context, matchID int64) (model.Match, error) {
	if matchID <= 0 {
		return model.Match{}, fmt.Errorf("invalid match id")
	}
	if r.pool == nil {
		return model.Match{}, ErrMatchNotFound
	}

	var match model.Match
	err := r.pool.QueryRow(ctx, `
SELECT id, user1_id, user2_id, created_at
FROM matches
WHERE id = $1
LIMIT 1
`, matchID).Scan(&match.ID, &match.User1ID, &match.User2ID, &match.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, ErrMatchNotFound
		}
		return model.Match{}, fmt.Errorf("get match: %w", err)
	}

	return match, nil
}

func (r *MatchRepo) ListForUser(ctx context.Context, userID int64, limit int) ([]MatchSummary, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if limit <= 0 {
		limit = 100
	}
	if r.pool == nil {
		return []MatchSummary{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT
	m.id,
	CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END AS other_user_id,
	COALESCE(u.display_name, ''),
	u.age,
	COALESCE(u.city, ''),
	COALESCE(u.photo_key, ''),
	m.created_at
FROM matches m
JOIN users u ON u.id = CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END
WHERE m.user1_id = $1 OR m.user2_id = $1
ORDER BY m.created_at DESC, m.id DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	items := make([]MatchSummary, 0, limit)
	for rows.Next() {
		var item MatchSummary
		if err := rows.Scan(
			&item.ID,
			&item.OtherUserID,
			&item.DisplayName,
			&item.Age,
			&item.City,
			&item.PhotoKey,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate matches: %w", rows.Err())
	}
	return items, nil
}
