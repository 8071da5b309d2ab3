package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BlockRepo struct {
	pool *pgxpool.Pool
}

func NewBlockRepo(pool *pgxpool.Pool) *BlockRepo {
	return &BlockRepo{pool: pool}
}

func (r *BlockRepo) Upsert(ctx context.Context, blockerID, blockedID int64) error {
	if blockerID <= 0 || blockedID <= 0 || blockerID == blockedID {
		return fmt.Errorf("invalid block payload")
	}
	if r.pool == nil {
		return nil
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO blocks (
	blocker_id,
	blocked_id,
	created_at
) VALUES ($1, $2, NOW())
ON CONFLICT (blocker_id, blocked_id) DO NOTHING
`, blockerID, blockedID); err != nil {
		return fmt.Errorf("upsert block: %w", err)
	}

	return nil
}

// ListBlockedIDs returns the ids the user has blocked. Only the blocker's own
// edges feed candidate exclusion; users who blocked this user are not hidden.
func (r *BlockRepo) ListBlockedIDs(ctx context.Context, blockerID int64) ([]int64, error) {
	if blockerID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return []int64{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT blocked_id
FROM blocks
WHERE blocker_id = $1
`, blockerID)
	if err != nil {
		return nil, fmt.Errorf("list blocked ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan blocked id: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate blocked ids: %w", rows.Err())
	}
	return ids, nil
}
