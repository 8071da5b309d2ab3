package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

func (r *ReportRepo) Create(ctx context.Context, reporterID, reportedUserID int64, reason string) error {
	if reporterID <= 0 || reportedUserID <= 0 || reporterID == reportedUserID {
		return fmt.Errorf("invalid report payload")
	}
	if r.pool == nil {
		return nil
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO reports (
	reporter_id,
	reported_user_id,
	reason,
	created_at
) VALUES ($1, $2, $3, NOW())
`, reporterID, reportedUserID, strings.TrimSpace(reason)); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	return nil
}
