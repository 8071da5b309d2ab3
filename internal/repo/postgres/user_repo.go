package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sfmk07/Flairv3/internal/domain/enums"
	"github.com/sfmk07/Flairv3/internal/domain/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

const uniqueViolation = "23505"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(
	ctx context.Context,
	email string,
	passwordHash string,
	displayName string,
	gender enums.Gender,
	orientation enums.Orientation,
	age int,
	city string,
	bio string,
	tags []string,
	lat *float64,
	lon *float64,
) (model.UserProfile, error) {
	if r.pool == nil {
		return model.UserProfile{}, fmt.Errorf("postgres pool is nil")
	}

	var (
		profile   model.UserProfile
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
INSERT INTO users (
	email,
	password_hash,
	display_name,
	gender,
	orientation,
	age,
	city,
	bio,
	photo_key,
	tags,
	lat,
	lon,
	is_visible,
	is_admin,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '', $9, $10, $11, TRUE, FALSE, NOW(), NOW())
RETURNING id, created_at
`,
		strings.ToLower(strings.TrimSpace(email)),
		passwordHash,
		displayName,
		string(gender),
		string(orientation),
		age,
		city,
		bio,
		tags,
		lat,
		lon,
	).Scan(&profile.ID, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.UserProfile{}, ErrEmailTaken
		}
		return model.UserProfile{}, fmt.Errorf("insert user: %w", err)
	}

	profile.Email = strings.ToLower(strings.TrimSpace(email))
	profile.DisplayName = displayName
	profile.Gender = gender
	profile.Orientation = orientation
	profile.Age = age
	profile.City = city
	profile.Bio = bio
	profile.Tags = tags
	profile.Lat = lat
	profile.Lon = lon
	profile.IsVisible = true
	profile.CreatedAt = createdAt
	profile.UpdatedAt = createdAt
	return profile, nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID int64) (model.UserProfile, error) {
	if userID <= 0 {
		return model.UserProfile{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return model.UserProfile{}, ErrUserNotFound
	}

	row := r.pool.QueryRow(ctx, userSelectColumns+`
FROM users
WHERE id = $1
LIMIT 1
`, userID)

	profile, err := scanUserProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserProfile{}, ErrUserNotFound
		}
		return model.UserProfile{}, fmt.Errorf("get user by id: %w", err)
	}
	return profile, nil
}

// GetCredentialsByEmail returns the stored password hash alongside the
// profile for sign-in verification.
func (r *UserRepo) GetCredentialsByEmail(ctx context.Context, email string) (model.UserProfile, string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return model.UserProfile{}, "", fmt.Errorf("invalid email")
	}
	if r.pool == nil {
		return model.UserProfile{}, "", ErrUserNotFound
	}

	var passwordHash string
	row := r.pool.QueryRow(ctx, userSelectColumns+`,
	password_hash
FROM users
WHERE email = $1
LIMIT 1
`, normalized)

	profile, err := scanUserProfileWith(row, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserProfile{}, "", ErrUserNotFound
		}
		return model.UserProfile{}, "", fmt.Errorf("get user by email: %w", err)
	}
	return profile, passwordHash, nil
}

// ListVisible returns the candidate pool for a requester: every visible
// profile except the requester's own, in insertion order. Exclusion and
// compatibility filtering happen in the discovery service.
func (r *UserRepo) ListVisible(ctx context.Context, excludeUserID int64) ([]model.UserProfile, error) {
	if excludeUserID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return []model.UserProfile{}, nil
	}

	rows, err := r.pool.Query(ctx, userSelectColumns+`
FROM users
WHERE is_visible = TRUE AND id <> $1
ORDER BY id
`, excludeUserID)
	if err != nil {
		return nil, fmt.Errorf("list visible users: %w", err)
	}
	defer rows.Close()

	var items []model.UserProfile
	for rows.Next() {
		profile, err := scanUserProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		items = append(items, profile)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate visible users: %w", rows.Err())
	}
	return items, nil
}

func (r *UserRepo) UpdateProfile(
	ctx context.Context,
	userID int64,
	displayName string,
	city string,
	bio string,
	tags []string,
	isVisible bool,
) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return nil
	}

	result, err := r.pool.Exec(ctx, `
UPDATE users SET
	display_name = $2,
	city = $3,
	bio = $4,
	tags = $5,
	is_visible = $6,
	updated_at = NOW()
WHERE id = $1
`, userID, displayName, city, bio, tags, isVisible)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) SaveLocation(ctx context.Context, userID int64, city string, lat, lon float64) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return nil
	}

	result, err := r.pool.Exec(ctx, `
UPDATE users SET
	city = $2,
	lat = $3,
	lon = $4,
	updated_at = NOW()
WHERE id = $1
`, userID, city, lat, lon)
	if err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) SetPhotoKey(ctx context.Context, userID int64, key string) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return nil
	}

	result, err := r.pool.Exec(ctx, `
UPDATE users SET
	photo_key = $2,
	updated_at = NOW()
WHERE id = $1
`, userID, strings.TrimSpace(key))
	if err != nil {
		return fmt.Errorf("set photo key: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) GetPhotoKey(ctx context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return "", ErrUserNotFound
	}

	var key string
	err := r.pool.QueryRow(ctx, `
SELECT COALESCE(photo_key, '')
FROM users
WHERE id = $1
LIMIT 1
`, userID).Scan(&key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get photo key: %w", err)
	}
	return key, nil
}

const userSelectColumns = `
SELECT
	id,
	COALESCE(email, ''),
	COALESCE(display_name, ''),
	COALESCE(gender, ''),
	COALESCE(orientation, ''),
	age,
	COALESCE(city, ''),
	COALESCE(bio, ''),
	COALESCE(photo_key, ''),
	COALESCE(tags, '{}'),
	lat,
	lon,
	is_visible,
	is_admin,
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserProfile(row rowScanner) (model.UserProfile, error) {
	return scanUserProfileWith(row)
}

func scanUserProfileWith(row rowScanner, extra ...any) (model.UserProfile, error) {
	var (
		profile     model.UserProfile
		gender      string
		orientation string
	)
	dest := []any{
		&profile.ID,
		&profile.Email,
		&profile.DisplayName,
		&gender,
		&orientation,
		&profile.Age,
		&profile.City,
		&profile.Bio,
		&profile.PhotoKey,
		&profile.Tags,
		&profile.Lat,
		&profile.Lon,
		&profile.IsVisible,
		&profile.IsAdmin,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return model.UserProfile{}, err
	}
	profile.Gender = enums.Gender(gender)
	profile.Orientation = enums.Orientation(orientation)
	return profile, nil
}
