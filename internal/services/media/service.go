package media

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

var ErrValidation = errors.New("validation error")

const signedURLTTL = 5 * time.Minute

type PhotoKeyStore interface {
	SetPhotoKey(ctx context.Context, userID int64, key string) error
	GetPhotoKey(ctx context.Context, userID int64) (string, error)
}

type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	PutPhoto(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type Service struct {
	store   PhotoKeyStore
	storage ObjectStorage
}

type Photo struct {
	Key string
	URL string
}

func NewService(store PhotoKeyStore, storage ObjectStorage) *Service {
	return &Service{
		store:   store,
		storage: storage,
	}
}

// UploadPhoto replaces the user's profile photo. The previous object is
// removed only after the new key is committed.
func (s *Service) UploadPhoto(ctx context.Context, userID int64, fileName, contentType string, body io.Reader, size int64) (Photo, error) {
	if userID <= 0 || body == nil || size <= 0 {
		return Photo{}, ErrValidation
	}
	if s.store == nil || s.storage == nil {
		return Photo{}, fmt.Errorf("media dependencies are not configured")
	}

	if err := s.storage.EnsureBucket(ctx); err != nil {
		return Photo{}, fmt.Errorf("ensure bucket: %w", err)
	}

	objectKey, err := buildPhotoObjectKey(userID, fileName)
	if err != nil {
		return Photo{}, fmt.Errorf("build object key: %w", err)
	}

	if strings.TrimSpace(contentType) == "" {
		contentType = "application/octet-stream"
	}

	if err := s.storage.PutPhoto(ctx, objectKey, body, size, contentType); err != nil {
		return Photo{}, fmt.Errorf("put object: %w", err)
	}

	previousKey, err := s.store.GetPhotoKey(ctx, userID)
	if err != nil {
		_ = s.storage.Delete(ctx, objectKey)
		return Photo{}, fmt.Errorf("get previous photo key: %w", err)
	}

	if err := s.store.SetPhotoKey(ctx, userID, objectKey); err != nil {
		_ = s.storage.Delete(ctx, objectKey)
		return Photo{}, fmt.Errorf("set photo key: %w", err)
	}

	if previousKey != "" && previousKey != objectKey {
		_ = s.storage.Delete(ctx, previousKey)
	}

	url, err := s.storage.PresignGet(ctx, objectKey, signedURLTTL)
	if err != nil {
		return Photo{}, fmt.Errorf("presign photo url: %w", err)
	}

	return Photo{Key: objectKey, URL: url}, nil
}

// PhotoURL presigns a short-lived download link for a stored photo key.
// An empty key yields an empty URL, not an error.
func (s *Service) PhotoURL(ctx context.Context, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", nil
	}
	if s.storage == nil {
		return "", fmt.Errorf("media dependencies are not configured")
	}
	return s.storage.PresignGet(ctx, key, signedURLTTL)
}

func buildPhotoObjectKey(userID int64, fileName string) (string, error) {
	rnd := make([]byte, 8)
	if _, err := rand.Read(rnd); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(strings.TrimSpace(fileName)))
	if ext == "" {
		ext = ".bin"
	}

	stamp := time.Now().UTC().Format("20060102T150405")
	return fmt.Sprintf("users/%d/photo/%s_%s%s", userID, stamp, hex.EncodeToString(rnd), ext), nil
}
