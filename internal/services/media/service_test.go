package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type stubPhotoKeyStore struct {
	keys map[int64]string
}

func (s *stubPhotoKeyStore) SetPhotoKey(_ context.Context, userID int64, key string) error {
	s.keys[userID] = key
	return nil
}

func (s *stubPhotoKeyStore) GetPhotoKey(_ context.Context, userID int64) (string, error) {
	return s.keys[userID], nil
}

type stubStorage struct {
	objects map[string][]byte
	deleted []string
}

func newStubStorage() *stubStorage {
	return &stubStorage{objects: map[string][]byte{}}
}

func (s *stubStorage) EnsureBucket(context.Context) error { return nil }

func (s *stubStorage) PutPhoto(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *stubStorage) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://cdn.test/" + key, nil
}

func (s *stubStorage) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func TestUploadPhotoReplacesPrevious(t *testing.T) {
	store := &stubPhotoKeyStore{keys: map[int64]string{7: "users/7/photo/old.jpg"}}
	storage := newStubStorage()
	storage.objects["users/7/photo/old.jpg"] = []byte("old")
	svc := NewService(store, storage)

	photo, err := svc.UploadPhoto(context.Background(), 7, "selfie.JPG", "image/jpeg", bytes.NewReader([]byte("new")), 3)
	if err != nil {
		t.Fatalf("upload photo: %v", err)
	}

	if !strings.HasPrefix(photo.Key, "users/7/photo/") || !strings.HasSuffix(photo.Key, ".jpg") {
		t.Fatalf("unexpected object key %q", photo.Key)
	}
	if photo.URL == "" {
		t.Fatal("expected a presigned url")
	}
	if store.keys[7] != photo.Key {
		t.Fatalf("photo key not committed: %q", store.keys[7])
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "users/7/photo/old.jpg" {
		t.Fatalf("previous object not removed: %v", storage.deleted)
	}
}

func TestUploadPhotoValidation(t *testing.T) {
	svc := NewService(&stubPhotoKeyStore{keys: map[int64]string{}}, newStubStorage())

	if _, err := svc.UploadPhoto(context.Background(), 0, "a.jpg", "", bytes.NewReader([]byte("x")), 1); !errors.Is(err, ErrValidation) {
		t.Fatalf("invalid user must be rejected, got %v", err)
	}
	if _, err := svc.UploadPhoto(context.Background(), 7, "a.jpg", "", nil, 1); !errors.Is(err, ErrValidation) {
		t.Fatalf("nil body must be rejected, got %v", err)
	}
	if _, err := svc.UploadPhoto(context.Background(), 7, "a.jpg", "", bytes.NewReader(nil), 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty size must be rejected, got %v", err)
	}
}

func TestPhotoURL(t *testing.T) {
	svc := NewService(&stubPhotoKeyStore{keys: map[int64]string{}}, newStubStorage())

	url, err := svc.PhotoURL(context.Background(), "users/7/photo/a.jpg")
	if err != nil {
		t.Fatalf("photo url: %v", err)
	}
	if url != "https://cdn.test/users/7/photo/a.jpg" {
		t.Fatalf("unexpected url %q", url)
	}

	url, err = svc.PhotoURL(context.Background(), "   ")
	if err != nil || url != "" {
		t.Fatalf("empty key must yield empty url, got %q err=%v", url, err)
	}
}
