package chat_test

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/sfmk07/Flairv3/internal/domain/model"
	pgrepo "github.com/sfmk07/Flairv3/internal/repo/postgres"
	redrepo "github.com/sfmk07/Flairv3/internal/repo/redis"
	chatsvc "github.com/sfmk07/Flairv3/internal/services/chat"
)

type stubMatchStore struct {
	byID map[int64]model.Match
}

func (s *stubMatchStore) GetByID(_ context.Context, matchID int64) (model.Match, error) {
	match, ok := s.byID[matchID]
	if !ok {
		return model.Match{}, pgrepo.ErrMatchNotFound
	}
	return match, nil
}

type stubMessageStore struct {
	nextID   int64
	messages map[int64][]model.Message
}

func newStubMessageStore() *stubMessageStore {
	return &stubMessageStore{nextID: 1, messages: map[int64][]model.Message{}}
}

func (s *stubMessageStore) Insert(_ context.Context, matchID, senderID int64, body string) (model.Message, error) {
	msg := model.Message{
		ID:        s.nextID,
		MatchID:   matchID,
		SenderID:  senderID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.messages[matchID] = append(s.messages[matchID], msg)
	return msg, nil
}

func (s *stubMessageStore) ListByMatch(_ context.Context, matchID int64) ([]model.Message, error) {
	return s.messages[matchID], nil
}

func newChatServiceForTest(t *testing.T) (*chatsvc.Service, func()) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})

	svc := chatsvc.NewService(chatsvc.Dependencies{
		Matches:  &stubMatchStore{byID: map[int64]model.Match{10: {ID: 10, User1ID: 1, User2ID: 2}}},
		Messages: newStubMessageStore(),
		Stream:   redrepo.NewChatStream(client),
	})

	cleanup := func() {
		_ = client.Close()
		mini.Close()
	}
	return svc, cleanup
}

func TestAppendAndHistoryOrder(t *testing.T) {
	svc, cleanup := newChatServiceForTest(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := svc.Append(ctx, 10, 1, "salut"); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if _, err := svc.Append(ctx, 10, 2, "  hello  "); err != nil {
		t.Fatalf("append second: %v", err)
	}

	history, err := svc.History(ctx, 10, 1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Body != "salut" || history[1].Body != "hello" {
		t.Fatalf("history out of order or unnormalized: %+v", history)
	}
}

func TestAppendValidation(t *testing.T) {
	svc, cleanup := newChatServiceForTest(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := svc.Append(ctx, 10, 1, "   "); !errors.Is(err, chatsvc.ErrValidation) {
		t.Fatalf("whitespace body must be rejected, got %v", err)
	}
	if _, err := svc.Append(ctx, 10, 3, "hi"); !errors.Is(err, chatsvc.ErrForbidden) {
		t.Fatalf("outsider must be forbidden, got %v", err)
	}
	if _, err := svc.Append(ctx, 99, 1, "hi"); !errors.Is(err, chatsvc.ErrNotFound) {
		t.Fatalf("unknown match must be not found, got %v", err)
	}
}

func TestSubscribeReceivesAppendedMessages(t *testing.T) {
	svc, cleanup := newChatServiceForTest(t)
	defer cleanup()

	ctx := context.Background()
	ch, cancel, err := svc.Subscribe(ctx, 10, 2)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	if _, err := svc.Append(ctx, 10, 1, "first"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := svc.Append(ctx, 10, 1, "second"); err != nil {
		t.Fatalf("append: %v", err)
	}

	for _, want := range []string{"first", "second"} {
		select {
		case msg := <-ch:
			if msg.Body != want {
				t.Fatalf("expected %q, got %q", want, msg.Body)
			}
			if msg.MatchID != 10 || msg.SenderID != 1 {
				t.Fatalf("unexpected message envelope %+v", msg)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestSubscribeCancelIdempotent(t *testing.T) {
	svc, cleanup := newChatServiceForTest(t)
	defer cleanup()

	ctx := context.Background()
	ch, cancel, err := svc.Subscribe(ctx, 10, 1)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	cancel()
	cancel()

	select {
	case _, open := <-ch:
		if open {
			t.Fatal("expected channel to be closed after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}

func TestSubscribeAuthorization(t *testing.T) {
	svc, cleanup := newChatServiceForTest(t)
	defer cleanup()

	if _, _, err := svc.Subscribe(context.Background(), 10, 7); !errors.Is(err, chatsvc.ErrForbidden) {
		t.Fatalf("outsider subscribe must be forbidden, got %v", err)
	}
}
