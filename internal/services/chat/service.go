package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sfmk07/Flairv3/internal/domain/model"
	pgrepo "github.com/sfmk07/Flairv3/internal/repo/postgres"
)

const maxMessageLen = 2000

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("match not found")
	ErrForbidden  = errors.New("not a participant of this match")
)

type MatchStore interface {
	GetByID(ctx context.Context, matchID int64) (model.Match, error)
}

type MessageStore interface {
	Insert(ctx context.Context, matchID, senderID int64, body string) (model.Message, error)
	ListByMatch(ctx context.Context, matchID int64) ([]model.Message, error)
}

type Stream interface {
	Publish(ctx context.Context, msg model.Message) error
	Subscribe(ctx context.Context, matchID int64) (<-chan model.Message, func(), error)
}

type Dependencies struct {
	Matches  MatchStore
	Messages MessageStore
	Stream   Stream
}

type Service struct {
	matches  MatchStore
	messages MessageStore
	stream   Stream
}

func NewService(deps Dependencies) *Service {
	return &Service{
		matches:  deps.Matches,
		messages: deps.Messages,
		stream:   deps.Stream,
	}
}

// Append stores a message and fans it out to live subscribers. A publish
// failure does not undo the insert: history stays the source of truth and
// subscribers recover by reloading it.
func (s *Service) Append(ctx context.Context, matchID, senderID int64, body string) (model.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return model.Message{}, fmt.Errorf("message body is empty: %w", ErrValidation)
	}
	if len(body) > maxMessageLen {
		return model.Message{}, fmt.Errorf("message body is too long: %w", ErrValidation)
	}

	if err := s.authorize(ctx, matchID, senderID); err != nil {
		return model.Message{}, err
	}

	msg, err := s.messages.Insert(ctx, matchID, senderID, body)
	if err != nil {
		return model.Message{}, fmt.Errorf("insert message: %w", err)
	}

	if s.stream != nil {
		if err := s.stream.Publish(ctx, msg); err != nil {
			return msg, fmt.Errorf("publish message: %w", err)
		}
	}
	return msg, nil
}

// History returns the match's messages in insertion order.
func (s *Service) History(ctx context.Context, matchID, userID int64) ([]model.Message, error) {
	if err := s.authorize(ctx, matchID, userID); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// Subscribe opens a live message feed for a match. The returned cancel
// function is idempotent and must be called when the consumer is done;
// the channel closes once the subscription winds down.
func (s *Service) Subscribe(ctx context.Context, matchID, userID int64) (<-chan model.Message, func(), error) {
	if err := s.authorize(ctx, matchID, userID); err != nil {
		return nil, nil, err
	}
	if s.stream == nil {
		return nil, nil, fmt.Errorf("chat stream is not configured")
	}

	ch, cancel, err := s.stream.Subscribe(ctx, matchID)
	if err != nil {
		return nil, nil, fmt.Errorf("subscribe to match: %w", err)
	}
	return ch, cancel, nil
}

func (s *Service) authorize(ctx context.Context, matchID, userID int64) error {
	if matchID <= 0 || userID <= 0 {
		return fmt.Errorf("invalid id: %w", ErrValidation)
	}

	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrMatchNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get match: %w", err)
	}

	if match.User1ID != userID && match.User2ID != userID {
		return ErrForbidden
	}
	return nil
}
