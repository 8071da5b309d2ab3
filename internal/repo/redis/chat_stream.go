package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sfmk07/Flairv3/internal/domain/model"
)

const chatChannelPrefix = "chat:match:"

// ChatStream fans newly appended messages out to per-match subscribers via
// redis pub/sub. Delivery order follows publish order on a single channel;
// the store's insertion order is the source of truth for history.
type ChatStream struct {
	client *goredis.Client
}

func NewChatStream(client *goredis.Client) *ChatStream {
	return &ChatStream{client: client}
}

func (s *ChatStream) Publish(ctx context.Context, msg model.Message) error {
	if s.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if msg.MatchID <= 0 {
		return fmt.Errorf("invalid message match id")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal chat message: %w", err)
	}
	if err := s.client.Publish(ctx, chatChannel(msg.MatchID), payload).Err(); err != nil {
		return fmt.Errorf("publish chat message: %w", err)
	}
	return nil
}

// Subscribe opens a live stream of messages appended to the match after the
// call. The returned cancel func must be called when the conversation view
// goes away; it is idempotent and closes the channel on every exit path.
func (s *ChatStream) Subscribe(ctx context.Context, matchID int64) (<-chan model.Message, func(), error) {
	if s.client == nil {
		return nil, nil, fmt.Errorf("redis client is nil")
	}
	if matchID <= 0 {
		return nil, nil, fmt.Errorf("invalid match id")
	}

	pubsub := s.client.Subscribe(ctx, chatChannel(matchID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("subscribe chat channel: %w", err)
	}

	out := make(chan model.Message, 16)
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			_ = pubsub.Close()
		})
	}

	go func() {
		defer close(out)
		for raw := range pubsub.Channel() {
			var msg model.Message
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				continue
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				cancel()
				return
			}
		}
	}()

	return out, cancel, nil
}

func chatChannel(matchID int64) string {
	return chatChannelPrefix + strconv.FormatInt(matchID, 10)
}
