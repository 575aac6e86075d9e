// README: Conversation session store backed by Redis.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"concierge/internal/modules/dialogue"
)

const stateKeyPrefix = "chat:session:%s:state"

// Store keeps the last-known-good booking state per conversation so a client
// can resume after a reload. Each write refreshes the TTL; an expired or
// never-seen session simply reads back as absent.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, sessionID string, state dialogue.BookingState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal booking state: %w", err)
	}
	return s.redis.Set(ctx, stateKey(sessionID), data, s.ttl).Err()
}

// Get returns the stored snapshot and whether one existed.
func (s *Store) Get(ctx context.Context, sessionID string) (dialogue.BookingState, bool, error) {
	data, err := s.redis.Get(ctx, stateKey(sessionID)).Result()
	if err == redis.Nil {
		return dialogue.BookingState{}, false, nil
	}
	if err != nil {
		return dialogue.BookingState{}, false, err
	}
	var state dialogue.BookingState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return dialogue.BookingState{}, false, fmt.Errorf("failed to parse booking state: %w", err)
	}
	return state, true, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, stateKey(sessionID)).Err()
}

func stateKey(sessionID string) string {
	return fmt.Sprintf(stateKeyPrefix, sessionID)
}
