package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"futureclim/models"

	"github.com/go-redis/redis/v8"
)

const SessionPrefix = "session:"

// Session is the persisted authentication state: the serialized user plus
// an expiry timestamp in epoch milliseconds. Absence or expiry of either
// implies "no session". Expiry is enforced lazily at read time.
type Session struct {
	User      models.User `json:"user"`
	ExpiresAt int64       `json:"expiresAt"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Expired reports whether the session expiry has passed at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.UnixMilli() > s.ExpiresAt
}

// RedisSessionStore persists sessions in Redis keyed by token hash.
type RedisSessionStore struct {
	Client *redis.Client
}

// Save stores the session with a TTL matching its expiry.
func (r *RedisSessionStore) Save(tokenHash string, session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ttl := time.Until(time.UnixMilli(session.ExpiresAt))
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}
	ctx := context.Background()
	if err := r.Client.Set(ctx, SessionPrefix+tokenHash, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get retrieves a session by token hash. A missing key yields (nil, nil).
func (r *RedisSessionStore) Get(tokenHash string) (*Session, error) {
	ctx := context.Background()
	data, err := r.Client.Get(ctx, SessionPrefix+tokenHash).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session by token hash.
func (r *RedisSessionStore) Delete(tokenHash string) error {
	ctx := context.Background()
	return r.Client.Del(ctx, SessionPrefix+tokenHash).Err()
}
