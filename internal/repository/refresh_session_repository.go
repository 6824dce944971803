package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned for unknown or expired refresh sessions.
var ErrSessionNotFound = errors.New("refresh session not found")

// RefreshSessionRepository stores opaque refresh sessions with a TTL.
// Deleting a session revokes it immediately.
type RefreshSessionRepository interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

const refreshKeyPrefix = "session:refresh:"

type redisRefreshSessionRepository struct {
	client *redis.Client
}

// NewRefreshSessionRepository returns a Redis-backed implementation.
func NewRefreshSessionRepository(client *redis.Client) RefreshSessionRepository {
	return &redisRefreshSessionRepository{client: client}
}

func (r *redisRefreshSessionRepository) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	sessionID := uuid.NewString()
	if err := r.client.Set(ctx, refreshKeyPrefix+sessionID, userID, ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (r *redisRefreshSessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := r.client.Get(ctx, refreshKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (r *redisRefreshSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, refreshKeyPrefix+sessionID).Err()
}
