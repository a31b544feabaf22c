package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// RedisClient подмножество *redis.Client, которое использует хранилище
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store хранилище сессий в redis
// Сессия хранится как JSON под ключом prefix+token, TTL равен времени жизни сессии
type Store struct {
	client RedisClient
	prefix string
}

// NewStore создает новое хранилище сессий
func NewStore(client RedisClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Save сохраняет сессию до её ExpiresAt
func (s *Store) Save(ctx context.Context, sess *domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("%w: session already expired", ErrEncode)
	}

	if err := s.client.Set(ctx, s.key(sess.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrStore, err)
	}
	return nil
}

// Get получает сессию по токену
func (s *Store) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrStore, err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return &sess, nil
}

// Delete удаляет сессию; удаление несуществующей сессии не ошибка
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStore, err)
	}
	return nil
}

func (s *Store) key(token string) string {
	return s.prefix + token
}
