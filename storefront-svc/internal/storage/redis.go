package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"overcooked-ordering/storefront-svc/internal/cart"
)

type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) CartKey(sessionID, restaurantID string) string {
	return "cart:" + sessionID + ":" + restaurantID
}

// Load returns nil without error when the session has no cart yet.
func (s *RedisCartStore) Load(ctx context.Context, sessionID, restaurantID string) (*cart.Cart, error) {
	raw, err := s.Client.Get(ctx, s.CartKey(sessionID, restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.RestaurantID = restaurantID
	return &c, nil
}

// Save replaces the stored snapshot. An empty cart deletes the key.
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	key := s.CartKey(sessionID, c.RestaurantID)
	if c.IsEmpty() {
		return s.Client.Del(ctx, key).Err()
	}

	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, payload, s.TTL).Err()
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CheckoutLock keeps one checkout in flight per session.
type CheckoutLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCheckoutLock(client *redis.Client, ttl time.Duration) *CheckoutLock {
	return &CheckoutLock{Client: client, TTL: ttl}
}

func (l *CheckoutLock) LockKey(sessionID string) string {
	return "checkout:lock:" + sessionID
}

// Acquire returns a release token, or "" when another checkout holds the lock.
func (l *CheckoutLock) Acquire(ctx context.Context, sessionID string) (string, error) {
	token := uuid.NewString()
	ok, err := l.Client.SetNX(ctx, l.LockKey(sessionID), token, l.TTL).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

// Release drops the lock only if token still owns it.
func (l *CheckoutLock) Release(ctx context.Context, sessionID, token string) error {
	return releaseScript.Run(ctx, l.Client, []string{l.LockKey(sessionID)}, token).Err()
}
