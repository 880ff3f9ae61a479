package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCodeNotFound means no confirmation code is pending for the user,
// either because none was issued or because the TTL elapsed.
var ErrCodeNotFound = errors.New("confirmation code not found")

// ConfirmationCodeStore keeps bcrypt hashes of pending confirmation
// codes, expiring them after their TTL.
type ConfirmationCodeStore interface {
	Save(ctx context.Context, username, codeHash string, ttl time.Duration) error
	Get(ctx context.Context, username string) (string, error)
	Delete(ctx context.Context, username string) error
}

type codeRedisRepo struct {
	client *redis.Client
}

// NewCodeRedisRepo connects to redis and returns a TTL-backed code store.
func NewCodeRedisRepo(redisURL, password string) (ConfirmationCodeStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &codeRedisRepo{client: rdb}, nil
}

func codeKey(username string) string {
	return fmt.Sprintf("confirm:%s", username)
}

func (r *codeRedisRepo) Save(ctx context.Context, username, codeHash string, ttl time.Duration) error {
	return r.client.Set(ctx, codeKey(username), codeHash, ttl).Err()
}

func (r *codeRedisRepo) Get(ctx context.Context, username string) (string, error) {
	hash, err := r.client.Get(ctx, codeKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (r *codeRedisRepo) Delete(ctx context.Context, username string) error {
	return r.client.Del(ctx, codeKey(username)).Err()
}
