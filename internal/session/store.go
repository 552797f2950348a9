package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/1conorsteward/Appointment-Now/internal/config"
)

var ErrNotFound = errors.New("session: not found")

// Store keeps one Redis entry per issued token so that logout and
// account deletion revoke tokens before they expire. Keys:
//
//	session:<jti>        -> user id, TTL = token lifetime
//	user_sessions:<uid>  -> set of the user's live jtis
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(cfg *config.Config) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &Store{rdb: rdb, ttl: cfg.TokenTTL}
}

func NewStoreWithClient(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func sessionKey(jti string) string {
	return "session:" + jti
}

func userKey(userID uint) string {
	return fmt.Sprintf("user_sessions:%d", userID)
}

func (s *Store) Create(ctx context.Context, jti string, userID uint) error {
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(jti), userID, s.ttl)
	pipe.SAdd(ctx, userKey(userID), jti)
	pipe.Expire(ctx, userKey(userID), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Validate returns the user id bound to a live session.
func (s *Store) Validate(ctx context.Context, jti string) (uint, error) {
	v, err := s.rdb.Get(ctx, sessionKey(jti)).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("session: corrupt entry for %s: %w", jti, err)
	}
	return uint(id), nil
}

func (s *Store) Delete(ctx context.Context, jti string, userID uint) error {
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(jti))
	pipe.SRem(ctx, userKey(userID), jti)
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAll drops every live session of a user. Used on account deletion.
func (s *Store) RevokeAll(ctx context.Context, userID uint) error {
	jtis, err := s.rdb.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, jti := range jtis {
		pipe.Del(ctx, sessionKey(jti))
	}
	pipe.Del(ctx, userKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}
