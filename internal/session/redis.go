package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "restaurant:session:"

type RedisStore struct {
	Client redis.UniversalClient
	TTL    time.Duration
	Secure bool
}

type redisData struct {
	CustomerID *uint `json:"customer_id,omitempty"`
}

func NewRedisStore(addr, password string, ttl time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &RedisStore{Client: client, TTL: ttl}
}

func key(id string) string { return keyPrefix + id }

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *RedisStore) Load(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return &Session{}, nil
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return &Session{}, nil
	}

	raw, err := s.Client.Get(ctx, key(cookie.Value)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, err
	}

	var data redisData
	if err := json.Unmarshal(raw, &data); err != nil {
		return &Session{}, nil
	}

	sess := &Session{ID: cookie.Value}
	if data.CustomerID != nil {
		sess.customerID, sess.hasID = *data.CustomerID, true
	}
	return sess, nil
}

func (s *RedisStore) Save(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	id, ok := sess.CustomerID()
	if !ok {
		if sess.ID != "" {
			if err := s.Client.Del(ctx, key(sess.ID)).Err(); err != nil {
				return err
			}
		}
		expire(w, s.Secure)
		return nil
	}

	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	raw, err := json.Marshal(redisData{CustomerID: &id})
	if err != nil {
		return err
	}
	if err := s.Client.Set(ctx, key(sess.ID), raw, s.TTL).Err(); err != nil {
		return err
	}

	write(w, sess.ID, int(s.TTL.Seconds()), s.Secure)
	return nil
}

func (s *RedisStore) Close() error {
	return s.Client.Close()
}
