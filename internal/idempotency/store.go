package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/config"
	"github.com/go-redis/redis/v8"
)

type State string

const (
	StateProcessing State = "processing"
	StateComplete   State = "complete"
)

type Record struct {
	State    State           `json:"state"`
	Response json.RawMessage `json:"response,omitempty"`
}

// Store remembers request keys in Redis so a repeated request is either
// rejected while the first is in flight or answered with the stored response.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, prefix: "idempotency:", ttl: ttl}
}

func Connect(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Begin claims key. started is true when the caller owns the key and must
// later call Complete or Release; otherwise the existing record is returned.
func (s *Store) Begin(ctx context.Context, key string) (rec Record, started bool, err error) {
	processing, err := json.Marshal(Record{State: StateProcessing})
	if err != nil {
		return Record{}, false, err
	}

	ok, err := s.client.SetNX(ctx, s.prefix+key, processing, s.ttl).Result()
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to claim key: %w", err)
	}
	if ok {
		return Record{State: StateProcessing}, true, nil
	}

	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return s.Begin(ctx, key)
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to read key: %w", err)
	}

	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, false, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, false, nil
}

func (s *Store) Complete(ctx context.Context, key string, response json.RawMessage) error {
	data, err := json.Marshal(Record{State: StateComplete, Response: response})
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store response: %w", err)
	}
	return nil
}

// Release forgets key so the request can be retried.
func (s *Store) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release key: %w", err)
	}
	return nil
}
