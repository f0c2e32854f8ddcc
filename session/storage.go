package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"yatra/models"
	"yatra/rdx"
)

// Storage persists session rows. Redis in production; the in-memory
// variant backs tests and REDIS_ADDR-less dev runs.
type Storage interface {
	Save(ctx context.Context, sess *models.Session, ttl time.Duration) error
	// Load returns (nil, nil) when the id is unknown or expired.
	Load(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

const keyPrefix = "session:"

type RedisStorage struct{}

func (RedisStorage) Save(ctx context.Context, sess *models.Session, ttl time.Duration) error {
	buf, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return rdx.Set(ctx, keyPrefix+sess.ID, string(buf), ttl)
}

func (RedisStorage) Load(ctx context.Context, id string) (*models.Session, error) {
	val, err := rdx.Get(ctx, keyPrefix+id)
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (RedisStorage) Delete(ctx context.Context, id string) error {
	return rdx.Del(ctx, keyPrefix+id)
}

type MemoryStorage struct {
	mu   sync.Mutex
	rows map[string]models.Session
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{rows: make(map[string]models.Session)}
}

func (m *MemoryStorage) Save(_ context.Context, sess *models.Session, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[sess.ID] = *sess
	return nil
}

func (m *MemoryStorage) Load(_ context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (m *MemoryStorage) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}
