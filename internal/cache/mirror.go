// Package cache mirrors the current snapshot into Redis. The mirror
// is a warm copy for restores and scheduled backups, not the source
// of truth; the store always wins.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parlaydev/betledger/pkg/models"
)

// Timestamped backups age out on their own
const backupTTL = 30 * 24 * time.Hour

// Mirror writes snapshots to Redis under a fixed key
type Mirror struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewMirror creates a mirror writing to key. A zero ttl keeps the
// mirror until the next write.
func NewMirror(client *redis.Client, key string, ttl time.Duration) *Mirror {
	return &Mirror{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Push replaces the mirrored snapshot
func (m *Mirror) Push(ctx context.Context, snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	return m.client.Set(ctx, m.key, data, m.ttl).Err()
}

// Pull reads the mirrored snapshot. Returns nil without error when
// nothing has been mirrored yet.
func (m *Mirror) Pull(ctx context.Context) (*models.Snapshot, error) {
	data, err := m.client.Get(ctx, m.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}
	return &snapshot, nil
}

// Backup writes a timestamped copy alongside the mirror and returns
// its key
func (m *Mirror) Backup(ctx context.Context, snapshot models.Snapshot) (string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot: %w", err)
	}

	key := fmt.Sprintf("%s:backup:%s", m.key, time.Now().UTC().Format("20060102T150405"))
	if err := m.client.Set(ctx, key, data, backupTTL).Err(); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return key, nil
}
