package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryBackend keeps slots in a process-local map. It is the default for
// tests and for stores that only need persistence across reconstruction
// within one process.
type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (b *MemoryBackend) GetItem(name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.slots[name], nil
}

func (b *MemoryBackend) SetItem(name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	b.slots[name] = copied
	return nil
}

// FileBackend stores each slot as a JSON file under a directory.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBackend) GetItem(name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (b *FileBackend) SetItem(name string, data []byte) error {
	tmp := b.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path(name))
}

// RedisBackend stores slots as redis string keys under a prefix, so UI
// state survives process restarts and can be shared across instances.
type RedisBackend struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix, timeout: 2 * time.Second}
}

func (b *RedisBackend) key(name string) string {
	return b.prefix + ":" + name
}

func (b *RedisBackend) GetItem(name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	data, err := b.client.Get(ctx, b.key(name)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (b *RedisBackend) SetItem(name string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	return b.client.Set(ctx, b.key(name), data, 0).Err()
}
