package cache

import (
	"context"
	"sync"
)

var _ ThumbnailCache = (*MemoryThumbnailCache)(nil)

// MemoryThumbnailCache is a process-local cache used by the CLI and tests.
type MemoryThumbnailCache struct {
	mu         sync.RWMutex
	thumbnails map[string]string
}

func NewMemoryThumbnailCache() *MemoryThumbnailCache {
	return &MemoryThumbnailCache{
		thumbnails: make(map[string]string),
	}
}

func (m *MemoryThumbnailCache) GetThumbnail(ctx context.Context, courseID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	url, ok := m.thumbnails[courseID]
	if !ok {
		return "", ErrCacheMiss
	}
	return url, nil
}

func (m *MemoryThumbnailCache) SetThumbnail(ctx context.Context, courseID string, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.thumbnails[courseID] = url
	return nil
}

func (m *MemoryThumbnailCache) DeleteThumbnail(ctx context.Context, courseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.thumbnails, courseID)
	return nil
}
