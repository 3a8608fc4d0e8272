package cache

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned when a course has no cached thumbnail.
var ErrCacheMiss = errors.New("cache miss")

// ThumbnailCache caches the derived first-thumbnail URL per course.
// An empty cached value is meaningful: it records that the course content
// has no embedded video, so the tree walk can be skipped on reads.
type ThumbnailCache interface {
	// GetThumbnail returns the cached thumbnail URL for a course.
	GetThumbnail(ctx context.Context, courseID string) (string, error)
	// SetThumbnail caches the thumbnail URL for a course.
	SetThumbnail(ctx context.Context, courseID string, url string) error
	// DeleteThumbnail drops the cached thumbnail for a course.
	DeleteThumbnail(ctx context.Context, courseID string) error
}
