package cache

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const thumbnailTTL = 24 * time.Hour

func thumbnailKey(courseID string) string {
	return "course:thumbnail:" + courseID
}

var _ ThumbnailCache = (*RedisThumbnailCache)(nil)

type RedisThumbnailCache struct {
	client *redis.Client
}

func NewRedisThumbnailCache(addr string) *RedisThumbnailCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &RedisThumbnailCache{client: client}
}

func (r *RedisThumbnailCache) GetThumbnail(ctx context.Context, courseID string) (string, error) {
	url, err := r.client.Get(ctx, thumbnailKey(courseID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return url, nil
}

func (r *RedisThumbnailCache) SetThumbnail(ctx context.Context, courseID string, url string) error {
	return r.client.Set(ctx, thumbnailKey(courseID), url, thumbnailTTL).Err()
}

func (r *RedisThumbnailCache) DeleteThumbnail(ctx context.Context, courseID string) error {
	return r.client.Del(ctx, thumbnailKey(courseID)).Err()
}
